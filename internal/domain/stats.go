package domain

type CheckInStats struct {
	UserCount     int64 `json:"user_count"`
	TotalCheckIns int64 `json:"total_check_ins"`
	Minutes       int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // one day max
}
