package domain

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"lat" yaml:"latitude"`
	Longitude float64 `json:"lng" yaml:"longitude"`
}
