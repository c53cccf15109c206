package mqtt

import (
	"context"

	"github.com/google/uuid"

	"vibescore/internal/domain"
)

// DeviceLocation serves the last fix of one user as a checkin.LocationProvider.
type DeviceLocation struct {
	fixes  FixStore
	userID uuid.UUID
}

func NewDeviceLocation(fixes FixStore, userID uuid.UUID) *DeviceLocation {
	return &DeviceLocation{fixes: fixes, userID: userID}
}

func (d *DeviceLocation) CurrentCoordinate(ctx context.Context) (domain.Coordinate, error) {
	fix, err := d.fixes.Latest(ctx, d.userID)
	if err != nil {
		return domain.Coordinate{}, err
	}
	return fix.Coordinate, nil
}
