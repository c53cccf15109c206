package checkin

import (
	"context"

	"vibescore/internal/domain"
)

// LocationProvider reads the user's current position. Implementations may
// fail with e.ErrPermissionDenied or e.ErrLocationUnavailable.
type LocationProvider interface {
	CurrentCoordinate(ctx context.Context) (domain.Coordinate, error)
}

type ProviderFunc func(ctx context.Context) (domain.Coordinate, error)

func (f ProviderFunc) CurrentCoordinate(ctx context.Context) (domain.Coordinate, error) {
	return f(ctx)
}

// StaticProvider returns a position reported by the client itself.
type StaticProvider domain.Coordinate

func (p StaticProvider) CurrentCoordinate(ctx context.Context) (domain.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coordinate{}, err
	}
	return domain.Coordinate(p), nil
}
