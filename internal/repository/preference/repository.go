package preference

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"invoice-web-app/internal/domain"
)

// Repository stores per-user UI preferences.
type Repository interface {
	// Get returns domain.ErrNotFound for a user that never saved anything.
	Get(ctx context.Context, userID string) (*domain.Preferences, error)
	SetTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.Preferences, error)
	SetProfileImage(ctx context.Context, userID, image string) (*domain.Preferences, error)
}

// PoolSource hands out the shared connection pool.
type PoolSource interface {
	Pool(ctx context.Context) (*pgxpool.Pool, error)
}
