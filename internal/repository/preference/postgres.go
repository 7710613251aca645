package preference

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"

	"invoice-web-app/internal/domain"
)

type postgresRepo struct {
	db     PoolSource
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(db PoolSource, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{db: db, logger: logger}
}

const selectColumns = `user_id, theme, profile_image, created_at, updated_at`

func (r *postgresRepo) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	q := `SELECT ` + selectColumns + ` FROM user_preferences WHERE user_id = $1`
	return r.scan(pool.QueryRow(ctx, q, userID))
}

func (r *postgresRepo) SetTheme(ctx context.Context, userID string, theme domain.Theme) (*domain.Preferences, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	q := `
INSERT INTO user_preferences (user_id, theme)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET theme = EXCLUDED.theme, updated_at = now()
RETURNING ` + selectColumns
	return r.scan(pool.QueryRow(ctx, q, userID, string(theme)))
}

func (r *postgresRepo) SetProfileImage(ctx context.Context, userID, image string) (*domain.Preferences, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	q := `
INSERT INTO user_preferences (user_id, profile_image)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE SET profile_image = EXCLUDED.profile_image, updated_at = now()
RETURNING ` + selectColumns
	return r.scan(pool.QueryRow(ctx, q, userID, image))
}

func (r *postgresRepo) scan(row pgx.Row) (*domain.Preferences, error) {
	var p domain.Preferences
	var theme string
	if err := row.Scan(&p.UserID, &theme, &p.ProfileImage, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("preference repo: scan error=%v", err)
		return nil, err
	}
	p.Theme = domain.Theme(theme)
	return &p, nil
}
