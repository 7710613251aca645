package invoice

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"invoice-web-app/internal/domain"
)

// Filter narrows List. Zero values match everything.
type Filter struct {
	Status domain.Status
	Search string
}

// Repository persists and fetches invoices.
type Repository interface {
	Create(ctx context.Context, inv domain.Invoice) (*domain.Invoice, error)
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	ExistsByInvoiceID(ctx context.Context, invoiceID string) (bool, error)
	List(ctx context.Context, f Filter) ([]domain.Invoice, error)
	Count(ctx context.Context) (int, error)
	// Update replaces the document. An empty status keeps the stored one.
	Update(ctx context.Context, id string, inv domain.Invoice) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Invoice, error)
	Delete(ctx context.Context, id string) error
}

// PoolSource hands out the shared connection pool.
type PoolSource interface {
	Pool(ctx context.Context) (*pgxpool.Pool, error)
}
