package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"invoice-web-app/internal/domain"
)

const uniqueInvoiceIDConstraint = "invoices_invoice_id_key"

// document is the jsonb body of a stored invoice.
type document struct {
	BillFrom           domain.Address `json:"billFrom"`
	BillTo             domain.Client  `json:"billTo"`
	InvoiceDate        domain.Date    `json:"invoiceDate"`
	PaymentTerms       int            `json:"paymentTerms"`
	PaymentDue         domain.Date    `json:"paymentDue"`
	ProjectDescription string         `json:"projectDescription"`
	Items              []domain.Item  `json:"items"`
	TotalAmount        float64        `json:"totalAmount"`
}

func toDocument(inv domain.Invoice) document {
	return document{
		BillFrom:           inv.BillFrom,
		BillTo:             inv.BillTo,
		InvoiceDate:        inv.InvoiceDate,
		PaymentTerms:       inv.PaymentTerms,
		PaymentDue:         inv.PaymentDue,
		ProjectDescription: inv.ProjectDescription,
		Items:              inv.Items,
		TotalAmount:        inv.TotalAmount,
	}
}

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

const selectColumns = `id::text, invoice_id, status, document, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, inv domain.Invoice) (*domain.Invoice, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := json.Marshal(toDocument(inv))
	if err != nil {
		return nil, err
	}
	q := `
INSERT INTO invoices (invoice_id, status, document)
VALUES ($1, $2, $3)
RETURNING ` + selectColumns
	return r.scanInvoice(pool.QueryRow(ctx, q, inv.InvoiceID, string(inv.Status), doc))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	q := `SELECT ` + selectColumns + ` FROM invoices WHERE id = $1`
	return r.scanInvoice(pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) ExistsByInvoiceID(ctx context.Context, invoiceID string) (bool, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE invoice_id = $1)`, invoiceID).Scan(&exists); err != nil {
		r.logger.Printf("invoice repo: exists invoice_id=%s error=%v", invoiceID, err)
		return false, storeErr(err)
	}
	return exists, nil
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]domain.Invoice, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, string(f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, s)
		conds = append(conds, fmt.Sprintf("search @@ websearch_to_tsquery('simple', $%d)", len(args)))
	}
	q := `SELECT ` + selectColumns + ` FROM invoices`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY created_at DESC, id`

	rows, err := pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("invoice repo: list status=%s search=%q error=%v", f.Status, f.Search, err)
		return nil, storeErr(err)
	}
	defer rows.Close()

	out := []domain.Invoice{}
	for rows.Next() {
		inv, err := r.scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (r *postgresRepo) Count(ctx context.Context) (int, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return 0, err
	}
	var n int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM invoices`).Scan(&n); err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, inv domain.Invoice) (*domain.Invoice, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := json.Marshal(toDocument(inv))
	if err != nil {
		return nil, err
	}
	q := `
UPDATE invoices
SET status = COALESCE(NULLIF($2, ''), status), document = $3, updated_at = now()
WHERE id = $1
RETURNING ` + selectColumns
	return r.scanInvoice(pool.QueryRow(ctx, q, id, string(inv.Status), doc))
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Invoice, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	q := `
UPDATE invoices
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING ` + selectColumns
	return r.scanInvoice(pool.QueryRow(ctx, q, id, string(status)))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}
	tag, err := pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("invoice repo: delete id=%s error=%v", id, err)
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanInvoice(row pgx.Row) (*domain.Invoice, error) {
	var (
		inv     domain.Invoice
		status  string
		docJSON []byte
		created time.Time
		updated time.Time
	)
	if err := row.Scan(&inv.ID, &inv.InvoiceID, &status, &docJSON, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			field := pgErr.ConstraintName
			if field == uniqueInvoiceIDConstraint {
				field = "invoiceId"
			}
			return nil, &domain.DuplicateKeyError{Field: field}
		}
		r.logger.Printf("invoice repo: scan error=%v", err)
		return nil, storeErr(err)
	}
	var doc document
	if err := json.Unmarshal(docJSON, &doc); err != nil {
		r.logger.Printf("invoice repo: decode document id=%s err=%v", inv.ID, err)
		return nil, err
	}
	inv.Status = domain.Status(status)
	inv.BillFrom = doc.BillFrom
	inv.BillTo = doc.BillTo
	inv.InvoiceDate = doc.InvoiceDate
	inv.PaymentTerms = doc.PaymentTerms
	inv.PaymentDue = doc.PaymentDue
	inv.ProjectDescription = doc.ProjectDescription
	inv.Items = doc.Items
	inv.TotalAmount = doc.TotalAmount
	inv.CreatedAt = created.UTC()
	inv.UpdatedAt = updated.UTC()
	return &inv, nil
}

// storeErr marks transport failures as store unavailability.
func storeErr(err error) error {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.SafeToRetry(err) {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return err
}
