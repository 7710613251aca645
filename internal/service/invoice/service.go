package invoice

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"invoice-web-app/internal/domain"
	"invoice-web-app/internal/normalize"
	invoicerepo "invoice-web-app/internal/repository/invoice"
	"invoice-web-app/internal/validation"
)

// maxInsertAttempts bounds allocate+insert rounds lost to a concurrent
// creation taking the same code.
const maxInsertAttempts = 3

// ListFilter holds the optional list query parameters.
type ListFilter struct {
	Status string
	Search string
}

type Service struct {
	repo      invoicerepo.Repository
	alloc     *Allocator
	validator *validation.Validator
	logger    *log.Logger
}

// New wires the service with an allocator backed by repo and math/rand/v2.
func New(repo invoicerepo.Repository, logger *log.Logger) *Service {
	return NewWithAllocator(repo, NewAllocator(repo, nil), logger)
}

func NewWithAllocator(repo invoicerepo.Repository, alloc *Allocator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, alloc: alloc, validator: validation.New(), logger: logger}
}

// List returns invoices newest first. An unknown status is ignored.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Invoice, error) {
	filter := invoicerepo.Filter{Search: strings.TrimSpace(f.Search)}
	if st := domain.Status(strings.TrimSpace(f.Status)); st.Valid() {
		filter.Status = st
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	if err := validation.ValidateID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Count reports how many invoices are stored.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Create validates the payload, assigns a fresh invoice code and stores the
// normalized invoice. Status defaults to pending.
func (s *Service) Create(ctx context.Context, p validation.InvoicePayload) (*domain.Invoice, error) {
	if err := s.validator.Invoice(p, validation.Create); err != nil {
		return nil, err
	}
	inv, err := p.Invoice()
	if err != nil {
		return nil, err
	}
	if inv.Status == "" {
		inv.Status = domain.StatusPending
	}

	for attempt := 1; ; attempt++ {
		code, err := s.alloc.Allocate(ctx)
		if err != nil {
			s.logger.Printf("invoice service: allocate error=%v", err)
			return nil, err
		}
		inv.InvoiceID = code
		created, err := s.repo.Create(ctx, normalize.Invoice(inv))
		var dup *domain.DuplicateKeyError
		if errors.As(err, &dup) && dup.Field == "invoiceId" && attempt < maxInsertAttempts {
			s.logger.Printf("invoice service: invoice_id=%s taken at insert, retrying attempt=%d", code, attempt)
			continue
		}
		return created, err
	}
}

// Update replaces every user-supplied field of an invoice. The invoice code
// never changes; an omitted status keeps the stored one.
func (s *Service) Update(ctx context.Context, id string, p validation.InvoicePayload) (*domain.Invoice, error) {
	if err := validation.ValidateID(id); err != nil {
		return nil, err
	}
	if err := s.validator.Invoice(p, validation.Update); err != nil {
		return nil, err
	}
	inv, err := p.Invoice()
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, normalize.Invoice(inv))
}

// UpdateStatus writes only the status. Derived fields are left untouched.
func (s *Service) UpdateStatus(ctx context.Context, id string, p validation.StatusPayload) (*domain.Invoice, error) {
	if err := validation.ValidateID(id); err != nil {
		return nil, err
	}
	if err := s.validator.Status(p); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, id, p.Status)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validation.ValidateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Preview runs validation and normalization without touching the store.
func (s *Service) Preview(p validation.InvoicePayload) (*domain.Invoice, error) {
	if err := s.validator.Invoice(p, validation.Create); err != nil {
		return nil, err
	}
	inv, err := p.Invoice()
	if err != nil {
		return nil, err
	}
	if inv.Status == "" {
		inv.Status = domain.StatusPending
	}
	out := normalize.Invoice(inv)
	return &out, nil
}
