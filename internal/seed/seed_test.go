package seed

import (
	"context"
	"testing"

	"invoice-web-app/internal/domain"
	"invoice-web-app/internal/validation"
)

type stubStore struct {
	existing int
	created  []validation.InvoicePayload
}

func (s *stubStore) Count(context.Context) (int, error) { return s.existing, nil }

func (s *stubStore) Create(_ context.Context, p validation.InvoicePayload) (*domain.Invoice, error) {
	s.created = append(s.created, p)
	return &domain.Invoice{}, nil
}

func TestApplySeedsEmptyStore(t *testing.T) {
	store := &stubStore{}
	n, err := Apply(context.Background(), store)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 3 || len(store.created) != 3 {
		t.Fatalf("expected 3 invoices, got %d", n)
	}
}

func TestApplySkipsNonEmptyStore(t *testing.T) {
	store := &stubStore{existing: 1}
	n, err := Apply(context.Background(), store)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if n != 0 || len(store.created) != 0 {
		t.Fatalf("expected no inserts, got %d", n)
	}
}

func TestDemoInvoicesAreValid(t *testing.T) {
	v := validation.New()
	for _, p := range Invoices() {
		if err := v.Invoice(p, validation.Create); err != nil {
			t.Fatalf("demo invoice for %s invalid: %v", p.BillTo.ClientName, err)
		}
	}
}
