package invoice

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"invoice-web-app/internal/domain"
	"invoice-web-app/internal/normalize"
	invoicerepo "invoice-web-app/internal/repository/invoice"
	"invoice-web-app/internal/validation"
)

// memoryRepo is an in-process Repository honouring the unique invoice code.
type memoryRepo struct {
	mu       sync.Mutex
	byID     map[string]domain.Invoice
	clock    time.Time
	dupTimes int // forced duplicate failures on Create
	creates  int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: map[string]domain.Invoice{}, clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memoryRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memoryRepo) Create(_ context.Context, inv domain.Invoice) (*domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.dupTimes > 0 {
		m.dupTimes--
		return nil, &domain.DuplicateKeyError{Field: "invoiceId"}
	}
	for _, existing := range m.byID {
		if existing.InvoiceID == inv.InvoiceID {
			return nil, &domain.DuplicateKeyError{Field: "invoiceId"}
		}
	}
	inv.ID = uuid.NewString()
	inv.CreatedAt = m.tick()
	inv.UpdatedAt = inv.CreatedAt
	m.byID[inv.ID] = inv
	return &inv, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inv, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &inv, nil
}

func (m *memoryRepo) ExistsByInvoiceID(_ context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inv := range m.byID {
		if inv.InvoiceID == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepo) List(_ context.Context, f invoicerepo.Filter) ([]domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Invoice{}
	for _, inv := range m.byID {
		if f.Status != "" && inv.Status != f.Status {
			continue
		}
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryRepo) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID), nil
}

func (m *memoryRepo) Update(_ context.Context, id string, inv domain.Invoice) (*domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	inv.ID = cur.ID
	inv.InvoiceID = cur.InvoiceID
	inv.CreatedAt = cur.CreatedAt
	if inv.Status == "" {
		inv.Status = cur.Status
	}
	inv.UpdatedAt = m.tick()
	m.byID[id] = inv
	return &inv, nil
}

func (m *memoryRepo) UpdateStatus(_ context.Context, id string, status domain.Status) (*domain.Invoice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cur.Status = status
	cur.UpdatedAt = m.tick()
	m.byID[id] = cur
	return &cur, nil
}

func (m *memoryRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

// failingRepo fails the test on any store access.
type failingRepo struct {
	invoicerepo.Repository
	t *testing.T
}

func (f failingRepo) GetByID(context.Context, string) (*domain.Invoice, error) {
	f.t.Fatalf("store must not be called")
	return nil, nil
}

func (f failingRepo) UpdateStatus(context.Context, string, domain.Status) (*domain.Invoice, error) {
	f.t.Fatalf("store must not be called")
	return nil, nil
}

func (f failingRepo) Delete(context.Context, string) error {
	f.t.Fatalf("store must not be called")
	return nil
}

func payload() validation.InvoicePayload {
	return validation.InvoicePayload{
		BillFrom: validation.AddressPayload{Street: "19 Union Terrace", City: "London", PostCode: "E1 3EZ", Country: "United Kingdom"},
		BillTo: validation.ClientPayload{
			ClientName:  "  Alex Grim ",
			ClientEmail: "AlexGrim@Mail.com",
			Street:      "84 Church Way",
			City:        "Bradford",
			PostCode:    "BD1 9PB",
			Country:     "United Kingdom",
		},
		InvoiceDate:        "2024-01-31",
		PaymentTerms:       30,
		ProjectDescription: "Graphic Design",
		Items: []validation.ItemPayload{
			{Name: "Banner Design", Quantity: 2, Price: 50.005, Total: 1},
			{Name: "Email Design", Quantity: 1, Price: 10},
		},
		TotalAmount: 99999,
	}
}

func TestCreateDerivesFieldsAndDefaultsStatus(t *testing.T) {
	svc := New(newMemoryRepo(), nil)

	inv, err := svc.Create(context.Background(), payload())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !domain.InvoiceIDPattern.MatchString(inv.InvoiceID) {
		t.Fatalf("bad invoice id %q", inv.InvoiceID)
	}
	if inv.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %s", inv.Status)
	}
	if inv.Items[0].Total != 100.01 || inv.Items[1].Total != 10 || inv.TotalAmount != 110.01 {
		t.Fatalf("unexpected totals %+v total=%v", inv.Items, inv.TotalAmount)
	}
	if inv.PaymentDue.String() != "2024-03-01" {
		t.Fatalf("unexpected payment due %s", inv.PaymentDue)
	}
	if inv.BillTo.ClientName != "Alex Grim" || inv.BillTo.ClientEmail != "alexgrim@mail.com" {
		t.Fatalf("strings not normalized: %+v", inv.BillTo)
	}
}

func TestCreateRoundTrip(t *testing.T) {
	svc := New(newMemoryRepo(), nil)
	p := payload()
	p.Status = domain.StatusDraft

	created, err := svc.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	want, _ := p.Invoice()
	want = normalize.Invoice(want)
	want.ID, want.InvoiceID, want.CreatedAt, want.UpdatedAt = got.ID, got.InvoiceID, got.CreatedAt, got.UpdatedAt
	if !reflect.DeepEqual(*got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", *got, want)
	}
}

func TestCreateRejectsInvalidPayloadWithoutStoring(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo, nil)
	p := payload()
	p.BillFrom.City = ""
	p.PaymentTerms = 5
	p.Items = nil

	_, err := svc.Create(context.Background(), p)
	var verrs *validation.Errors
	if !errors.As(err, &verrs) || len(verrs.Fields) < 3 {
		t.Fatalf("expected 3+ field errors, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("nothing should be stored, got %d creates", repo.creates)
	}
}

func TestCreateRetriesDuplicateAtInsert(t *testing.T) {
	repo := newMemoryRepo()
	repo.dupTimes = 2
	svc := New(repo, nil)

	if _, err := svc.Create(context.Background(), payload()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if repo.creates != 3 {
		t.Fatalf("expected 3 inserts, got %d", repo.creates)
	}
}

func TestCreateSurfacesPersistentDuplicate(t *testing.T) {
	repo := newMemoryRepo()
	repo.dupTimes = maxInsertAttempts
	svc := New(repo, nil)

	_, err := svc.Create(context.Background(), payload())
	var dup *domain.DuplicateKeyError
	if !errors.As(err, &dup) || dup.Field != "invoiceId" {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
	if repo.creates != maxInsertAttempts {
		t.Fatalf("expected %d inserts, got %d", maxInsertAttempts, repo.creates)
	}
}

func TestCreateAllocationExhausted(t *testing.T) {
	repo := newMemoryRepo()
	alloc := NewAllocator(existsFunc(func(context.Context, string) (bool, error) { return true, nil }), nil)
	svc := NewWithAllocator(repo, alloc, nil)

	if _, err := svc.Create(context.Background(), payload()); !errors.Is(err, domain.ErrAllocationExhausted) {
		t.Fatalf("expected ErrAllocationExhausted, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("nothing should be stored")
	}
}

func TestCreateUniqueInvoiceIDs(t *testing.T) {
	svc := New(newMemoryRepo(), nil)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		inv, err := svc.Create(context.Background(), payload())
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		if seen[inv.InvoiceID] {
			t.Fatalf("duplicate invoice id %s", inv.InvoiceID)
		}
		seen[inv.InvoiceID] = true
	}
}

func TestUpdateStatusTouchesOnlyStatus(t *testing.T) {
	svc := New(newMemoryRepo(), nil)
	created, err := svc.Create(context.Background(), payload())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), created.ID, validation.StatusPayload{Status: domain.StatusPaid})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != domain.StatusPaid || !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("status or updatedAt not changed: %+v", updated)
	}
	before, after := *created, *updated
	before.Status, before.UpdatedAt = "", time.Time{}
	after.Status, after.UpdatedAt = "", time.Time{}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("status update changed other fields:\nbefore %+v\nafter  %+v", before, after)
	}

	_, err = svc.UpdateStatus(context.Background(), created.ID, validation.StatusPayload{Status: "void"})
	var verrs *validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateKeepsInvoiceIDAndStatus(t *testing.T) {
	svc := New(newMemoryRepo(), nil)
	p := payload()
	p.Status = domain.StatusPaid
	created, err := svc.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	p = payload()
	p.InvoiceID = "#ZZ9999"
	p.PaymentTerms = 7
	p.Items = []validation.ItemPayload{{Name: "Logo", Quantity: 3, Price: 33.333}}
	updated, err := svc.Update(context.Background(), created.ID, p)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.InvoiceID != created.InvoiceID {
		t.Fatalf("invoice id changed from %s to %s", created.InvoiceID, updated.InvoiceID)
	}
	if updated.Status != domain.StatusPaid {
		t.Fatalf("status should be kept, got %s", updated.Status)
	}
	if updated.TotalAmount != 100 || updated.PaymentDue.String() != "2024-02-07" {
		t.Fatalf("derived fields not recomputed: total=%v due=%s", updated.TotalAmount, updated.PaymentDue)
	}

	if _, err := svc.Update(context.Background(), uuid.NewString(), payload()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMalformedIDNeverReachesStore(t *testing.T) {
	svc := New(failingRepo{t: t}, nil)
	ctx := context.Background()

	if _, err := svc.Get(ctx, "not-an-id"); !errors.Is(err, domain.ErrMalformedID) {
		t.Fatalf("Get: expected ErrMalformedID, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, "123", validation.StatusPayload{Status: domain.StatusPaid}); !errors.Is(err, domain.ErrMalformedID) {
		t.Fatalf("UpdateStatus: expected ErrMalformedID, got %v", err)
	}
	if err := svc.Delete(ctx, "abc"); !errors.Is(err, domain.ErrMalformedID) {
		t.Fatalf("Delete: expected ErrMalformedID, got %v", err)
	}
	if _, err := svc.Update(ctx, "abc", payload()); !errors.Is(err, domain.ErrMalformedID) {
		t.Fatalf("Update: expected ErrMalformedID, got %v", err)
	}
}

func TestListIgnoresUnknownStatus(t *testing.T) {
	svc := New(newMemoryRepo(), nil)
	ctx := context.Background()
	for _, st := range []domain.Status{domain.StatusDraft, domain.StatusPaid, ""} {
		p := payload()
		p.Status = st
		if _, err := svc.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	paid, err := svc.List(ctx, ListFilter{Status: "paid"})
	if err != nil || len(paid) != 1 {
		t.Fatalf("paid filter: %d err=%v", len(paid), err)
	}
	all, err := svc.List(ctx, ListFilter{Status: "archived"})
	if err != nil || len(all) != 3 {
		t.Fatalf("unknown status should list all, got %d err=%v", len(all), err)
	}
	if all[0].Status != domain.StatusPending {
		t.Fatalf("expected newest first, got %+v", all[0])
	}
}

func TestDelete(t *testing.T) {
	svc := New(newMemoryRepo(), nil)
	created, err := svc.Create(context.Background(), payload())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPreviewMatchesCreate(t *testing.T) {
	svc := New(newMemoryRepo(), nil)
	preview, err := svc.Preview(payload())
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if preview.ID != "" || preview.InvoiceID != "" {
		t.Fatalf("preview must not carry identifiers: %+v", preview)
	}
	created, err := svc.Create(context.Background(), payload())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if preview.TotalAmount != created.TotalAmount || !preview.PaymentDue.Equal(created.PaymentDue) {
		t.Fatalf("preview disagrees with create: %+v vs %+v", preview, created)
	}
	if n, _ := svc.Count(context.Background()); n != 1 {
		t.Fatalf("preview must not store, count=%d", n)
	}
}
