package invoice

import (
	"context"
	"errors"
	"testing"

	"invoice-web-app/internal/domain"
)

type scriptedRand struct {
	values []int
	pos    int
}

func (s *scriptedRand) IntN(n int) int {
	v := s.values[s.pos%len(s.values)] % n
	s.pos++
	return v
}

type existsFunc func(ctx context.Context, code string) (bool, error)

func (f existsFunc) ExistsByInvoiceID(ctx context.Context, code string) (bool, error) {
	return f(ctx, code)
}

func TestAllocateFormatsCandidate(t *testing.T) {
	rnd := &scriptedRand{values: []int{0, 25, 234}}
	a := NewAllocator(existsFunc(func(context.Context, string) (bool, error) { return false, nil }), rnd)

	code, err := a.Allocate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "#AZ1234" {
		t.Fatalf("expected #AZ1234, got %s", code)
	}
}

func TestAllocateRetriesOnCollision(t *testing.T) {
	rnd := &scriptedRand{values: []int{1, 1, 0, 2, 2, 8999}}
	var seen []string
	a := NewAllocator(existsFunc(func(_ context.Context, code string) (bool, error) {
		seen = append(seen, code)
		return code == "#BB1000", nil
	}), rnd)

	code, err := a.Allocate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "#CC9999" {
		t.Fatalf("expected #CC9999, got %s", code)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 checks, got %v", seen)
	}
}

func TestAllocateStopsAfterTenAttempts(t *testing.T) {
	calls := 0
	a := NewAllocator(existsFunc(func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	}), nil)

	_, err := a.Allocate(context.Background())
	if !errors.Is(err, domain.ErrAllocationExhausted) {
		t.Fatalf("expected ErrAllocationExhausted, got %v", err)
	}
	if calls != MaxAllocationAttempts {
		t.Fatalf("expected %d attempts, got %d", MaxAllocationAttempts, calls)
	}
}

func TestAllocateAbortsOnLookupError(t *testing.T) {
	boom := errors.New("connection reset")
	calls := 0
	a := NewAllocator(existsFunc(func(context.Context, string) (bool, error) {
		calls++
		return false, boom
	}), nil)

	_, err := a.Allocate(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected a single lookup, got %d", calls)
	}
}

func TestAllocateProducesValidDistinctCodes(t *testing.T) {
	taken := map[string]bool{}
	a := NewAllocator(existsFunc(func(_ context.Context, code string) (bool, error) {
		return taken[code], nil
	}), nil)

	for i := 0; i < 200; i++ {
		code, err := a.Allocate(context.Background())
		if err != nil {
			t.Fatalf("allocate %d: %v", i, err)
		}
		if !domain.InvoiceIDPattern.MatchString(code) {
			t.Fatalf("code %q does not match the invoice id format", code)
		}
		if taken[code] {
			t.Fatalf("code %q allocated twice", code)
		}
		taken[code] = true
	}
}
