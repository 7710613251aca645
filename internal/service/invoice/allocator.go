package invoice

import (
	"context"
	"fmt"
	"math/rand/v2"

	"invoice-web-app/internal/domain"
)

// MaxAllocationAttempts bounds the candidates tried by Allocate.
const MaxAllocationAttempts = 10

// Existence reports whether an invoice code is already taken.
type Existence interface {
	ExistsByInvoiceID(ctx context.Context, invoiceID string) (bool, error)
}

// RandSource yields uniform integers in [0, n).
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Allocator picks unused invoice codes of the form #AB1234.
type Allocator struct {
	exists Existence
	rnd    RandSource
}

// NewAllocator builds an Allocator. A nil rnd uses math/rand/v2.
func NewAllocator(exists Existence, rnd RandSource) *Allocator {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Allocator{exists: exists, rnd: rnd}
}

// Allocate returns a code that no stored invoice uses at the time of the
// check. The code is not reserved; the store's unique index settles races.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < MaxAllocationAttempts; attempt++ {
		candidate := a.candidate()
		taken, err := a.exists.ExistsByInvoiceID(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check invoice id %s: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", domain.ErrAllocationExhausted
}

func (a *Allocator) candidate() string {
	l1 := 'A' + rune(a.rnd.IntN(26))
	l2 := 'A' + rune(a.rnd.IntN(26))
	return fmt.Sprintf("#%c%c%d", l1, l2, 1000+a.rnd.IntN(9000))
}
