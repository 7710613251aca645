package db

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/singleflight"

	"invoice-web-app/internal/domain"
)

// Connect opens a pgx connection pool and verifies connectivity with a ping.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// connectTimeout bounds a shared connection attempt, which outlives the
// request that started it.
const connectTimeout = 10 * time.Second

// ConnectFunc opens a pool for a DSN.
type ConnectFunc func(ctx context.Context, dsn string) (*pgxpool.Pool, error)

// Handle is the process-wide store connection. The pool is opened on first
// use and reused afterwards; a failed attempt is not cached, so the next
// caller retries.
type Handle struct {
	dsn     string
	logger  *log.Logger
	connect ConnectFunc

	mu    sync.RWMutex
	pool  *pgxpool.Pool
	group singleflight.Group
}

// NewHandle returns a Handle that connects lazily with Connect.
func NewHandle(dsn string, logger *log.Logger) *Handle {
	return NewHandleWith(dsn, logger, Connect)
}

// NewHandleWith is NewHandle with a custom connect function.
func NewHandleWith(dsn string, logger *log.Logger, connect ConnectFunc) *Handle {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Handle{dsn: dsn, logger: logger, connect: connect}
}

// Pool returns the shared pool, connecting if needed. Concurrent callers
// share a single connection attempt.
func (h *Handle) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	h.mu.RLock()
	pool := h.pool
	h.mu.RUnlock()
	if pool != nil {
		return pool, nil
	}

	v, err, _ := h.group.Do("pool", func() (any, error) {
		h.mu.RLock()
		existing := h.pool
		h.mu.RUnlock()
		if existing != nil {
			return existing, nil
		}
		connectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), connectTimeout)
		defer cancel()
		p, err := h.connect(connectCtx, h.dsn)
		if err != nil {
			h.logger.Printf("db: connect error=%v", err)
			return nil, err
		}
		h.mu.Lock()
		h.pool = p
		h.mu.Unlock()
		h.logger.Printf("db: connected")
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return v.(*pgxpool.Pool), nil
}

// Ping connects if needed and checks the store is reachable.
func (h *Handle) Ping(ctx context.Context) error {
	pool, err := h.Pool(ctx)
	if err != nil {
		return err
	}
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the pool if one was opened.
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.pool != nil {
		h.pool.Close()
		h.pool = nil
	}
}
