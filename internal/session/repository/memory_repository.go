package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ridloal/storefront-bff/internal/session/domain"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Touch(ctx context.Context, id string, now time.Time) error
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
	Count(ctx context.Context) int
}

// memorySessionRepository menyimpan session di memory proses, tidak ada persistence.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[string]*domain.Session)}
}

func (r *memorySessionRepository) Create(ctx context.Context, s *domain.Session) error {
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return nil
}

func (r *memorySessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (r *memorySessionRepository) Touch(ctx context.Context, id string, now time.Time) error {
	s, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	s.Touch(now)
	return nil
}

// DeleteIdleSince menghapus session yang terakhir aktif sebelum cutoff.
func (r *memorySessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memorySessionRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
