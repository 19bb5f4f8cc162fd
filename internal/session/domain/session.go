package domain

import (
	"sync"
	"time"

	cartDomain "github.com/ridloal/storefront-bff/internal/cart/domain"
	currencyDomain "github.com/ridloal/storefront-bff/internal/currency/domain"
)

// Session menggantikan provider global: cart dan converter milik satu pengunjung.
// Semua isi hilang saat session berakhir.
type Session struct {
	ID        string
	Cart      *cartDomain.Store
	Currency  *currencyDomain.Converter
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

func New(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Cart:      cartDomain.NewStore(),
		Currency:  currencyDomain.NewConverter(),
		CreatedAt: now,
		lastSeen:  now,
	}
}

func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
