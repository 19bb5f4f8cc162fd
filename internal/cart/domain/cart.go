package domain

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrLimitExceeded = errors.New("cart quantity would exceed the limit")
	ErrItemPresent   = errors.New("product is already in the cart")
)

type CartItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type EventType string

const (
	EventItemAdded   EventType = "ITEM_ADDED"
	EventItemRemoved EventType = "ITEM_REMOVED"
	EventItemDeleted EventType = "ITEM_DELETED"
	EventCleared     EventType = "CLEARED"
)

// Event dikirim ke observer setelah mutasi diterapkan.
type Event struct {
	Type      EventType
	ProductID int64
	Quantity  int // quantity produk setelah mutasi, 0 kalau entry sudah hilang
	Total     int // total quantity seluruh cart setelah mutasi
}

type Observer func(Event)

// Store memegang isi cart satu session: productID -> quantity.
// Tidak menyimpan Product; join dengan katalog dilakukan saat dibaca.
type Store struct {
	mu        sync.Mutex
	quantity  map[int64]int
	order     []int64 // urutan pertama kali produk masuk cart
	observers map[int]Observer
	nextObsID int
}

func NewStore() *Store {
	return &Store{
		quantity:  make(map[int64]int),
		observers: make(map[int]Observer),
	}
}

// AddItem membuat entry baru dengan quantity 1, atau menambah 1.
// Batas stok dicek oleh pemanggil.
func (s *Store) AddItem(productID int64) {
	s.mu.Lock()
	if _, ok := s.quantity[productID]; !ok {
		s.order = append(s.order, productID)
	}
	s.quantity[productID]++
	ev := Event{Type: EventItemAdded, ProductID: productID, Quantity: s.quantity[productID], Total: s.totalLocked()}
	obs := s.observersLocked()
	s.mu.Unlock()

	notify(obs, ev)
}

// AddN menambah n sekaligus dalam satu lock: cek limit (dan requireAbsent) lalu mutasi,
// sehingga request paralel tidak bisa melewati stok.
func (s *Store) AddN(productID int64, n, limit int, requireAbsent bool) error {
	if n < 1 {
		return fmt.Errorf("%w: n=%d", ErrLimitExceeded, n)
	}

	s.mu.Lock()
	cur, ok := s.quantity[productID]
	if requireAbsent && ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: product %d", ErrItemPresent, productID)
	}
	if cur+n > limit {
		s.mu.Unlock()
		return fmt.Errorf("%w: product %d has %d, adding %d, limit %d", ErrLimitExceeded, productID, cur, n, limit)
	}
	if !ok {
		s.order = append(s.order, productID)
	}
	s.quantity[productID] = cur + n
	ev := Event{Type: EventItemAdded, ProductID: productID, Quantity: cur + n, Total: s.totalLocked()}
	obs := s.observersLocked()
	s.mu.Unlock()

	notify(obs, ev)
	return nil
}

// RemoveItem mengurangi 1. Entry dengan quantity 1 dihapus, produk yang tidak ada diabaikan.
func (s *Store) RemoveItem(productID int64) {
	s.mu.Lock()
	qty, ok := s.quantity[productID]
	if !ok {
		s.mu.Unlock()
		return
	}
	if qty == 1 {
		s.deleteLocked(productID)
		qty = 0
	} else {
		qty--
		s.quantity[productID] = qty
	}
	ev := Event{Type: EventItemRemoved, ProductID: productID, Quantity: qty, Total: s.totalLocked()}
	obs := s.observersLocked()
	s.mu.Unlock()

	notify(obs, ev)
}

// RemoveAll menghapus satu produk sekaligus, sama dengan RemoveItem berulang sampai 0.
func (s *Store) RemoveAll(productID int64) {
	s.mu.Lock()
	if _, ok := s.quantity[productID]; !ok {
		s.mu.Unlock()
		return
	}
	s.deleteLocked(productID)
	ev := Event{Type: EventItemDeleted, ProductID: productID, Total: s.totalLocked()}
	obs := s.observersLocked()
	s.mu.Unlock()

	notify(obs, ev)
}

// Clear mengosongkan cart.
func (s *Store) Clear() {
	s.mu.Lock()
	if len(s.quantity) == 0 {
		s.mu.Unlock()
		return
	}
	s.quantity = make(map[int64]int)
	s.order = nil
	obs := s.observersLocked()
	s.mu.Unlock()

	notify(obs, Event{Type: EventCleared})
}

func (s *Store) ItemQuantity(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quantity[productID]
}

func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

// Items mengembalikan snapshot isi cart sesuai urutan masuk.
func (s *Store) Items() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]CartItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, CartItem{ProductID: id, Quantity: s.quantity[id]})
	}
	return items
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.quantity)
}

func (s *Store) IsEmpty() bool {
	return s.Len() == 0
}

// Subscribe mendaftarkan observer; fungsi yang dikembalikan untuk berhenti berlangganan.
func (s *Store) Subscribe(o Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = o
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Store) deleteLocked(productID int64) {
	delete(s.quantity, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Store) totalLocked() int {
	total := 0
	for _, q := range s.quantity {
		total += q
	}
	return total
}

func (s *Store) observersLocked() []Observer {
	if len(s.observers) == 0 {
		return nil
	}
	obs := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		obs = append(obs, o)
	}
	return obs
}

func notify(obs []Observer, ev Event) {
	for _, o := range obs {
		o(ev)
	}
}
