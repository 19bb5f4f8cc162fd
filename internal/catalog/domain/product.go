package domain

import (
	"errors"
	"fmt"
	"strings"
)

type Category string

const (
	CategoryCheese  Category = "CHEESE"
	CategoryCracker Category = "CRACKER"
	CategoryTea     Category = "TEA"
)

// TabAll menampilkan semua kategori di daftar produk.
const TabAll = "all"

var ErrInvalidCategory = errors.New("invalid category tab")

// Product adalah snapshot read-only dari store API, harga dalam USD.
type Product struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Category          Category `json:"category"`
	Stock             int      `json:"stock"`
	Price             float64  `json:"price"`
	Description       string   `json:"description"`
	DetailDescription string   `json:"detailDescription"`
	Images            []string `json:"images"`
	Rating            float64  `json:"rating"`
	IsGlutenFree      bool     `json:"isGlutenFree,omitempty"`
	IsCaffeineFree    bool     `json:"isCaffeineFree,omitempty"`
}

// Thumbnail gambar pertama, kosong kalau tidak ada.
func (p Product) Thumbnail() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type RecentProduct struct {
	ID        int64   `json:"id"`
	Thumbnail string  `json:"thumbnail"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

type FreeTag string

const (
	FreeTagNone     FreeTag = ""
	FreeTagGluten   FreeTag = "gluten"
	FreeTagCaffeine FreeTag = "caffeine"
)

// FreeTagOf: gluten-free lebih diutamakan daripada caffeine-free.
func FreeTagOf(p Product) FreeTag {
	if p.IsGlutenFree {
		return FreeTagGluten
	}
	if p.IsCaffeineFree {
		return FreeTagCaffeine
	}
	return FreeTagNone
}

// ParseTab memvalidasi tab kategori: "all" (atau kosong), "cheese", "cracker", "tea".
func ParseTab(tab string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(tab))
	switch t {
	case "", TabAll:
		return TabAll, nil
	case "cheese", "cracker", "tea":
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, tab)
	}
}

func FilterByCategory(products []Product, tab string) []Product {
	t := strings.ToLower(strings.TrimSpace(tab))
	if t == "" || t == TabAll {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.ToLower(string(p.Category)) == t {
			out = append(out, p)
		}
	}
	return out
}

// FilterByIDs menyisakan produk yang id-nya ada di ids, urutan katalog dipertahankan.
func FilterByIDs(products []Product, ids []int64) []Product {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	out := make([]Product, 0, len(ids))
	for _, p := range products {
		if _, ok := set[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func Index(products []Product) map[int64]Product {
	idx := make(map[int64]Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}
