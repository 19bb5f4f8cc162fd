package domain

// PriceFormatter adalah bagian converter yang dibutuhkan view.
type PriceFormatter interface {
	ConvertPrice(usdPrice float64) float64
	FormatCurrency(usdPrice float64) string
}

// ProductCard adalah satu item di daftar produk, lengkap dengan kontrol +/- cart.
type ProductCard struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Thumbnail      string   `json:"thumbnail"`
	Description    string   `json:"description"`
	Rating         float64  `json:"rating"`
	Stock          int      `json:"stock"`
	Price          float64  `json:"price"`
	DisplayPrice   float64  `json:"displayPrice"`
	FormattedPrice string   `json:"formattedPrice"`
	FreeTag        FreeTag  `json:"freeTag,omitempty"`
	Quantity       int      `json:"quantity"`
	CanIncrease    bool     `json:"canIncrease"`
	CanDecrease    bool     `json:"canDecrease"`
}

func NewProductCard(p Product, qty int, f PriceFormatter) ProductCard {
	return ProductCard{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Thumbnail:      p.Thumbnail(),
		Description:    p.Description,
		Rating:         p.Rating,
		Stock:          p.Stock,
		Price:          p.Price,
		DisplayPrice:   f.ConvertPrice(p.Price),
		FormattedPrice: f.FormatCurrency(p.Price),
		FreeTag:        FreeTagOf(p),
		Quantity:       qty,
		CanIncrease:    qty < p.Stock,
		CanDecrease:    qty > 0,
	}
}

type RecentProductCard struct {
	RecentProduct
	FormattedPrice string `json:"formattedPrice"`
}

// ProductDetail: MaxQuantity = stok, CanAddToCart false kalau produk sudah ada di cart atau stok habis.
type ProductDetail struct {
	Product
	FormattedPrice string  `json:"formattedPrice"`
	FreeTag        FreeTag `json:"freeTag,omitempty"`
	CartQuantity   int     `json:"cartQuantity"`
	InCart         bool    `json:"inCart"`
	MaxQuantity    int     `json:"maxQuantity"`
	CanAddToCart   bool    `json:"canAddToCart"`
}

func NewProductDetail(p Product, cartQty int, f PriceFormatter) ProductDetail {
	inCart := cartQty > 0
	return ProductDetail{
		Product:        p,
		FormattedPrice: f.FormatCurrency(p.Price),
		FreeTag:        FreeTagOf(p),
		CartQuantity:   cartQty,
		InCart:         inCart,
		MaxQuantity:    p.Stock,
		CanAddToCart:   !inCart && p.Stock > 0,
	}
}
