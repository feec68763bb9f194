package domain

import "time"

// Product is a snapshot of a catalog product as served by the backend API.
// The cart keeps the snapshot it was handed and never re-fetches it; the
// stock figure is only as fresh as the page that supplied it.
type Product struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Price          int64  `json:"price"`
	StockAvailable int    `json:"stockAvailable"`
	Image          string `json:"image,omitempty"`
	Category       string `json:"category,omitempty"`
	IsFeatured     bool   `json:"isFeatured,omitempty"`
}

// CartEntry is one line item: a product snapshot plus a quantity.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the line total for this entry.
func (e CartEntry) Subtotal() int64 {
	return int64(e.Quantity) * e.Product.Price
}

// Cart is the aggregate of selected entries plus derived totals. Totals
// are always recomputed from entries, never set directly and never
// trusted from storage.
type Cart struct {
	Entries        []CartEntry `json:"entries"`
	TotalItemCount int         `json:"totalItemCount"`
	TotalPrice     int64       `json:"totalPrice"`
}

// ShippingAddress is the delivery address collected at checkout
type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// OrderItem is one line of a submitted order
type OrderItem struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// Order represents an order as returned by the backend API
type Order struct {
	ID              string          `json:"id"`
	OrderItems      []OrderItem     `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentMethod   PaymentMethod   `json:"paymentMethod"`
	PaymentInfo     *PaymentInfo    `json:"paymentInfo,omitempty"`
	ItemsPrice      int64           `json:"itemsPrice"`
	ShippingPrice   int64           `json:"shippingPrice"`
	TotalPrice      int64           `json:"totalPrice"`
	Status          OrderStatus     `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// PaymentInfo carries the instructions shown after placing an order
type PaymentInfo struct {
	Method       PaymentMethod `json:"method"`
	BankAccount  string        `json:"bankAccount,omitempty"`
	AccountName  string        `json:"accountName,omitempty"`
	QRISCode     string        `json:"qrisCode,omitempty"`
	Instructions string        `json:"instructions,omitempty"`
}

// User represents an authenticated shop user
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
