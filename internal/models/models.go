// Package models contains the typed records that cross the persistence
// boundary. Repositories build these from rows; services and the CLI never
// see loosely-typed data.
package models

import "time"

// User is a registered cashier account.
type User struct {
	Username     string
	PasswordHash string
}

// Product is a catalog item. Price is in whole currency units.
type Product struct {
	ID        int64
	Name      string
	Price     int64
	Stock     int64
	ImagePath string
}

// CartLine is one selected product in an in-progress sale.
type CartLine struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Qty       int64  `json:"qty"`
}

// Total returns UnitPrice * Qty.
func (l CartLine) Total() int64 {
	return l.UnitPrice * l.Qty
}

// SaleLine is an append-only sales history record written by checkout.
type SaleLine struct {
	ID        int64
	Name      string
	Price     int64
	Qty       int64
	Cashier   string
	SoldAt    time.Time
	ReceiptNo string
}

// Total returns Price * Qty.
func (s SaleLine) Total() int64 {
	return s.Price * s.Qty
}

// ReceiptCounter is the last issued sequence number for a day key (ddmmyy).
type ReceiptCounter struct {
	Day string
	Seq int64
}

// Receipt is the result of a completed checkout.
type Receipt struct {
	Number   string
	IssuedAt time.Time
	Cashier  string
	Lines    []CartLine
	Total    int64
}

// Items returns the total quantity across all lines.
func (r Receipt) Items() int64 {
	var n int64
	for _, l := range r.Lines {
		n += l.Qty
	}
	return n
}
