// Package session holds the per-terminal UI state that the CLI passes to
// every command handler: who is logged in, where they are and what is in the
// cart. A Session is plain data and can be serialized with Marshal.
package session

import (
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/gophpos/internal/models"
)

type Page string

const (
	PageLogin    Page = "login"
	PageRegister Page = "register"
)

type Menu string

const (
	MenuCashier       Menu = "cashier"
	MenuAddProduct    Menu = "add-product"
	MenuEditProduct   Menu = "edit-product"
	MenuDeleteProduct Menu = "delete-product"
	MenuReport        Menu = "report"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

type Session struct {
	Username string            `json:"username"`
	LoggedIn bool              `json:"logged_in"`
	Page     Page              `json:"page"`
	Menu     Menu              `json:"menu"`
	Cart     []models.CartLine `json:"cart"`
}

// New returns a logged-out session on the login page.
func New() *Session {
	return &Session{Page: PageLogin}
}

// Login marks username as the active cashier and opens the cashier menu.
func (s *Session) Login(username string) {
	s.Username = username
	s.LoggedIn = true
	s.Menu = MenuCashier
	s.Cart = nil
}

// Logout drops the user and the cart and returns to the login page.
func (s *Session) Logout() {
	*s = *New()
}

// AddToCart appends a line for p. Adding the same product again merges the
// quantities.
func (s *Session) AddToCart(p models.Product, qty int64) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	for i := range s.Cart {
		if s.Cart[i].Name == p.Name && s.Cart[i].UnitPrice == p.Price {
			s.Cart[i].Qty += qty
			return nil
		}
	}
	s.Cart = append(s.Cart, models.CartLine{ProductID: p.ID, Name: p.Name, UnitPrice: p.Price, Qty: qty})
	return nil
}

// CartQty returns the quantity of name already in the cart.
func (s *Session) CartQty(name string) int64 {
	var n int64
	for _, l := range s.Cart {
		if l.Name == name {
			n += l.Qty
		}
	}
	return n
}

func (s *Session) ClearCart() {
	s.Cart = nil
}

func (s *Session) CartTotal() int64 {
	var total int64
	for _, l := range s.Cart {
		total += l.Total()
	}
	return total
}

func (s *Session) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func Unmarshal(data []byte) (*Session, error) {
	s := &Session{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}
