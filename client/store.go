package client

import (
	"sync"

	"pharmacy-api/models"
)

// IntentBuyNow sends a shopper straight to the cart once they have logged in
const IntentBuyNow = "buynow"

// Intent is what a visitor was doing when they were asked to log in
type Intent struct {
	Action   string
	ReturnTo string
	Item     *CartItem
}

// Session holds the login state of one storefront visitor
type Session struct {
	mu     sync.Mutex
	token  string
	role   models.UserRole
	intent Intent
}

func (s *Session) SetAuth(token string, role models.UserRole) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.role = role
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) Role() models.UserRole {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// Logout drops the token and role; a saved intent survives
func (s *Session) Logout() {
	s.SetAuth("", "")
}

// SaveIntent remembers where to resume after login
func (s *Session) SaveIntent(in Intent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intent = in
}

// PopIntent returns the saved intent and forgets it
func (s *Session) PopIntent() Intent {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.intent
	s.intent = Intent{}
	return in
}

// NextRoute consumes the saved intent and picks the page to show after a login
func (s *Session) NextRoute() string {
	return Route(s.PopIntent(), s.Role())
}

// Route picks the page to continue on after a login with the given intent and role
func Route(in Intent, role models.UserRole) string {
	switch {
	case in.Action == IntentBuyNow:
		return "/cart"
	case in.ReturnTo != "":
		return in.ReturnTo
	case role == models.RoleAdmin:
		return "/admin/dashboard"
	}
	return "/"
}

type CartItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

type Totals struct {
	CartTotal float64 `json:"cartTotal"`
	Delivery  float64 `json:"delivery"`
	ToPay     float64 `json:"toPay"`
}

// Cart is the shopper's basket, keyed by medicine id in insertion order
type Cart struct {
	mu    sync.Mutex
	items []CartItem
}

// Add puts qty of m in the cart, incrementing the line when m is already there.
// Quantities below one count as one.
func (c *Cart) Add(m models.Medicine, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == m.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, CartItem{ID: m.ID, Name: m.Name, Price: m.Price, Image: m.Image, Quantity: qty})
}

// AddItem restores a line saved with a login intent
func (c *Cart) AddItem(item CartItem) {
	c.Add(models.Medicine{ID: item.ID, Name: item.Name, Price: item.Price, Image: item.Image}, item.Quantity)
}

// SetQuantity changes a line's quantity; a quantity below one removes the line
func (c *Cart) SetQuantity(id uint, qty int) {
	if qty < 1 {
		c.Remove(id)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Remove(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cart lines
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]CartItem(nil), c.items...)
}

// Totals sums price times quantity; delivery is free
func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	var t Totals
	for _, it := range c.items {
		t.CartTotal += it.Price * float64(it.Quantity)
	}
	t.ToPay = t.CartTotal + t.Delivery
	return t
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
