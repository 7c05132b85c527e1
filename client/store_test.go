package client

import (
	"testing"

	"pharmacy-api/models"
)

func TestCartAddOrIncrement(t *testing.T) {
	var cart Cart
	dolo := models.Medicine{ID: 1, Name: "Dolo 650", Price: 30}
	liv := models.Medicine{ID: 2, Name: "Liv 52", Price: 160.5}

	cart.Add(dolo, 1)
	cart.Add(liv, 0)
	cart.Add(dolo, 2)

	items := cart.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ID != 1 || items[0].Quantity != 3 {
		t.Errorf("expected Dolo x3 first, got %+v", items[0])
	}
	if items[1].Quantity != 1 {
		t.Errorf("expected a zero quantity to count as one, got %d", items[1].Quantity)
	}

	totals := cart.Totals()
	if totals.CartTotal != 250.5 || totals.Delivery != 0 || totals.ToPay != 250.5 {
		t.Errorf("unexpected totals %+v", totals)
	}
}

func TestCartQuantityAndRemove(t *testing.T) {
	var cart Cart
	cart.Add(models.Medicine{ID: 1, Price: 10}, 1)
	cart.Add(models.Medicine{ID: 2, Price: 20}, 1)

	cart.SetQuantity(2, 4)
	if got := cart.Totals().CartTotal; got != 90 {
		t.Errorf("expected 90, got %v", got)
	}
	cart.SetQuantity(1, 0)
	if items := cart.Items(); len(items) != 1 || items[0].ID != 2 {
		t.Errorf("expected only item 2 left, got %+v", items)
	}
	cart.Remove(2)
	cart.Remove(99)
	if len(cart.Items()) != 0 {
		t.Error("expected empty cart")
	}

	cart.Add(models.Medicine{ID: 3, Price: 5}, 2)
	cart.Clear()
	if cart.Totals().ToPay != 0 {
		t.Error("Clear left items behind")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	var cart Cart
	cart.Add(models.Medicine{ID: 1, Price: 10}, 1)
	items := cart.Items()
	items[0].Quantity = 100
	if cart.Items()[0].Quantity != 1 {
		t.Error("mutating Items() changed the cart")
	}
}

func TestSessionRouting(t *testing.T) {
	cases := []struct {
		name   string
		intent Intent
		role   models.UserRole
		want   string
	}{
		{"buy now wins", Intent{Action: IntentBuyNow, ReturnTo: "/doctors"}, models.RoleAdmin, "/cart"},
		{"return to", Intent{ReturnTo: "/doctors"}, models.RoleUser, "/doctors"},
		{"admin default", Intent{}, models.RoleAdmin, "/admin/dashboard"},
		{"user default", Intent{}, models.RoleUser, "/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Session
			s.SetAuth("tok", tc.role)
			s.SaveIntent(tc.intent)
			if got := s.NextRoute(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
			if got := s.PopIntent(); got != (Intent{}) {
				t.Errorf("intent not consumed: %+v", got)
			}
		})
	}
}

func TestLogoutKeepsIntent(t *testing.T) {
	var s Session
	s.SetAuth("tok", models.RoleUser)
	s.SaveIntent(Intent{ReturnTo: "/cart"})
	s.Logout()
	if s.LoggedIn() || s.Role() != "" {
		t.Error("Logout kept credentials")
	}
	if s.PopIntent().ReturnTo != "/cart" {
		t.Error("Logout dropped the saved intent")
	}
}
