package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestReceipt_RenderFormat(t *testing.T) {
	m1, m2 := burgers()
	o := NewOrder(0, "Order 1", WithLogger(quietLogger()))
	_ = o.AddOrderItem(OrderItemFromMenu(0, m1, "no cheese"))
	_ = o.AddOrderItem(OrderItemFromMenu(2, m2, "extra cheese"))
	r := NewReceipt(0, "Doug", o, "Have a great day!")

	want := "Receipt No.: 0\n" +
		"Cashier: Doug\n" +
		"\n" +
		"Items:\n" +
		"Regular Burger $10.00\n" +
		"Irregular Burger $11.00\n" +
		"\n" +
		"Discount: 0 (none)\n" +
		"Order Total: $21.00\n" +
		"Have a great day!"
	if got := r.Render(); got != want {
		t.Fatalf("render mismatch:\n%s\n--- want ---\n%s", got, want)
	}
}

func TestReceipt_RenderReadsOrderLive(t *testing.T) {
	m1, m2 := burgers()
	o := NewOrder(1, "", WithLogger(quietLogger()))
	_ = o.AddOrderItem(OrderItemFromMenu(1, m1, ""))
	r := NewReceipt(3, "Ann", o, "Bye")
	before := r.Render()

	_ = o.AddOrderItem(OrderItemFromMenu(2, m2, ""))
	after := r.Render()
	if before == after {
		t.Fatalf("render should reflect order mutation")
	}
	if !strings.Contains(after, "Order Total: $21.00") {
		t.Fatalf("unexpected render:\n%s", after)
	}
}

func TestReceipt_RoundTrip(t *testing.T) {
	m1, m2 := burgers()
	o := NewOrder(1, "", WithDiscount(dec("10"), DiscountPercent), WithLogger(quietLogger()))
	_ = o.AddOrderItem(OrderItemFromMenu(1, m1, ""))
	_ = o.AddOrderItem(OrderItemFromMenu(2, m2, ""))
	_ = o.AddOrderItem(OrderItemFromMenu(3, MenuItem{ID: 5, Price: dec("2.25"), Name: "Soda $ Large"}, ""))
	r := NewReceipt(42, "Doug", o, "Thank you for dining with us.")

	p, err := ParseReceipt(r.Render())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.ID != 42 || p.CashierName != "Doug" || p.Message != "Thank you for dining with us." {
		t.Fatalf("header mismatch: %+v", p)
	}
	items := o.Items()
	if len(p.Items) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(p.Items))
	}
	for i, it := range items {
		if p.Items[i].Name != it.Name || !p.Items[i].Price.Equal(it.Price) {
			t.Fatalf("item %d: got %+v, want %s %s", i, p.Items[i], it.Name, it.Price)
		}
	}
	if !p.Discount.Equal(o.Discount()) || p.DiscountType != DiscountPercent {
		t.Fatalf("discount mismatch: %s %s", p.Discount, p.DiscountType)
	}
	// 23.25 * 0.9
	if !p.Total.Equal(o.Total().Round(2)) || !p.Total.Equal(dec("20.93")) {
		t.Fatalf("total mismatch: parsed %s, order %s", p.Total, o.Total())
	}
}

func TestReceipt_EmptyOrder(t *testing.T) {
	r := NewReceipt(1, "Kiosk", NewOrder(1, ""), "")
	p, err := ParseReceipt(r.Render())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(p.Items) != 0 || !p.Total.IsZero() || p.Message != "" {
		t.Fatalf("unexpected parse: %+v", p)
	}
}

func TestReceipt_RoundTripKeepsMessageVerbatim(t *testing.T) {
	m1, _ := burgers()
	o := NewOrder(1, "", WithLogger(quietLogger()))
	_ = o.AddOrderItem(OrderItemFromMenu(1, m1, ""))
	for _, msg := range []string{"Bye\n", "a\r\nb", "line one\n\nline three", "\n"} {
		p, err := ParseReceipt(NewReceipt(1, "Doug\r", o, msg).Render())
		if err != nil {
			t.Fatalf("parse %q: %v", msg, err)
		}
		if p.Message != msg {
			t.Fatalf("message: got %q, want %q", p.Message, msg)
		}
		if p.CashierName != "Doug\r" {
			t.Fatalf("cashier: got %q", p.CashierName)
		}
		if len(p.Items) != 1 || !p.Total.Equal(dec("10")) {
			t.Fatalf("unexpected parse: %+v", p)
		}
	}
}

func TestParseReceipt_LongLine(t *testing.T) {
	name := strings.Repeat("x", 70*1024)
	o := NewOrder(1, "", WithLogger(quietLogger()))
	_ = o.AddOrderItem(OrderItemFromMenu(1, MenuItem{ID: 1, Price: dec("1"), Name: name}, ""))
	p, err := ParseReceipt(NewReceipt(1, "Doug", o, "").Render())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(p.Items) != 1 || p.Items[0].Name != name {
		t.Fatalf("long item name lost")
	}
}

func TestParseReceipt_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"hello\nworld",
		"Receipt No.: x\nCashier: a\n\nItems:\n\nDiscount: 0 (none)\nOrder Total: $0.00\n",
		"Receipt No.: 1\nCashier: a\n\nItems:\nBurger 10\n\nDiscount: 0 (none)\nOrder Total: $0.00\n",
		"Receipt No.: 1\nCashier: a\n\nItems:\n\nDiscount: 0 (bogo)\nOrder Total: $0.00\n",
		"Receipt No.: 1\nCashier: a\n\nItems:\n\nDiscount: 0 (none)\nOrder Total: $0.00",
		"Receipt No.: 1\nCashier: a\n\nItems:\n\nDiscount: 0 (none)\nOrder Total: $x\n",
	} {
		if _, err := ParseReceipt(in); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("expected ErrInvalidValue for %q, got %v", in, err)
		}
	}
}
