package domain_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/pos-terminal/internal/domain"
)

// halfCent — допустимая погрешность при сравнении итогов.
var halfCent = decimal.RequireFromString("0.005")

func assertClose(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	diff := got.Sub(decimal.RequireFromString(want)).Abs()
	if diff.GreaterThan(halfCent) {
		t.Fatalf("%s: expected ~%s, got %s", name, want, got)
	}
}

func TestOrder_AddItemMergesByName(t *testing.T) {
	catalog := domain.DefaultCatalog()
	order := domain.NewOrder()

	if _, err := order.AddItem(catalog, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	line, err := order.AddItem(catalog, 1)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if order.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", order.Len())
	}
	if line.Quantity != 2 {
		t.Fatalf("expected qty 2, got %d", line.Quantity)
	}
	if line.Name != "Classic Burger" {
		t.Fatalf("unexpected name %q", line.Name)
	}
}

func TestOrder_AddItemKeepsInsertionOrder(t *testing.T) {
	catalog := domain.DefaultCatalog()
	order := domain.NewOrder()

	for _, id := range []int{13, 1, 9, 1} {
		if _, err := order.AddItem(catalog, id); err != nil {
			t.Fatalf("add %d failed: %v", id, err)
		}
	}

	lines := order.Lines()
	want := []string{"Soda", "Classic Burger", "Small Fries"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i, name := range want {
		if lines[i].Name != name {
			t.Fatalf("line %d: expected %q, got %q", i, name, lines[i].Name)
		}
	}
}

func TestOrder_AddItemUnknownID(t *testing.T) {
	catalog := domain.DefaultCatalog()
	order := domain.NewOrder()

	for _, id := range []int{0, 17, -1} {
		if _, err := order.AddItem(catalog, id); !errors.Is(err, domain.ErrUnknownMenuItem) {
			t.Fatalf("id %d: expected ErrUnknownMenuItem, got %v", id, err)
		}
	}
	if !order.IsEmpty() {
		t.Fatal("order must stay empty")
	}
}

func TestOrder_RemoveItem(t *testing.T) {
	catalog := domain.DefaultCatalog()
	order := domain.NewOrder()
	_, _ = order.AddItem(catalog, 1)
	_, _ = order.AddItem(catalog, 5)

	removed, err := order.RemoveItem(0)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if removed.Name != "Classic Burger" {
		t.Fatalf("unexpected removed line %q", removed.Name)
	}
	if order.Len() != 1 || order.Lines()[0].Name != "Caesar Salad" {
		t.Fatalf("unexpected lines after remove: %+v", order.Lines())
	}

	if _, err := order.RemoveItem(1); !errors.Is(err, domain.ErrLineIndexOutOfRange) {
		t.Fatalf("expected ErrLineIndexOutOfRange, got %v", err)
	}
	if _, err := order.RemoveItem(-1); !errors.Is(err, domain.ErrLineIndexOutOfRange) {
		t.Fatalf("expected ErrLineIndexOutOfRange, got %v", err)
	}
}

func TestOrder_UpdateQuantity(t *testing.T) {
	catalog := domain.DefaultCatalog()
	order := domain.NewOrder()
	_, _ = order.AddItem(catalog, 3)

	old, err := order.UpdateQuantity(0, 4)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if old != 1 {
		t.Fatalf("expected old qty 1, got %d", old)
	}
	if got := order.Lines()[0].Quantity; got != 4 {
		t.Fatalf("expected qty 4, got %d", got)
	}

	if _, err := order.UpdateQuantity(0, 0); !errors.Is(err, domain.ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
	if _, err := order.UpdateQuantity(2, 1); !errors.Is(err, domain.ErrLineIndexOutOfRange) {
		t.Fatalf("expected ErrLineIndexOutOfRange, got %v", err)
	}
}

func TestOrder_Totals(t *testing.T) {
	catalog := domain.DefaultCatalog()
	order := domain.NewOrder()
	_, _ = order.AddItem(catalog, 1)
	_, _ = order.AddItem(catalog, 1)

	totals := order.Totals()
	assertClose(t, "subtotal", totals.Subtotal, "11.98")
	assertClose(t, "tax", totals.Tax, "1.5574")
	assertClose(t, "total", totals.Total, "13.5374")

	if got := domain.FormatMoney(totals.Tax); got != "$1.56" {
		t.Fatalf("expected $1.56, got %s", got)
	}
	if got := domain.FormatMoney(totals.Total); got != "$13.54" {
		t.Fatalf("expected $13.54, got %s", got)
	}
}

func TestOrder_TotalsEmpty(t *testing.T) {
	totals := domain.NewOrder().Totals()
	if !totals.Total.IsZero() || !totals.Subtotal.IsZero() || !totals.Tax.IsZero() {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

func TestOrder_Clear(t *testing.T) {
	catalog := domain.DefaultCatalog()
	order := domain.NewOrder()
	_, _ = order.AddItem(catalog, 16)

	order.Clear()
	if !order.IsEmpty() {
		t.Fatal("expected empty order after clear")
	}

	// Очищенный заказ переиспользуется.
	if _, err := order.AddItem(catalog, 16); err != nil {
		t.Fatalf("add after clear failed: %v", err)
	}
	if order.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", order.Len())
	}
}

func TestOrder_LinesReturnsCopy(t *testing.T) {
	catalog := domain.DefaultCatalog()
	order := domain.NewOrder()
	_, _ = order.AddItem(catalog, 2)

	lines := order.Lines()
	lines[0].Quantity = 99

	if order.Lines()[0].Quantity != 1 {
		t.Fatal("mutating the copy must not change the order")
	}
}
