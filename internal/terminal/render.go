package terminal

import (
	"fmt"
	"io"

	"github.com/vladislavdragonenkov/pos-terminal/internal/console"
	"github.com/vladislavdragonenkov/pos-terminal/internal/domain"
)

// RenderMenu выводит меню по категориям.
func RenderMenu(w io.Writer, catalog *domain.Catalog) {
	fmt.Fprintf(w, "\n%s\n%-8s %-30s %-10s\n%s\n", console.Border('='), "ITEM #", "DESCRIPTION", "PRICE", console.Border('='))
	for _, cat := range catalog.Categories() {
		fmt.Fprintf(w, "\n--- %s ---\n", cat.Title)
		for _, id := range cat.IDs {
			entry, _ := catalog.Lookup(id)
			fmt.Fprintf(w, "%-8d %-30s %s\n", entry.ID, entry.Name, domain.FormatMoney(entry.UnitPrice))
		}
	}
	fmt.Fprintf(w, "\n%s\n", console.Border('='))
}

// RenderReceipt выводит текущий заказ с построчными суммами.
func RenderReceipt(w io.Writer, order *domain.Order) {
	if order.IsEmpty() {
		fmt.Fprintln(w, "\nEmpty order.")
		return
	}

	fmt.Fprintf(w, "\n%s\n%s\n%s\n", console.Border('='), console.Center("ORDER RECEIPT"), console.Border('='))
	fmt.Fprintf(w, "%-3s %-32s %-5s %-10s\n%s\n", "#", "ITEM", "QTY", "PRICE", console.Border('-'))
	for i, line := range order.Lines() {
		fmt.Fprintf(w, "%-3d %-32s %-5d %s\n", i+1, line.Name, line.Quantity, domain.FormatMoney(line.LineTotal()))
	}
	fmt.Fprintf(w, "%s\n%-40s %s\n%s\n\n", console.Border('-'), "TOTAL", domain.FormatMoney(order.Totals().Subtotal), console.Border('='))
}
