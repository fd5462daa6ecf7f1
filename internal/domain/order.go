package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxRate — фиксированная ставка налога (HST 13%).
var TaxRate = decimal.RequireFromString("0.13")

// OrderLine представляет одну позицию заказа.
type OrderLine struct {
	// Name копируется из меню, ссылка на MenuEntry не хранится.
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// LineTotal возвращает стоимость позиции: цена × количество.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals агрегирует суммы заказа без округления.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Order — корзина терминала. Порядок позиций совпадает с порядком добавления,
// имена позиций уникальны.
type Order struct {
	lines []OrderLine
}

// NewOrder создаёт пустой заказ.
func NewOrder() *Order {
	return &Order{}
}

// AddItem добавляет позицию меню в заказ. Повторное добавление увеличивает
// количество существующей позиции на 1.
func (o *Order) AddItem(catalog *Catalog, menuID int) (OrderLine, error) {
	entry, ok := catalog.Lookup(menuID)
	if !ok {
		return OrderLine{}, fmt.Errorf("menu id %d: %w", menuID, ErrUnknownMenuItem)
	}

	// Линейный поиск: заказы маленькие.
	for i := range o.lines {
		if o.lines[i].Name == entry.Name {
			o.lines[i].Quantity++
			return o.lines[i], nil
		}
	}

	line := OrderLine{Name: entry.Name, UnitPrice: entry.UnitPrice, Quantity: 1}
	o.lines = append(o.lines, line)
	return line, nil
}

// RemoveItem удаляет позицию по индексу (с нуля).
func (o *Order) RemoveItem(index int) (OrderLine, error) {
	if index < 0 || index >= len(o.lines) {
		return OrderLine{}, fmt.Errorf("index %d: %w", index, ErrLineIndexOutOfRange)
	}
	removed := o.lines[index]
	o.lines = append(o.lines[:index], o.lines[index+1:]...)
	return removed, nil
}

// UpdateQuantity заменяет количество позиции и возвращает прежнее значение.
func (o *Order) UpdateQuantity(index, qty int) (int, error) {
	if index < 0 || index >= len(o.lines) {
		return 0, fmt.Errorf("index %d: %w", index, ErrLineIndexOutOfRange)
	}
	if qty <= 0 {
		return 0, fmt.Errorf("qty %d: %w", qty, ErrQuantityInvalid)
	}
	old := o.lines[index].Quantity
	o.lines[index].Quantity = qty
	return old, nil
}

// Totals считает подытог, налог и итог заказа.
func (o *Order) Totals() Totals {
	subtotal := decimal.Zero
	for _, line := range o.lines {
		subtotal = subtotal.Add(line.LineTotal())
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Lines возвращает копию позиций заказа.
func (o *Order) Lines() []OrderLine {
	result := make([]OrderLine, len(o.lines))
	copy(result, o.lines)
	return result
}

// Len возвращает количество позиций.
func (o *Order) Len() int {
	return len(o.lines)
}

// IsEmpty сообщает, пуст ли заказ.
func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

// Clear очищает заказ после успешной оплаты, сам объект переиспользуется.
func (o *Order) Clear() {
	o.lines = o.lines[:0]
}
