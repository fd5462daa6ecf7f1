package domain

import "github.com/shopspring/decimal"

// MenuEntry — неизменяемая позиция фиксированного меню.
type MenuEntry struct {
	ID        int
	Name      string
	Category  string
	UnitPrice decimal.Decimal
}

// MenuCategory группирует позиции меню для вывода на экран.
type MenuCategory struct {
	Title string
	IDs   []int
}

const (
	// MinMenuID и MaxMenuID задают допустимый диапазон идентификаторов меню.
	MinMenuID = 1
	MaxMenuID = 16
)

// Catalog — таблица меню только для чтения, создаётся один раз при старте процесса.
type Catalog struct {
	entries    map[int]MenuEntry
	categories []MenuCategory
}

// DefaultCatalog возвращает стандартное меню терминала: 16 позиций в 4 категориях.
func DefaultCatalog() *Catalog {
	b := &catalogBuilder{entries: make(map[int]MenuEntry, MaxMenuID)}

	b.category("BURGERS",
		item{1, "Classic Burger", "5.99"},
		item{2, "Cheese Burger", "6.99"},
		item{3, "Bacon Burger", "7.99"},
		item{4, "Veggie Burger", "6.49"},
	)
	b.category("SALADS",
		item{5, "Caesar Salad", "4.99"},
		item{6, "Garden Salad", "4.49"},
		item{7, "Greek Salad", "5.49"},
		item{8, "Cobb Salad", "6.49"},
	)
	b.category("FRIES",
		item{9, "Small Fries", "1.99"},
		item{10, "Medium Fries", "2.49"},
		item{11, "Large Fries", "2.99"},
		item{12, "Sweet Potato Fries", "3.49"},
	)
	b.category("DRINKS",
		item{13, "Soda", "1.49"},
		item{14, "Iced Tea", "1.99"},
		item{15, "Lemonade", "1.99"},
		item{16, "Water", "0.99"},
	)

	return &Catalog{entries: b.entries, categories: b.categories}
}

// Lookup возвращает позицию меню по идентификатору.
func (c *Catalog) Lookup(id int) (MenuEntry, bool) {
	entry, ok := c.entries[id]
	return entry, ok
}

// Categories возвращает категории в порядке отображения (копию).
func (c *Catalog) Categories() []MenuCategory {
	result := make([]MenuCategory, len(c.categories))
	for i, cat := range c.categories {
		ids := make([]int, len(cat.IDs))
		copy(ids, cat.IDs)
		result[i] = MenuCategory{Title: cat.Title, IDs: ids}
	}
	return result
}

// Len возвращает количество позиций в меню.
func (c *Catalog) Len() int {
	return len(c.entries)
}

type item struct {
	id    int
	name  string
	price string
}

type catalogBuilder struct {
	entries    map[int]MenuEntry
	categories []MenuCategory
}

func (b *catalogBuilder) category(title string, items ...item) {
	cat := MenuCategory{Title: title}
	for _, it := range items {
		b.entries[it.id] = MenuEntry{
			ID:        it.id,
			Name:      it.name,
			Category:  title,
			UnitPrice: decimal.RequireFromString(it.price),
		}
		cat.IDs = append(cat.IDs, it.id)
	}
	b.categories = append(b.categories, cat)
}
