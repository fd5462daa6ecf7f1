package domain

import "github.com/shopspring/decimal"

// CurrencySymbol — префикс денежных сумм на экране.
const CurrencySymbol = "$"

// FormatMoney форматирует сумму с двумя знаками после запятой и префиксом валюты.
func FormatMoney(amount decimal.Decimal) string {
	return CurrencySymbol + amount.StringFixed(2)
}
