package domain

import "strings"

// CardNetwork — платёжная система карты, определяется по первой цифре.
type CardNetwork string

const (
	CardNetworkVisa            CardNetwork = "Visa"
	CardNetworkMastercard      CardNetwork = "Mastercard"
	CardNetworkAmericanExpress CardNetwork = "American Express"
	CardNetworkDiscover        CardNetwork = "Discover"
	CardNetworkUnknown         CardNetwork = "Unknown"
)

const (
	minCardDigits = 13
	maxCardDigits = 19
	// maskVisible — сколько последних символов остаются видимыми в маске.
	maskVisible = 4
)

// ClassifyCard определяет платёжную систему по первому символу номера.
func ClassifyCard(card string) CardNetwork {
	if card == "" {
		return CardNetworkUnknown
	}
	switch card[0] {
	case '4':
		return CardNetworkVisa
	case '5':
		return CardNetworkMastercard
	case '3':
		return CardNetworkAmericanExpress
	case '6':
		return CardNetworkDiscover
	default:
		return CardNetworkUnknown
	}
}

// IsValidChecksum проверяет номер карты алгоритмом Луна.
// Учитываются только цифры; их должно быть от 13 до 19.
func IsValidChecksum(card string) bool {
	digits := make([]int, 0, len(card))
	for _, r := range card {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) < minCardDigits || len(digits) > maxCardDigits {
		return false
	}

	sum := 0
	for pos := 0; pos < len(digits); pos++ {
		d := digits[len(digits)-1-pos]
		if pos%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

// MaskCard заменяет все символы, кроме последних четырёх, на '*'.
func MaskCard(card string) string {
	if len(card) <= maskVisible {
		return card
	}
	return strings.Repeat("*", len(card)-maskVisible) + card[len(card)-maskVisible:]
}
