package domain

import (
	"strconv"
	"testing"
)

// luhnComplete дописывает контрольную цифру к префиксу.
func luhnComplete(prefix string) string {
	for d := 0; d <= 9; d++ {
		candidate := prefix + strconv.Itoa(d)
		if IsValidChecksum(candidate) {
			return candidate
		}
	}
	panic("no check digit for " + prefix)
}

func TestClassifyCard(t *testing.T) {
	tests := []struct {
		card string
		want CardNetwork
	}{
		{"4111111111111111", CardNetworkVisa},
		{"5500000000000004", CardNetworkMastercard},
		{"340000000000009", CardNetworkAmericanExpress},
		{"6011000000000004", CardNetworkDiscover},
		{"", CardNetworkUnknown},
		{"7000000000000", CardNetworkUnknown},
		{"1234567890123", CardNetworkUnknown},
	}

	for _, tt := range tests {
		if got := ClassifyCard(tt.card); got != tt.want {
			t.Errorf("ClassifyCard(%q) = %s, want %s", tt.card, got, tt.want)
		}
	}
}

func TestIsValidChecksum_KnownNumbers(t *testing.T) {
	valid := []string{
		"4111111111111111",
		"5500000000000004",
		"340000000000009",
		"6011000000000004",
		"4222222222222",
	}
	for _, card := range valid {
		if !IsValidChecksum(card) {
			t.Errorf("expected %s to be valid", card)
		}
	}

	invalid := []string{
		"4111111111111112",
		"",
		// 12 и 20 цифр
		"411111111111",
		"41111111111111111111",
	}
	for _, card := range invalid {
		if IsValidChecksum(card) {
			t.Errorf("expected %s to be invalid", card)
		}
	}
}

func TestIsValidChecksum_IgnoresNonDigits(t *testing.T) {
	if !IsValidChecksum("4111-1111 1111-1111") {
		t.Fatal("separators must be ignored")
	}
}

func TestIsValidChecksum_GeneratedLengths(t *testing.T) {
	for length := 13; length <= 19; length++ {
		prefix := "4"
		for i := 1; i < length-1; i++ {
			prefix += strconv.Itoa((i * 7) % 10)
		}
		card := luhnComplete(prefix)
		if len(card) != length {
			t.Fatalf("generated %d digits, want %d", len(card), length)
		}
		if !IsValidChecksum(card) {
			t.Fatalf("expected generated card %s to be valid", card)
		}
	}
}

func TestIsValidChecksum_SingleDigitMutation(t *testing.T) {
	valid := []string{
		"4111111111111111",
		"6011000000000004",
		luhnComplete("37828224631000"),
		luhnComplete("601100099013942"),
		luhnComplete("451200000000000004"),
	}

	for _, card := range valid {
		for pos := 0; pos < len(card); pos++ {
			for d := byte('0'); d <= '9'; d++ {
				if card[pos] == d {
					continue
				}
				mutated := card[:pos] + string(d) + card[pos+1:]
				if IsValidChecksum(mutated) {
					t.Fatalf("mutation %s of %s (pos %d) must be invalid", mutated, card, pos)
				}
			}
		}
	}
}

func TestMaskCard(t *testing.T) {
	tests := []struct {
		card string
		want string
	}{
		{"4111111111111111", "************1111"},
		{"340000000000009", "***********0009"},
		{"1234", "1234"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := MaskCard(tt.card); got != tt.want {
			t.Errorf("MaskCard(%q) = %q, want %q", tt.card, got, tt.want)
		}
	}
}
