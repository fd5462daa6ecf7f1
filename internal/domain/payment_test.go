package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTenderResult_Approved(t *testing.T) {
	tests := []struct {
		name   string
		status TenderStatus
		want   bool
	}{
		{name: "approved", status: TenderStatusApproved, want: true},
		{name: "declined", status: TenderStatusDeclined, want: false},
		{name: "cancelled", status: TenderStatusCancelled, want: false},
		{name: "zero value", status: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := TenderResult{Method: TenderMethodCash, Status: tt.status}
			if got := r.Approved(); got != tt.want {
				t.Errorf("Approved() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"5.99", "$5.99"},
		{"13.5374", "$13.54"},
		{"0.0626", "$0.06"},
		{"1.5574", "$1.56"},
		{"100", "$100.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney(decimal.RequireFromString(tt.amount)); got != tt.want {
			t.Errorf("FormatMoney(%s) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}
