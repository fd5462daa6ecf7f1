package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutEventType — тип события в журнале оформления заказа.
type CheckoutEventType string

const (
	CheckoutEventStarted        CheckoutEventType = "checkout_started"
	CheckoutEventTenderSelected CheckoutEventType = "tender_selected"
	CheckoutEventTipAdded       CheckoutEventType = "tip_added"
	CheckoutEventApproved       CheckoutEventType = "payment_approved"
	CheckoutEventDeclined       CheckoutEventType = "payment_declined"
	CheckoutEventCancelled      CheckoutEventType = "checkout_cancelled"
)

// CheckoutEvent описывает шаг оформления заказа в рамках сессии терминала.
type CheckoutEvent struct {
	SessionID string
	Type      CheckoutEventType
	Tender    TenderMethod
	Amount    decimal.Decimal
	Reason    string
	Occurred  time.Time
}
