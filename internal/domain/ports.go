package domain

import "github.com/shopspring/decimal"

// TenderService описывает сценарий приёма оплаты одним способом.
type TenderService interface {
	// Method возвращает способ оплаты, который обслуживает сценарий.
	Method() TenderMethod
	// Capture принимает оплату суммы amount. Ошибка возвращается только при
	// сбое ввода-вывода; отказ и отмена выражаются через TenderResult.Status.
	Capture(amount decimal.Decimal) (TenderResult, error)
}

// TimelineRepository хранит журнал оформления заказов текущей сессии.
type TimelineRepository interface {
	Append(event CheckoutEvent) error
	List(sessionID string) ([]CheckoutEvent, error)
}
