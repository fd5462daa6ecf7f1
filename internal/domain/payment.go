package domain

import "github.com/shopspring/decimal"

// TenderMethod — способ оплаты.
type TenderMethod string

const (
	TenderMethodCash TenderMethod = "cash"
	TenderMethodCard TenderMethod = "card"
)

// TenderStatus описывает конечное состояние попытки оплаты.
type TenderStatus string

const (
	// TenderStatusApproved — оплата принята.
	TenderStatusApproved TenderStatus = "approved"
	// TenderStatusDeclined — бизнес-отказ: не хватает наличных, неверная карта или PIN.
	TenderStatusDeclined TenderStatus = "declined"
	// TenderStatusCancelled — оператор вернулся назад.
	TenderStatusCancelled TenderStatus = "cancelled"
)

// TenderResult — результат одной попытки оплаты. Не сохраняется.
type TenderResult struct {
	Method TenderMethod
	Status TenderStatus
	// Amount — сумма к оплате (итог с чаевыми).
	Amount decimal.Decimal
	// Tendered — внесённая наличность (только cash).
	Tendered decimal.Decimal
	// Change — сдача при одобренной оплате наличными.
	Change decimal.Decimal
	// Shortfall — недостающая сумма при отказе по наличным.
	Shortfall decimal.Decimal
	// CardNetwork и MaskedCard заполняются для карт, прошедших проверку.
	CardNetwork CardNetwork
	MaskedCard  string
	// Reason содержит причину отказа (ошибку домена).
	Reason error
	// ReceiptID присваивается только одобренной оплате.
	ReceiptID string
}

// Approved сообщает, завершилась ли оплата успехом.
func (r TenderResult) Approved() bool {
	return r.Status == TenderStatusApproved
}
