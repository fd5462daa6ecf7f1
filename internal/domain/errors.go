package domain

import "errors"

var (
	// ErrUnknownMenuItem — идентификатор вне меню (1..16).
	ErrUnknownMenuItem = errors.New("unknown menu item")
	// ErrLineIndexOutOfRange — позиция заказа вне текущих границ.
	ErrLineIndexOutOfRange = errors.New("order line index out of range")
	// ErrQuantityInvalid — количество должно быть положительным.
	ErrQuantityInvalid = errors.New("quantity must be greater than zero")
	// ErrEmptyOrder — попытка оплатить пустой заказ.
	ErrEmptyOrder = errors.New("order is empty")
	// ErrInsufficientCash — внесённой наличности не хватает на итог.
	ErrInsufficientCash = errors.New("insufficient cash tendered")
	// ErrInvalidCard — номер карты не прошёл проверку контрольной суммы.
	ErrInvalidCard = errors.New("invalid card number")
	// ErrInvalidPIN — PIN не состоит ровно из 4 цифр.
	ErrInvalidPIN = errors.New("invalid pin")
	// ErrUnknownTender — способ оплаты не поддерживается терминалом.
	ErrUnknownTender = errors.New("unknown tender method")
)

// IsDecline сообщает, является ли ошибка бизнес-отказом в оплате.
func IsDecline(err error) bool {
	return errors.Is(err, ErrInsufficientCash) ||
		errors.Is(err, ErrInvalidCard) ||
		errors.Is(err, ErrInvalidPIN)
}
