package payment

import (
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/pos-terminal/internal/domain"
)

// MockTender — конфигурируемая заглушка TenderService для тестов оркестратора.
type MockTender struct {
	TenderMethod domain.TenderMethod
	Status       domain.TenderStatus
	Reason       error
	Err          error

	CaptureCalls int
	LastAmount   decimal.Decimal
}

// NewMockTender возвращает mock с успешным сценарием по умолчанию.
func NewMockTender(method domain.TenderMethod) *MockTender {
	return &MockTender{
		TenderMethod: method,
		Status:       domain.TenderStatusApproved,
	}
}

// Method возвращает настроенный способ оплаты.
func (m *MockTender) Method() domain.TenderMethod {
	return m.TenderMethod
}

// Capture возвращает заранее настроенный результат и считает вызовы.
func (m *MockTender) Capture(amount decimal.Decimal) (domain.TenderResult, error) {
	m.CaptureCalls++
	m.LastAmount = amount
	return domain.TenderResult{
		Method: m.TenderMethod,
		Status: m.Status,
		Amount: amount,
		Reason: m.Reason,
	}, m.Err
}

var _ domain.TenderService = (*MockTender)(nil)
