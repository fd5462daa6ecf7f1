package payment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pos-terminal/internal/console"
	"github.com/vladislavdragonenkov/pos-terminal/internal/domain"
)

// CashTender принимает оплату наличными и считает сдачу.
type CashTender struct {
	prompter *console.Prompter
	logger   *log.Entry
}

// NewCashTender создаёт сценарий оплаты наличными.
func NewCashTender(prompter *console.Prompter, logger *log.Entry) *CashTender {
	if logger == nil {
		logger = log.New().WithField("component", "payment")
	}
	return &CashTender{prompter: prompter, logger: logger.WithField("tender", domain.TenderMethodCash)}
}

// Method возвращает domain.TenderMethodCash.
func (c *CashTender) Method() domain.TenderMethod {
	return domain.TenderMethodCash
}

// Capture запрашивает внесённую сумму один раз. Недостаточная сумма — отказ,
// повтор решает вызывающая сторона.
func (c *CashTender) Capture(amount decimal.Decimal) (domain.TenderResult, error) {
	result := domain.TenderResult{Method: domain.TenderMethodCash, Amount: amount}

	tendered, err := c.prompter.PositiveAmount("Enter amount: ")
	if err != nil {
		return result, fmt.Errorf("cash amount: %w", err)
	}
	if tendered.Cancelled {
		result.Status = domain.TenderStatusCancelled
		c.logger.Debug("cash capture cancelled")
		return result, nil
	}

	result.Tendered = tendered.Value
	if tendered.Value.LessThan(amount) {
		result.Status = domain.TenderStatusDeclined
		result.Shortfall = amount.Sub(tendered.Value)
		result.Reason = domain.ErrInsufficientCash
		c.prompter.Printf("Need %s more.\n", domain.FormatMoney(result.Shortfall))
		c.logger.WithField("shortfall", result.Shortfall.StringFixed(2)).Info("cash declined")
		return result, nil
	}

	result.Status = domain.TenderStatusApproved
	result.Change = tendered.Value.Sub(amount)
	result.ReceiptID = uuid.NewString()

	c.prompter.Printf("\n%s\nChange: %s\n%s\nThank you!\n\n", console.Border('='), domain.FormatMoney(result.Change), console.Border('='))
	c.logger.WithFields(log.Fields{
		"receipt_id": result.ReceiptID,
		"change":     result.Change.StringFixed(2),
	}).Info("cash approved")
	return result, nil
}

var _ domain.TenderService = (*CashTender)(nil)
