package payment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pos-terminal/internal/console"
	"github.com/vladislavdragonenkov/pos-terminal/internal/domain"
)

const pinLength = 4

// CardTender симулирует авторизацию карты: контрольная сумма, тип, маска, PIN.
// Повторов внутри сценария нет: отказ возвращается оркестратору.
type CardTender struct {
	prompter *console.Prompter
	logger   *log.Entry
}

// NewCardTender создаёт сценарий оплаты картой.
func NewCardTender(prompter *console.Prompter, logger *log.Entry) *CardTender {
	if logger == nil {
		logger = log.New().WithField("component", "payment")
	}
	return &CardTender{prompter: prompter, logger: logger.WithField("tender", domain.TenderMethodCard)}
}

// Method возвращает domain.TenderMethodCard.
func (c *CardTender) Method() domain.TenderMethod {
	return domain.TenderMethodCard
}

// Capture проводит одну попытку оплаты картой.
func (c *CardTender) Capture(amount decimal.Decimal) (domain.TenderResult, error) {
	result := domain.TenderResult{Method: domain.TenderMethodCard, Amount: amount}

	card, err := c.prompter.CardNumber("Card number: ")
	if err != nil {
		return result, fmt.Errorf("card number: %w", err)
	}
	if card.Cancelled {
		result.Status = domain.TenderStatusCancelled
		c.logger.Debug("card capture cancelled")
		return result, nil
	}

	if !domain.IsValidChecksum(card.Value) {
		result.Status = domain.TenderStatusDeclined
		result.Reason = domain.ErrInvalidCard
		c.prompter.Println("Invalid card.")
		c.logger.Info("card declined: checksum")
		return result, nil
	}

	result.CardNetwork = domain.ClassifyCard(card.Value)
	result.MaskedCard = domain.MaskCard(card.Value)
	c.prompter.Printf("Type: %s\nCard: %s\n", result.CardNetwork, result.MaskedCard)

	pin, err := c.prompter.PIN("PIN (4 digits): ")
	if err != nil {
		return result, fmt.Errorf("card pin: %w", err)
	}
	if pin.Cancelled {
		result.Status = domain.TenderStatusCancelled
		c.logger.Debug("pin entry cancelled")
		return result, nil
	}
	if len(pin.Value) != pinLength {
		result.Status = domain.TenderStatusDeclined
		result.Reason = domain.ErrInvalidPIN
		c.prompter.Println("Invalid PIN.")
		c.logger.WithField("card", result.MaskedCard).Info("card declined: pin")
		return result, nil
	}

	result.Status = domain.TenderStatusApproved
	result.ReceiptID = uuid.NewString()

	c.prompter.Printf("\n%s\nApproved!\nCharged: %s\nCard: %s\n%s\n\n",
		console.Border('='), domain.FormatMoney(amount), result.MaskedCard, console.Border('='))
	c.logger.WithFields(log.Fields{
		"receipt_id": result.ReceiptID,
		"network":    result.CardNetwork,
		"card":       result.MaskedCard,
	}).Info("card approved")
	return result, nil
}

var _ domain.TenderService = (*CardTender)(nil)
