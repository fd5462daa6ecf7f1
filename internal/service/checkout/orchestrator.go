// Package checkout реализует оформление заказа: выбор способа оплаты,
// чаевые и приём оплаты.
package checkout

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pos-terminal/internal/console"
	"github.com/vladislavdragonenkov/pos-terminal/internal/domain"
	"github.com/vladislavdragonenkov/pos-terminal/internal/metrics"
)

// TipNegotiator предлагает чаевые от подытога.
type TipNegotiator interface {
	Negotiate(subtotal decimal.Decimal) (console.Input[decimal.Decimal], error)
}

// Orchestrator проводит заказ через шаги оплаты.
type Orchestrator struct {
	sessionID string
	prompter  *console.Prompter
	tenders   map[domain.TenderMethod]domain.TenderService
	tips      TipNegotiator
	timeline  domain.TimelineRepository
	metrics   *metrics.CheckoutMetrics
	logger    *log.Entry
}

// tenderOptions связывает ответ оператора со способом оплаты.
var tenderOptions = map[string]domain.TenderMethod{
	"CA": domain.TenderMethodCash,
	"CR": domain.TenderMethodCard,
}

// NewOrchestrator создаёт оркестратор. metrics может быть nil.
func NewOrchestrator(
	sessionID string,
	prompter *console.Prompter,
	tenders []domain.TenderService,
	tips TipNegotiator,
	timeline domain.TimelineRepository,
	checkoutMetrics *metrics.CheckoutMetrics,
	logger *log.Entry,
) *Orchestrator {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	byMethod := make(map[domain.TenderMethod]domain.TenderService, len(tenders))
	for _, t := range tenders {
		byMethod[t.Method()] = t
	}
	return &Orchestrator{
		sessionID: sessionID,
		prompter:  prompter,
		tenders:   byMethod,
		tips:      tips,
		timeline:  timeline,
		metrics:   checkoutMetrics,
		logger:    logger.WithField("session_id", sessionID),
	}
}

// Checkout проводит одну попытку оплаты заказа и возвращает true при успехе.
// Заказ не изменяется: очищать его после успешной оплаты должен вызывающий.
// Ошибка возвращается только при сбое ввода-вывода.
func (o *Orchestrator) Checkout(order *domain.Order) (bool, error) {
	if order.IsEmpty() {
		o.prompter.Println("Empty order.")
		o.logger.WithError(domain.ErrEmptyOrder).Debug("checkout skipped")
		return false, nil
	}

	start := time.Now()
	if o.metrics != nil {
		o.metrics.RecordCheckoutStarted()
		defer func() { o.metrics.RecordCheckoutDuration(time.Since(start)) }()
	}

	totals := order.Totals()
	o.record(domain.CheckoutEventStarted, "", totals.Total, "")

	o.prompter.Printf("\n%s\n%s\n%s", console.Border('='), console.Center("PAYMENT"), console.Border('='))
	o.printSummary(totals, decimal.Zero)

	choice, err := o.prompter.ChoiceFrom("Pay [CA]sh or [CR]edit? ([B]ack): ", "CA", "CR")
	if err != nil {
		return false, fmt.Errorf("tender choice: %w", err)
	}
	if choice.Cancelled {
		o.cancel("", totals.Total, "tender choice")
		return false, nil
	}

	method := tenderOptions[choice.Value]
	tender, ok := o.tenders[method]
	if !ok {
		return false, fmt.Errorf("tender %s: %w", method, domain.ErrUnknownTender)
	}
	o.record(domain.CheckoutEventTenderSelected, method, totals.Total, "")

	tip, cancelled, err := o.negotiateTip(totals.Subtotal)
	if err != nil {
		return false, err
	}
	if cancelled {
		o.cancel(method, totals.Total, "tip")
		return false, nil
	}

	due := totals.Total.Add(tip)
	if tip.IsPositive() {
		o.record(domain.CheckoutEventTipAdded, method, tip, "")
		if o.metrics != nil {
			o.metrics.RecordTip(tip.InexactFloat64())
		}
		o.printSummary(totals, tip)
	}

	result, err := tender.Capture(due)
	if err != nil {
		return false, fmt.Errorf("capture %s: %w", method, err)
	}

	switch result.Status {
	case domain.TenderStatusApproved:
		o.record(domain.CheckoutEventApproved, method, due, result.ReceiptID)
		if o.metrics != nil {
			o.metrics.RecordCheckoutApproved(string(method), due.InexactFloat64())
		}
		o.logger.WithFields(log.Fields{
			"tender":     method,
			"amount":     due.StringFixed(2),
			"receipt_id": result.ReceiptID,
		}).Info("checkout approved")
	case domain.TenderStatusDeclined:
		reason := ""
		if result.Reason != nil {
			reason = result.Reason.Error()
		}
		o.record(domain.CheckoutEventDeclined, method, due, reason)
		if o.metrics != nil {
			o.metrics.RecordCheckoutDeclined(string(method))
		}
		entry := o.logger.WithError(result.Reason).WithField("tender", method)
		if domain.IsDecline(result.Reason) {
			entry.Info("checkout declined")
		} else {
			// Отказ без бизнес-причины означает ошибку в сценарии оплаты.
			entry.Warn("checkout declined without a decline reason")
		}
	default:
		o.cancel(method, due, "tender")
	}

	return result.Approved(), nil
}

// negotiateTip спрашивает о чаевых. Отмена на любом шаге отменяет оформление.
func (o *Orchestrator) negotiateTip(subtotal decimal.Decimal) (decimal.Decimal, bool, error) {
	addTip, err := o.prompter.YesNo("Add tip? [Y/N]: ")
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("tip confirmation: %w", err)
	}
	if addTip.Cancelled {
		return decimal.Zero, true, nil
	}
	if !addTip.Value {
		return decimal.Zero, false, nil
	}

	tip, err := o.tips.Negotiate(subtotal)
	if err != nil {
		return decimal.Zero, false, err
	}
	if tip.Cancelled {
		return decimal.Zero, true, nil
	}
	return tip.Value, false, nil
}

func (o *Orchestrator) cancel(method domain.TenderMethod, amount decimal.Decimal, step string) {
	o.prompter.Println("Checkout cancelled.")
	o.record(domain.CheckoutEventCancelled, method, amount, step)
	if o.metrics != nil {
		o.metrics.RecordCheckoutCancelled(string(method))
	}
	o.logger.WithField("step", step).Debug("checkout cancelled")
}

func (o *Orchestrator) record(eventType domain.CheckoutEventType, method domain.TenderMethod, amount decimal.Decimal, reason string) {
	event := domain.CheckoutEvent{
		SessionID: o.sessionID,
		Type:      eventType,
		Tender:    method,
		Amount:    amount,
		Reason:    reason,
		Occurred:  time.Now().UTC(),
	}
	if err := o.timeline.Append(event); err != nil {
		o.logger.WithError(err).WithField("event", eventType).Warn("failed to append checkout event")
	}
}

func (o *Orchestrator) printSummary(totals domain.Totals, tip decimal.Decimal) {
	o.prompter.Printf("\n%s\n", console.Border('='))
	o.prompter.Printf("%s", summaryLine("Subtotal:", totals.Subtotal))
	o.prompter.Printf("%s", summaryLine("HST (13%):", totals.Tax))
	if tip.IsPositive() {
		o.prompter.Printf("%s", summaryLine("Tip:", tip))
	}
	o.prompter.Printf("%s", summaryLine("Total:", totals.Total.Add(tip)))
	o.prompter.Printf("%s\n\n", console.Border('='))
}

func summaryLine(label string, amount decimal.Decimal) string {
	return fmt.Sprintf("%-41s%s%8s\n", label, domain.CurrencySymbol, amount.StringFixed(2))
}
