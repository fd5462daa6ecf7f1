// Package terminal реализует верхнее меню кассового терминала:
// добавление, изменение, удаление позиций, просмотр, оплату и выход.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pos-terminal/internal/console"
	"github.com/vladislavdragonenkov/pos-terminal/internal/domain"
	"github.com/vladislavdragonenkov/pos-terminal/internal/metrics"
)

// Checkouter проводит оплату заказа.
type Checkouter interface {
	Checkout(order *domain.Order) (bool, error)
}

// Terminal — сессия одного оператора с единственным заказом.
type Terminal struct {
	sessionID string
	prompter  *console.Prompter
	catalog   *domain.Catalog
	order     *domain.Order
	checkout  Checkouter
	timeline  domain.TimelineRepository
	metrics   *metrics.CheckoutMetrics
	logger    *log.Entry
}

// Config задаёт зависимости терминала. Metrics и Logger необязательны.
type Config struct {
	SessionID string
	Prompter  *console.Prompter
	Catalog   *domain.Catalog
	Checkout  Checkouter
	Timeline  domain.TimelineRepository
	Metrics   *metrics.CheckoutMetrics
	Logger    *log.Entry
}

// New создаёт терминал с пустым заказом.
func New(cfg Config) *Terminal {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New().WithField("component", "terminal")
	}
	return &Terminal{
		sessionID: cfg.SessionID,
		prompter:  cfg.Prompter,
		catalog:   cfg.Catalog,
		order:     domain.NewOrder(),
		checkout:  cfg.Checkout,
		timeline:  cfg.Timeline,
		metrics:   cfg.Metrics,
		logger:    logger.WithField("session_id", cfg.SessionID),
	}
}

// Order возвращает заказ сессии.
func (t *Terminal) Order() *domain.Order {
	return t.order
}

// Run показывает меню и обрабатывает команды до выхода оператора или конца ввода.
func (t *Terminal) Run() error {
	RenderMenu(t.prompter.Writer(), t.catalog)
	t.logger.Info("session started")

	err := t.loop()
	t.logSummary()
	if errors.Is(err, io.EOF) {
		t.logger.Debug("input closed")
		return nil
	}
	return err
}

func (t *Terminal) loop() error {
	for {
		t.prompter.Println("\nOptions: [A]dd, [U]pdate, [R]emove, [V]iew, [P]ay, [Q]uit")
		raw, err := t.prompter.ReadLine("Select: ")
		if err != nil {
			return err
		}

		switch strings.ToUpper(strings.TrimSpace(raw)) {
		case "A":
			err = t.add()
		case "U":
			err = t.update()
		case "R":
			err = t.remove()
		case "V":
			RenderReceipt(t.prompter.Writer(), t.order)
		case "P":
			err = t.pay()
		case "Q":
			quit, qerr := t.confirmQuit()
			if qerr != nil {
				return qerr
			}
			if quit {
				t.prompter.Println("Thanks!")
				return nil
			}
		default:
			t.prompter.Println("Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (t *Terminal) add() error {
	prompt := fmt.Sprintf("Item (%d-%d) or [B]ack: ", domain.MinMenuID, domain.MaxMenuID)
	for {
		id, err := t.prompter.PositiveInt(prompt, 0, 0)
		if err != nil {
			return err
		}
		if id.Cancelled {
			return nil
		}

		line, err := t.order.AddItem(t.catalog, id.Value)
		if err != nil {
			t.prompter.Printf("Invalid: %d. Select %d-%d.\n", id.Value, domain.MinMenuID, domain.MaxMenuID)
			t.logger.WithError(err).Debug("add rejected")
			continue
		}
		if line.Quantity > 1 {
			t.prompter.Printf("Added '%s' (%s). Qty: %d\n", line.Name, domain.FormatMoney(line.UnitPrice), line.Quantity)
		} else {
			t.prompter.Printf("Added '%s' (%s)\n", line.Name, domain.FormatMoney(line.UnitPrice))
		}
		t.orderChanged()
	}
}

func (t *Terminal) update() error {
	if t.order.IsEmpty() {
		t.prompter.Println("Empty order.")
		return nil
	}
	RenderReceipt(t.prompter.Writer(), t.order)

	for !t.order.IsEmpty() {
		pos, err := t.prompter.PositiveInt("Position or [B]ack: ", 1, t.order.Len())
		if err != nil {
			return err
		}
		if pos.Cancelled {
			return nil
		}

		qty, err := t.prompter.PositiveInt("Qty or [B]ack: ", 0, 0)
		if err != nil {
			return err
		}
		if qty.Cancelled {
			continue
		}

		name := t.order.Lines()[pos.Value-1].Name
		old, err := t.order.UpdateQuantity(pos.Value-1, qty.Value)
		switch {
		case errors.Is(err, domain.ErrQuantityInvalid):
			t.prompter.Println("Qty must be positive.")
		case err != nil:
			t.prompter.Println("Invalid index.")
		default:
			t.prompter.Printf("Updated '%s': %d → %d\n", name, old, qty.Value)
			t.orderChanged()
		}
		RenderReceipt(t.prompter.Writer(), t.order)
	}
	return nil
}

func (t *Terminal) remove() error {
	if t.order.IsEmpty() {
		t.prompter.Println("Empty order.")
		return nil
	}
	RenderReceipt(t.prompter.Writer(), t.order)

	for !t.order.IsEmpty() {
		pos, err := t.prompter.PositiveInt("Position or [B]ack: ", 1, t.order.Len())
		if err != nil {
			return err
		}
		if pos.Cancelled {
			return nil
		}

		removed, err := t.order.RemoveItem(pos.Value - 1)
		if err != nil {
			t.prompter.Printf("Invalid index: %d.\n", pos.Value-1)
			continue
		}
		t.prompter.Printf("Removed '%s' (%s)\n", removed.Name, domain.FormatMoney(removed.UnitPrice))
		t.orderChanged()
		RenderReceipt(t.prompter.Writer(), t.order)
	}
	return nil
}

func (t *Terminal) pay() error {
	ok, err := t.checkout.Checkout(t.order)
	if err != nil {
		return err
	}
	if ok {
		t.order.Clear()
		t.orderChanged()
		t.prompter.Println("New order...")
	}
	return nil
}

func (t *Terminal) confirmQuit() (bool, error) {
	if t.order.IsEmpty() {
		return true, nil
	}
	sure, err := t.prompter.YesNo("Sure? [Y/N]: ")
	if err != nil {
		return false, err
	}
	return !sure.Cancelled && sure.Value, nil
}

func (t *Terminal) orderChanged() {
	if t.metrics != nil {
		t.metrics.SetOpenOrderLines(t.order.Len())
	}
}

// logSummary пишет в лог итоги сессии по журналу оформлений.
func (t *Terminal) logSummary() {
	if t.timeline == nil {
		return
	}
	events, err := t.timeline.List(t.sessionID)
	if err != nil {
		t.logger.WithError(err).Warn("failed to read checkout journal")
		return
	}

	counts := make(map[domain.CheckoutEventType]int)
	for _, ev := range events {
		counts[ev.Type]++
	}
	t.logger.WithFields(log.Fields{
		"checkouts":  counts[domain.CheckoutEventStarted],
		"approved":   counts[domain.CheckoutEventApproved],
		"declined":   counts[domain.CheckoutEventDeclined],
		"cancelled":  counts[domain.CheckoutEventCancelled],
		"open_lines": t.order.Len(),
	}).Info("session closed")
}
