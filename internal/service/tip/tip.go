// Package tip реализует выбор чаевых перед оплатой.
package tip

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/pos-terminal/internal/console"
	"github.com/vladislavdragonenkov/pos-terminal/internal/domain"
)

// Preset — фиксированный процент чаевых.
type Preset struct {
	Label string
	Rate  decimal.Decimal
}

// Presets — предлагаемые проценты в порядке меню.
var Presets = []Preset{
	{Label: "10%", Rate: decimal.RequireFromString("0.10")},
	{Label: "15%", Rate: decimal.RequireFromString("0.15")},
	{Label: "18%", Rate: decimal.RequireFromString("0.18")},
}

const (
	optionCustom = "4"
	optionNone   = "5"
)

// Negotiator предлагает варианты чаевых от подытога.
type Negotiator struct {
	prompter *console.Prompter
}

// NewNegotiator создаёт Negotiator поверх prompter.
func NewNegotiator(prompter *console.Prompter) *Negotiator {
	return &Negotiator{prompter: prompter}
}

// Negotiate возвращает сумму чаевых или отмену. Отмена ввода своей суммы
// отменяет весь выбор, меню повторно не показывается.
func (n *Negotiator) Negotiate(subtotal decimal.Decimal) (console.Input[decimal.Decimal], error) {
	amounts := make([]decimal.Decimal, len(Presets))
	options := make([]string, 0, len(Presets)+2)
	for i, preset := range Presets {
		amounts[i] = subtotal.Mul(preset.Rate)
		options = append(options, fmt.Sprint(i+1))
	}
	options = append(options, optionCustom, optionNone)

	n.prompter.Println("\nTip options:")
	for i, preset := range Presets {
		n.prompter.Printf("  [%d] %s (%s)\n", i+1, preset.Label, domain.FormatMoney(amounts[i]))
	}
	n.prompter.Printf("  [%s] Custom\n  [%s] None\n  [B]ack\n", optionCustom, optionNone)

	choice, err := n.prompter.ChoiceFrom("Select: ", options...)
	if err != nil {
		return console.Input[decimal.Decimal]{}, fmt.Errorf("tip choice: %w", err)
	}
	if choice.Cancelled {
		return console.Cancelled[decimal.Decimal](), nil
	}

	switch choice.Value {
	case optionCustom:
		custom, err := n.prompter.PositiveAmount("Amount: ")
		if err != nil {
			return console.Input[decimal.Decimal]{}, fmt.Errorf("tip amount: %w", err)
		}
		return custom, nil
	case optionNone:
		return console.Value(decimal.Zero), nil
	default:
		idx := int(choice.Value[0] - '1')
		return console.Value(amounts[idx]), nil
	}
}
