package app

import (
	"io"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/pos-terminal/internal/console"
	"github.com/vladislavdragonenkov/pos-terminal/internal/domain"
	"github.com/vladislavdragonenkov/pos-terminal/internal/metrics"
	"github.com/vladislavdragonenkov/pos-terminal/internal/service/checkout"
	"github.com/vladislavdragonenkov/pos-terminal/internal/service/payment"
	"github.com/vladislavdragonenkov/pos-terminal/internal/service/tip"
	"github.com/vladislavdragonenkov/pos-terminal/internal/storage/memory"
	"github.com/vladislavdragonenkov/pos-terminal/internal/terminal"
)

// Dependencies содержит все зависимости одной сессии терминала.
type Dependencies struct {
	SessionID    string
	Prompter     *console.Prompter
	Catalog      *domain.Catalog
	TimelineRepo domain.TimelineRepository
	Tenders      []domain.TenderService
	Tips         *tip.Negotiator
	Metrics      *metrics.CheckoutMetrics
	Orchestrator *checkout.Orchestrator
	Logger       *log.Entry
}

// NewDependencies собирает сессию поверх заданного ввода и вывода.
// Метрики регистрируются в registerer.
func NewDependencies(in io.Reader, out io.Writer, registerer prometheus.Registerer, logger *log.Entry) *Dependencies {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	sessionID := uuid.NewString()
	prompter := console.NewPrompter(in, out)
	timelineRepo := memory.NewTimelineRepository()
	checkoutMetrics := metrics.NewCheckoutMetricsWithRegisterer(registerer)
	tenders := []domain.TenderService{
		payment.NewCashTender(prompter, logger.WithField("component", "cash")),
		payment.NewCardTender(prompter, logger.WithField("component", "card")),
	}
	tips := tip.NewNegotiator(prompter)

	orchestrator := checkout.NewOrchestrator(
		sessionID,
		prompter,
		tenders,
		tips,
		timelineRepo,
		checkoutMetrics,
		logger.WithField("component", "checkout"),
	)

	return &Dependencies{
		SessionID:    sessionID,
		Prompter:     prompter,
		Catalog:      domain.DefaultCatalog(),
		TimelineRepo: timelineRepo,
		Tenders:      tenders,
		Tips:         tips,
		Metrics:      checkoutMetrics,
		Orchestrator: orchestrator,
		Logger:       logger,
	}
}

// Terminal создаёт терминал поверх собранных зависимостей.
func (d *Dependencies) Terminal() *terminal.Terminal {
	return terminal.New(terminal.Config{
		SessionID: d.SessionID,
		Prompter:  d.Prompter,
		Catalog:   d.Catalog,
		Checkout:  d.Orchestrator,
		Timeline:  d.TimelineRepo,
		Metrics:   d.Metrics,
		Logger:    d.Logger.WithField("component", "terminal"),
	})
}
