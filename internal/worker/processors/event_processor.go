package processors

import (
	"fmt"
	"time"

	"saasusync/internal/config"
	"saasusync/internal/logger"
	"saasusync/internal/models"
	"saasusync/internal/sync"
)

// Event is one commerce lifecycle event from the host. Order events carry
// the fully resolved order, line snapshots included, so the worker never
// reads host storage.
type Event struct {
	Type      string        `json:"type"`
	OrderID   string        `json:"order_id"`
	Order     *models.Order `json:"order"`
	Timestamp time.Time     `json:"timestamp"`
}

const EventOrderCompleted = "order.completed"

type EventProcessor struct {
	config   *config.Config
	logger   *logger.Logger
	invoices *sync.InvoicePoster
}

func NewEventProcessor(cfg *config.Config, logger *logger.Logger, invoices *sync.InvoicePoster) *EventProcessor {
	return &EventProcessor{
		config:   cfg,
		logger:   logger,
		invoices: invoices,
	}
}

// Process handles one event. Stock sync has no event here: it only makes
// sense inside the host's synchronous save path, via the HTTP hook.
func (ep *EventProcessor) Process(event Event) error {
	switch event.Type {
	case EventOrderCompleted:
		if event.Order == nil {
			return fmt.Errorf("order.completed event for order %s carries no order payload", event.OrderID)
		}
		ep.invoices.PostOrderInvoices(event.Order)
		return nil
	default:
		ep.logger.Debug("Skipping event type: %s", event.Type)
		return nil
	}
}
