package sync

import (
	"fmt"
	"time"

	"saasusync/internal/config"
	"saasusync/internal/logger"
	"saasusync/internal/models"
	"saasusync/internal/services/saasu"
)

const (
	listedItemsDesc   = "Listed items"
	unlistedItemsDesc = "Unlisted items"

	shippingLineDesc = "Shipping fee"
	unlistedLineDesc = "Unlisted items in online order"
)

// InvoicePoster turns a completed order into one or two Saasu sale
// invoices. Lines whose variant is listed in Saasu go onto an item invoice
// so stock is adjusted per inventory id; everything else is rolled into a
// single summary charge on a second, service-layout invoice.
type InvoicePoster struct {
	config   *config.Config
	logger   *logger.Logger
	api      SaasuAPI
	recorder Recorder
}

func NewInvoicePoster(cfg *config.Config, logger *logger.Logger, api SaasuAPI, recorder Recorder) *InvoicePoster {
	return &InvoicePoster{
		config:   cfg,
		logger:   logger,
		api:      api,
		recorder: recorder,
	}
}

// PostOrderInvoices builds and posts the invoices for one completed order.
// It never returns an error: a failed post is logged and recorded, and the
// host's checkout flow is never interrupted. The item invoice is posted
// even when it carries no lines, and the service invoice is attempted
// regardless of the item invoice's outcome.
func (p *InvoicePoster) PostOrderInvoices(order *models.Order) {
	if order == nil || !p.config.SaasuValid() {
		return
	}

	parts := p.partitionLines(order)
	po := order.PurchaseOrderRef()

	var itemsPayment *saasu.QuickPayment
	if order.DatePaid != nil {
		itemsPayment = p.buildPayment(order, parts.catalogAmount, listedItemsDesc)
	}
	itemsInvoice := p.buildInvoice(order, false, parts.items, itemsPayment, listedItemsDesc, po)
	p.post(order, itemsInvoice, listedItemsDesc)

	if parts.unlistedAmount > 0 {
		unlistedLine := saasu.LineItem{
			AccountID:   p.config.SaasuServiceAccount,
			Description: unlistedLineDesc,
			TotalAmount: parts.unlistedAmount,
		}
		var unlistedPayment *saasu.QuickPayment
		if order.DatePaid != nil {
			unlistedPayment = p.buildPayment(order, parts.unlistedAmount, unlistedItemsDesc)
		}
		unlistedInvoice := p.buildInvoice(order, true, []saasu.LineItem{unlistedLine}, unlistedPayment, unlistedItemsDesc, po)
		p.post(order, unlistedInvoice, unlistedItemsDesc)
	}
}

type partition struct {
	items          []saasu.LineItem
	catalogAmount  float64
	unlistedAmount float64
}

// partitionLines splits the order's lines into Saasu-listed line items and
// the aggregate value of everything unlisted. Lines without a snapshot are
// skipped. Amounts are accumulated from the snapshot price while the
// emitted line's UnitPrice is the sale price; the two differ when a sale
// discount applied after the snapshot was taken.
func (p *InvoicePoster) partitionLines(order *models.Order) partition {
	parts := partition{items: []saasu.LineItem{}}
	for _, line := range order.Lines {
		if line.Snapshot == nil {
			continue
		}
		if line.Snapshot.SaasuID != "" {
			parts.items = append(parts.items, saasu.LineItem{
				Description: line.Snapshot.Title,
				AccountID:   p.config.SaasuItemAccount,
				Quantity:    line.Quantity,
				UnitPrice:   line.SalePrice,
				InventoryID: line.Snapshot.SaasuID,
			})
			parts.catalogAmount += line.Snapshot.Price * float64(line.Quantity)
		} else {
			parts.unlistedAmount += line.Snapshot.Price * float64(line.Quantity)
		}
	}

	if order.ShippingCost > 0 && p.config.SaasuShippingID != "" {
		parts.items = append(parts.items, saasu.LineItem{
			Description: shippingLineDesc,
			AccountID:   p.config.SaasuItemAccount,
			Quantity:    1,
			UnitPrice:   order.ShippingCost,
			InventoryID: p.config.SaasuShippingID,
		})
		parts.catalogAmount += order.ShippingCost
	}

	return parts
}

// buildPayment builds the quick payment sub-record. Callers must check
// order.DatePaid is set first.
func (p *InvoicePoster) buildPayment(order *models.Order, amount float64, desc string) *saasu.QuickPayment {
	return &saasu.QuickPayment{
		DatePaid:          order.DatePaid.Format(time.RFC3339),
		BankedToAccountID: p.config.SaasuBankAccount,
		Amount:            amount,
		Reference:         fmt.Sprintf("%s(Craft reference: %s)", desc, order.Number),
	}
}

func (p *InvoicePoster) buildInvoice(order *models.Order, service bool, lineItems []saasu.LineItem, payment *saasu.QuickPayment, desc, po string) *saasu.Invoice {
	layout := saasu.LayoutItem
	if service {
		layout = saasu.LayoutService
	}

	reference := fmt.Sprintf("%s - Online order reference: %s", desc, order.Number)
	invoice := &saasu.Invoice{
		LineItems:        lineItems,
		NotesInternal:    reference,
		InvoiceNumber:    saasu.AutoInvoiceNumber,
		InvoiceType:      saasu.InvoiceTypeSaleOrder,
		TransactionType:  saasu.TransactionTypeSale,
		Layout:           layout,
		Summary:          reference,
		IsTaxInc:         true,
		RequiresFollowUp: false,
		TransactionDate:  order.DateOrdered.Format(time.RFC3339),
	}
	if payment != nil {
		invoice.QuickPayment = payment
		invoice.Currency = order.Currency
	}
	if po != "" {
		invoice.PurchaseOrderNumber = po
	}
	return invoice
}

func (p *InvoicePoster) post(order *models.Order, invoice *saasu.Invoice, desc string) {
	err := p.api.PostInvoice(invoice)
	if err != nil {
		p.logger.Error("PostOrderInvoices -> failed to post %q invoice for order %s: %v", desc, order.Number, err)
	}
	if p.recorder != nil {
		p.recorder.Record(models.FlowInvoicePost, fmt.Sprintf("%s order %s", desc, order.Number), "", err)
	}
}
