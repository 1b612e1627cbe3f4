package saasu

// Saasu's REST API uses PascalCase JSON fields throughout.

// Item is the subset of a Saasu inventory item this service reads.
type Item struct {
	ID          int     `json:"Id"`
	Code        string  `json:"Code"`
	Description string  `json:"Description"`
	StockOnHand float64 `json:"StockOnHand"`
}

// LineItem is one invoice line. Catalog lines carry an InventoryId and a
// per-unit price; service lines carry only a total amount.
type LineItem struct {
	Description string  `json:"Description"`
	AccountID   string  `json:"AccountId"`
	Quantity    int     `json:"Quantity,omitempty"`
	UnitPrice   float64 `json:"UnitPrice,omitempty"`
	InventoryID string  `json:"InventoryId,omitempty"`
	TotalAmount float64 `json:"TotalAmount,omitempty"`
}

// QuickPayment records that an invoice was settled at creation time.
type QuickPayment struct {
	DatePaid          string  `json:"DatePaid"`
	BankedToAccountID string  `json:"BankedToAccountId"`
	Amount            float64 `json:"Amount"`
	Reference         string  `json:"Reference"`
}

// Invoice is the payload posted to the Saasu Invoice endpoint.
type Invoice struct {
	LineItems           []LineItem    `json:"LineItems"`
	NotesInternal       string        `json:"NotesInternal"`
	InvoiceNumber       string        `json:"InvoiceNumber"`
	InvoiceType         string        `json:"InvoiceType"`
	TransactionType     string        `json:"TransactionType"`
	Layout              string        `json:"Layout"`
	Summary             string        `json:"Summary"`
	IsTaxInc            bool          `json:"IsTaxInc"`
	RequiresFollowUp    bool          `json:"RequiresFollowUp"`
	TransactionDate     string        `json:"TransactionDate"`
	QuickPayment        *QuickPayment `json:"QuickPayment,omitempty"`
	Currency            string        `json:"Currency,omitempty"`
	PurchaseOrderNumber string        `json:"PurchaseOrderNumber,omitempty"`
}

const (
	// AutoInvoiceNumber tells Saasu to assign the invoice number itself.
	AutoInvoiceNumber = "<Auto Number>"

	InvoiceTypeSaleOrder = "Sale Order"
	TransactionTypeSale  = "S"

	// Item invoices list trackable inventory lines; service invoices carry
	// summary charges with no inventory id.
	LayoutItem    = "I"
	LayoutService = "S"
)
