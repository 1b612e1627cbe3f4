package models

import "time"

// Order is a read-only view of a completed host order. It is captured at
// order-complete time and never mutated by this service.
type Order struct {
	ID                  string      `json:"id"`
	Number              string      `json:"number"`
	Lines               []OrderLine `json:"lines"`
	ShippingCost        float64     `json:"shipping_cost"`
	DatePaid            *time.Time  `json:"date_paid"`
	DateOrdered         time.Time   `json:"date_ordered"`
	Currency            string      `json:"currency"`
	PaymentMethodHandle string      `json:"payment_method_handle"`
	OrderReference      string      `json:"order_reference"`
}

type OrderLine struct {
	Snapshot  *LineItemSnapshot `json:"snapshot"`
	Quantity  int               `json:"quantity"`
	SalePrice float64           `json:"sale_price"`
}

// LineItemSnapshot holds the variant fields the host froze into the line
// item when the order was placed. SaasuID is only present when the snapshot
// capture hook added it to the field set.
type LineItemSnapshot struct {
	Title   string  `json:"title"`
	Price   float64 `json:"price"`
	SaasuID string  `json:"saasuId"`
}

// PaymentMethodPurchaseOrder is the gateway handle that marks an order as
// paid against a customer purchase order.
const PaymentMethodPurchaseOrder = "purchaseOrder"

// PurchaseOrderRef returns the customer's purchase order reference, or ""
// when the order was not placed through the purchase order gateway.
func (o *Order) PurchaseOrderRef() string {
	if o.PaymentMethodHandle == PaymentMethodPurchaseOrder {
		return o.OrderReference
	}
	return ""
}
