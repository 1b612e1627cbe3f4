package sync

import (
	"saasusync/internal/models"
	"saasusync/internal/services/saasu"
)

// SaasuAPI is the slice of the Saasu client the sync flows depend on. Both
// flows are synchronous and blocking; keeping the surface this narrow lets
// the calls be queued or made asynchronous later without touching the
// business logic.
type SaasuAPI interface {
	GetItem(inventoryID string) (*saasu.Item, error)
	PostInvoice(invoice *saasu.Invoice) error
}

// Recorder persists the outcome of one outbound call. The detail notes an
// outcome worth surfacing on an otherwise successful call, such as a
// fetched stock level that was not applied. Implementations must never
// fail the flow; a nil Recorder disables recording.
type Recorder interface {
	Record(flow models.SyncFlow, reference, detail string, err error)
}
