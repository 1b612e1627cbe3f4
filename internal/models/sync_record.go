package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyncRecord is one outbound Saasu call and its outcome. Records are the
// only place failed syncs are visible, since flow errors never reach the
// host.
type SyncRecord struct {
	ID        string     `json:"id" gorm:"type:uuid;primary_key"`
	Flow      SyncFlow   `json:"flow" gorm:"not null"`
	Reference string     `json:"reference" gorm:"not null"`
	Status    SyncStatus `json:"status" gorm:"default:OK"`
	Detail    string     `json:"detail"`
	CreatedAt time.Time  `json:"created_at"`
}

type SyncFlow string

const (
	FlowStockSync   SyncFlow = "STOCK_SYNC"
	FlowInvoicePost SyncFlow = "INVOICE_POST"
)

type SyncStatus string

const (
	SyncStatusOK     SyncStatus = "OK"
	SyncStatusFailed SyncStatus = "FAILED"
)

func (r *SyncRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
