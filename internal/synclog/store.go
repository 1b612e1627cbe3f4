package synclog

import (
	"saasusync/internal/logger"
	"saasusync/internal/models"

	"gorm.io/gorm"
)

// Store persists sync records. It is the only place a failed Saasu call
// remains visible, so writes are best-effort: a storage error is logged
// and swallowed rather than allowed to break a sync.
type Store struct {
	db     *gorm.DB
	logger *logger.Logger
}

func NewStore(db *gorm.DB, logger *logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger,
	}
}

// Record writes one outcome row. A nil err records success; the detail
// carries any note about a successful call, and is replaced by the error
// text on a failed one.
func (s *Store) Record(flow models.SyncFlow, reference, detail string, err error) {
	record := models.SyncRecord{
		Flow:      flow,
		Reference: reference,
		Status:    models.SyncStatusOK,
		Detail:    detail,
	}
	if err != nil {
		record.Status = models.SyncStatusFailed
		record.Detail = err.Error()
	}

	if dbErr := s.db.Create(&record).Error; dbErr != nil {
		s.logger.Error("Failed to write sync record: %v", dbErr)
	}
}

// List returns a page of sync records, newest first, optionally filtered
// by flow and status.
func (s *Store) List(page, limit int, flow, status string) ([]models.SyncRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := s.db.Model(&models.SyncRecord{})
	if flow != "" {
		query = query.Where("flow = ?", flow)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var records []models.SyncRecord
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
