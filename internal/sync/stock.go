package sync

import (
	"saasusync/internal/config"
	"saasusync/internal/logger"
	"saasusync/internal/models"
)

// StockSyncer pulls stock-on-hand from Saasu onto a variant just before
// the host saves it, so the stored stock level reflects the accounting
// system's count.
type StockSyncer struct {
	config   *config.Config
	logger   *logger.Logger
	api      SaasuAPI
	recorder Recorder
}

func NewStockSyncer(cfg *config.Config, logger *logger.Logger, api SaasuAPI, recorder Recorder) *StockSyncer {
	return &StockSyncer{
		config:   cfg,
		logger:   logger,
		api:      api,
		recorder: recorder,
	}
}

// SyncVariantStock updates variant.Stock from Saasu. Variants without a
// Saasu id, variants with unlimited stock, and an incomplete configuration
// all make this a no-op. On any API failure the variant is left untouched
// and the host save proceeds with the old stock level.
func (s *StockSyncer) SyncVariantStock(variant *models.Variant) {
	if variant == nil || variant.SaasuID == "" || variant.HasUnlimitedStock || !s.config.SaasuValid() {
		return
	}

	item, err := s.api.GetItem(variant.SaasuID)
	if err != nil {
		s.logger.Error("SyncVariantStock -> failed to fetch item %s: %v", variant.SaasuID, err)
		if s.recorder != nil {
			s.recorder.Record(models.FlowStockSync, "item "+variant.SaasuID, "", err)
		}
		return
	}

	// A zero StockOnHand is treated the same as an absent field and not
	// applied. TODO: confirm with accounting whether a genuine zero count
	// should overwrite the host's stock level.
	detail := ""
	if item != nil && item.StockOnHand != 0 {
		variant.Stock = int(item.StockOnHand)
	} else {
		detail = "fetched, not applied"
	}

	if s.recorder != nil {
		s.recorder.Record(models.FlowStockSync, "item "+variant.SaasuID, detail, nil)
	}
}
