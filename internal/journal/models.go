package journal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SyncRun struct {
	ID         string `gorm:"primaryKey"`
	StartedAt  time.Time
	FinishedAt *time.Time
	Inserted   int
	Updated    int
	Skipped    int
	Failed     int
}

func (r *SyncRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

type SyncItem struct {
	ID        string `gorm:"primaryKey"`
	RunID     string
	SKU       string `gorm:"column:sku"`
	Outcome   string
	ListingID string
	Error     string
	CreatedAt time.Time
}

func (i *SyncItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
