// Package journal keeps a persistent history of sync runs and per-item
// outcomes. It is an observer: journal failures are reported by the caller
// but never change sync behavior.
package journal

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"olxsync/internal/logger"
)

type Journal struct {
	db     *gorm.DB
	logger *logger.Logger
}

func Open(databaseURL string, log *logger.Logger) (*Journal, error) {
	var db *gorm.DB
	var err error

	if strings.HasPrefix(databaseURL, "sqlite://") {
		dbPath := strings.TrimPrefix(databaseURL, "sqlite://")
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
	} else {
		db, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to journal database: %w", err)
	}

	createTablesSQL := `
	CREATE TABLE IF NOT EXISTS sync_runs (
		id TEXT PRIMARY KEY,
		started_at TIMESTAMP,
		finished_at TIMESTAMP,
		inserted INTEGER DEFAULT 0,
		updated INTEGER DEFAULT 0,
		skipped INTEGER DEFAULT 0,
		failed INTEGER DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS sync_items (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		sku TEXT NOT NULL,
		outcome TEXT NOT NULL,
		listing_id TEXT,
		error TEXT,
		created_at TIMESTAMP
	);
	`

	for _, stmt := range strings.Split(createTablesSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if err := db.Exec(stmt).Error; err != nil {
			return nil, fmt.Errorf("failed to create journal tables: %w", err)
		}
	}

	return &Journal{db: db, logger: log}, nil
}

// StartRun opens a new run row and returns its ID.
func (j *Journal) StartRun() (string, error) {
	run := SyncRun{StartedAt: time.Now()}
	if err := j.db.Create(&run).Error; err != nil {
		return "", fmt.Errorf("failed to record sync run: %w", err)
	}
	return run.ID, nil
}

// RecordItem stores one per-product outcome.
func (j *Journal) RecordItem(runID, sku, outcome, listingID, errText string) error {
	item := SyncItem{
		RunID:     runID,
		SKU:       sku,
		Outcome:   outcome,
		ListingID: listingID,
		Error:     errText,
		CreatedAt: time.Now(),
	}
	if err := j.db.Create(&item).Error; err != nil {
		return fmt.Errorf("failed to record sync item: %w", err)
	}
	return nil
}

// Run loads one run row.
func (j *Journal) Run(runID string) (*SyncRun, error) {
	var run SyncRun
	if err := j.db.First(&run, "id = ?", runID).Error; err != nil {
		return nil, fmt.Errorf("failed to load sync run: %w", err)
	}
	return &run, nil
}

// Items loads the per-product outcomes of one run in recording order.
func (j *Journal) Items(runID string) ([]SyncItem, error) {
	var items []SyncItem
	if err := j.db.Order("created_at").Find(&items, "run_id = ?", runID).Error; err != nil {
		return nil, fmt.Errorf("failed to load sync items: %w", err)
	}
	return items, nil
}

// FinishRun closes the run row with the final counters.
func (j *Journal) FinishRun(runID string, inserted, updated, skipped, failed int) error {
	now := time.Now()
	err := j.db.Model(&SyncRun{}).Where("id = ?", runID).Updates(map[string]interface{}{
		"finished_at": &now,
		"inserted":    inserted,
		"updated":     updated,
		"skipped":     skipped,
		"failed":      failed,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to finish sync run: %w", err)
	}
	return nil
}
