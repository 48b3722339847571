// Package engine drives the per-product sync decision: skip, insert or
// update, and the ordered create -> image upload -> publish sequence for
// new listings.
package engine

import (
	"errors"
	"io"

	"olxsync/internal/config"
	"olxsync/internal/events"
	"olxsync/internal/feed"
	"olxsync/internal/journal"
	"olxsync/internal/logger"
	"olxsync/internal/skumap"
	"olxsync/internal/transform"
)

// Gateway is the marketplace write surface the engine drives.
type Gateway interface {
	CreateListing(payload *transform.ListingPayload, token string) (string, error)
	UpdateListing(listingID string, payload *transform.ListingPayload, token string) error
	UploadImage(listingID string, image io.Reader, token string) error
	Publish(listingID string, token string) error
}

// ImageFetcher opens a product image as a stream that stays valid until
// the upload call.
type ImageFetcher interface {
	FetchImage(url string) (io.ReadCloser, error)
}

type Engine struct {
	rules       config.ListingRules
	logger      *logger.Logger
	gateway     Gateway
	images      ImageFetcher
	transformer *transform.Transformer
	skus        *skumap.Store
	journal     *journal.Journal
	events      *events.Publisher
}

// New builds an engine. journal and publisher may be nil; they are
// observers, not participants.
func New(rules config.ListingRules, log *logger.Logger, gateway Gateway, images ImageFetcher, skus *skumap.Store, jrnl *journal.Journal, publisher *events.Publisher) *Engine {
	return &Engine{
		rules:       rules,
		logger:      log,
		gateway:     gateway,
		images:      images,
		transformer: transform.NewTransformer(rules),
		skus:        skus,
		journal:     jrnl,
		events:      publisher,
	}
}

// Run processes the catalog strictly sequentially, one product to
// completion before the next. Products outside the eligible categories are
// passed over without any side effect.
func (e *Engine) Run(products []feed.Product, prices map[string]feed.Price, token string) Summary {
	var summary Summary

	runID := e.startRun()

	for i := range products {
		product := &products[i]
		if !e.rules.IsEligibleType(product.Type) {
			continue
		}

		result := e.syncProduct(product, prices, token)
		e.account(&summary, result)
		e.record(runID, result)
	}

	e.finishRun(runID, summary)

	return summary
}

// syncProduct runs one product through the decision states. Every return
// is a terminal outcome; nothing here aborts the run.
func (e *Engine) syncProduct(product *feed.Product, prices map[string]feed.Price, token string) Result {
	result := Result{SKU: product.Code}

	price, ok := prices[product.Code]
	if !ok {
		result.Outcome = OutcomeSkippedNoPrice
		return result
	}

	payload, err := e.transformer.Transform(product, price)
	if err != nil {
		if errors.Is(err, transform.ErrNoAttributes) {
			result.Outcome = OutcomeSkippedNoAttributes
			return result
		}
		result.Outcome = OutcomeFailed
		result.Err = err
		return result
	}

	e.logger.Debug("Payload for %s: %+v", product.Code, payload)

	if listingID, known := e.skus.Get(product.Code); known {
		return e.update(listingID, payload, token, result)
	}
	return e.insert(product, payload, token, result)
}

func (e *Engine) update(listingID string, payload *transform.ListingPayload, token string, result Result) Result {
	result.ListingID = listingID

	if err := e.gateway.UpdateListing(listingID, payload, token); err != nil {
		result.Outcome = OutcomeFailed
		result.Err = err
		return result
	}

	result.Outcome = OutcomeUpdated
	return result
}

// insert acquires the image before creating the listing, so a listing that
// cannot be illustrated is never created. The SKU mapping is recorded
// right after a successful create; upload or publish failures afterwards
// do not unwind it.
func (e *Engine) insert(product *feed.Product, payload *transform.ListingPayload, token string, result Result) Result {
	image, err := e.images.FetchImage(product.Image)
	if err != nil {
		result.Outcome = OutcomeSkippedImageFailure
		result.Err = err
		return result
	}
	defer image.Close()

	listingID, err := e.gateway.CreateListing(payload, token)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Err = err
		return result
	}

	e.skus.Put(product.Code, listingID)
	result.ListingID = listingID

	if err := e.gateway.UploadImage(listingID, image, token); err != nil {
		e.logger.Warn("Image upload failed for %s (listing %s): %v", product.Code, listingID, err)
	}
	if err := e.gateway.Publish(listingID, token); err != nil {
		e.logger.Warn("Publish failed for %s (listing %s): %v", product.Code, listingID, err)
	}

	result.Outcome = OutcomeInserted
	return result
}

func (e *Engine) account(summary *Summary, result Result) {
	switch {
	case result.Outcome == OutcomeInserted:
		summary.Inserted++
	case result.Outcome == OutcomeUpdated:
		summary.Updated++
	case result.Outcome.Skipped():
		summary.Skipped++
	default:
		summary.Failed++
	}

	switch {
	case result.Outcome.Synced():
		e.logger.Info("%s: %s (listing %s), %d synced", result.SKU, result.Outcome, result.ListingID, summary.Synced())
	case result.Err != nil:
		e.logger.Error("%s: %s: %v", result.SKU, result.Outcome, result.Err)
	default:
		e.logger.Debug("%s: %s", result.SKU, result.Outcome)
	}
}

func (e *Engine) startRun() string {
	if e.journal == nil {
		return ""
	}
	runID, err := e.journal.StartRun()
	if err != nil {
		e.logger.Warn("Journal unavailable for this run: %v", err)
		return ""
	}
	return runID
}

func (e *Engine) record(runID string, result Result) {
	if e.journal != nil && runID != "" {
		errText := ""
		if result.Err != nil {
			errText = result.Err.Error()
		}
		if err := e.journal.RecordItem(runID, result.SKU, string(result.Outcome), result.ListingID, errText); err != nil {
			e.logger.Warn("Failed to journal item %s: %v", result.SKU, err)
		}
	}

	if e.events == nil {
		return
	}

	var eventType string
	switch result.Outcome {
	case OutcomeInserted:
		eventType = events.TypeInserted
	case OutcomeUpdated:
		eventType = events.TypeUpdated
	case OutcomeFailed:
		eventType = events.TypeSyncFailed
	default:
		return
	}

	data := map[string]interface{}{"listing_id": result.ListingID}
	if result.Err != nil {
		data["error"] = result.Err.Error()
	}
	e.events.Publish(events.Event{Type: eventType, SKU: result.SKU, Data: data})
}

func (e *Engine) finishRun(runID string, summary Summary) {
	if e.journal == nil || runID == "" {
		return
	}
	if err := e.journal.FinishRun(runID, summary.Inserted, summary.Updated, summary.Skipped, summary.Failed); err != nil {
		e.logger.Warn("Failed to close journal run: %v", err)
	}
}
