package engine

// Outcome is the terminal result of processing one product. The engine
// inspects outcomes explicitly; per-item errors never escape the item
// boundary.
type Outcome string

const (
	OutcomeSkippedNoPrice      Outcome = "skipped_no_price"
	OutcomeSkippedNoAttributes Outcome = "skipped_no_attributes"
	OutcomeSkippedImageFailure Outcome = "skipped_image_failure"
	OutcomeInserted            Outcome = "inserted"
	OutcomeUpdated             Outcome = "updated"
	OutcomeFailed              Outcome = "failed"
)

// Synced reports whether the outcome counts toward the run's success total.
func (o Outcome) Synced() bool {
	return o == OutcomeInserted || o == OutcomeUpdated
}

func (o Outcome) Skipped() bool {
	return o == OutcomeSkippedNoPrice || o == OutcomeSkippedNoAttributes || o == OutcomeSkippedImageFailure
}

type Result struct {
	SKU       string
	Outcome   Outcome
	ListingID string
	Err       error
}

// Summary aggregates one run.
type Summary struct {
	Inserted int
	Updated  int
	Skipped  int
	Failed   int
}

func (s Summary) Synced() int {
	return s.Inserted + s.Updated
}
