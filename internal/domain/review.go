package domain

// Review is the canonical, load-time-resolved form of every review in the
// corpus. Rating is nil when the source record carried none.
type Review struct {
	Entity string   `json:"entity"`
	Text   string   `json:"review"`
	Rating *float64 `json:"rating,omitempty"`
}

// RatingOrZero is the rating used for label derivation; a missing rating counts as 0.
func (r Review) RatingOrZero() float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

// RecordKind tags how a corpus record was shaped in the source dataset.
type RecordKind int

const (
	// FlatRecord is a single {entity, review, rating} triple.
	FlatRecord RecordKind = iota
	// GroupedRecord is {entity, reviews: [{review, rating}, ...]}.
	GroupedRecord
)

// Record is one entry of the dataset's "all" sequence after shape resolution.
// HasEntity is false when the record carries no entity key at all.
type Record struct {
	Kind      RecordKind
	Entity    string
	HasEntity bool
	Reviews   []Review // one element for FlatRecord
}
