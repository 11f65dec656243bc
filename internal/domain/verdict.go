package domain

// Label is the tri-class outcome of aggregating polarity scores.
type Label int

const (
	Neutral Label = iota
	Favorable
	Unfavorable
)

func (l Label) String() string {
	switch l {
	case Favorable:
		return "favorable"
	case Unfavorable:
		return "unfavorable"
	default:
		return "neutral"
	}
}

// Verdict holds the per-request aggregate for one entity. Never cached.
type Verdict struct {
	Total    int   `json:"total"`
	Positive int   `json:"positive"`
	Negative int   `json:"negative"`
	Neutral  int   `json:"neutral"`
	Label    Label `json:"-"`
}
