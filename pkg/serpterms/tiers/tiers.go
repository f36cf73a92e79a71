package tiers

import "github.com/cognicore/serpterms/pkg/serpterms/rank"

// Tier is a priority bucket derived from title coverage.
type Tier int

const (
	MustHave Tier = iota
	ShouldHave
	NiceToHave
)

func (t Tier) String() string {
	switch t {
	case MustHave:
		return "mustHave"
	case ShouldHave:
		return "shouldHave"
	case NiceToHave:
		return "niceToHave"
	}
	return "unknown"
}

// Defaults for the classification policy.
const (
	DefaultMustHaveRatio   = 0.5
	DefaultShouldHaveRatio = 0.3
	DefaultCap             = 10
)

// Thresholds are title-coverage cut points, as fractions of the batch size.
type Thresholds struct {
	MustHave   float64
	ShouldHave float64
}

// DefaultThresholds returns the 50% / 30% cut points.
func DefaultThresholds() Thresholds {
	return Thresholds{MustHave: DefaultMustHaveRatio, ShouldHave: DefaultShouldHaveRatio}
}

// Classifier buckets ranked terms by title coverage.
type Classifier struct {
	thresholds Thresholds
	cap        int
}

// NewClassifier creates a classifier. A cap of zero or less means unlimited.
func NewClassifier(th Thresholds, cap int) *Classifier {
	return &Classifier{thresholds: th, cap: cap}
}

// Coverage is the fraction of documents whose title contains the term.
func Coverage(titleDocs, totalDocs int) float64 {
	if totalDocs <= 0 {
		return 0
	}
	return float64(titleDocs) / float64(totalDocs)
}

// Tier assigns a single term. Ratios are compared directly so 3 of 10 titles
// meets a 0.3 threshold exactly.
func (c *Classifier) Tier(titleDocs, totalDocs int) Tier {
	cov := Coverage(titleDocs, totalDocs)
	switch {
	case cov >= c.thresholds.MustHave:
		return MustHave
	case cov >= c.thresholds.ShouldHave:
		return ShouldHave
	default:
		return NiceToHave
	}
}

// Buckets holds the classified terms, each in score order.
type Buckets struct {
	MustHave   []rank.ScoredTerm
	ShouldHave []rank.ScoredTerm
	NiceToHave []rank.ScoredTerm
}

// Classify walks terms in the given order and appends each to its tier until
// that tier is full. Terms arriving at a full tier are dropped, not demoted.
func (c *Classifier) Classify(terms []rank.ScoredTerm, totalDocs int) Buckets {
	var b Buckets
	for _, term := range terms {
		var bucket *[]rank.ScoredTerm
		switch c.Tier(term.TitleDocs, totalDocs) {
		case MustHave:
			bucket = &b.MustHave
		case ShouldHave:
			bucket = &b.ShouldHave
		default:
			bucket = &b.NiceToHave
		}
		if c.cap > 0 && len(*bucket) >= c.cap {
			continue
		}
		*bucket = append(*bucket, term)
	}
	return b
}

// Texts returns the term texts of a bucket.
func Texts(terms []rank.ScoredTerm) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, t.Text)
	}
	return out
}
