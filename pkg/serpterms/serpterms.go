// Package serpterms extracts, ranks and tiers the vocabulary used by the
// top search results for a keyword.
//
// The engine is a pure function of one request: it performs no I/O, keeps no
// state between calls and never fails. Degenerate input (no documents, empty
// titles or snippets, an empty keyword) yields empty output.
package serpterms

import (
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/cognicore/serpterms/pkg/serpterms/analytics"
	"github.com/cognicore/serpterms/pkg/serpterms/config"
	"github.com/cognicore/serpterms/pkg/serpterms/ingest"
	"github.com/cognicore/serpterms/pkg/serpterms/prompt"
	"github.com/cognicore/serpterms/pkg/serpterms/questions"
	"github.com/cognicore/serpterms/pkg/serpterms/rank"
	"github.com/cognicore/serpterms/pkg/serpterms/stoplist"
	"github.com/cognicore/serpterms/pkg/serpterms/tiers"
)

// Document is one competitor's search entry. It is never modified.
type Document struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	URL      string `json:"url"`
}

// Request is a keyword plus the result batch fetched for it.
type Request struct {
	Keyword string `json:"keyword"`
	// Country and Language describe how the batch was sourced. The
	// analysis does not use them.
	Country         string     `json:"country,omitempty"`
	Language        string     `json:"language,omitempty"`
	Results         []Document `json:"results"`
	PeopleAlsoAsk   []string   `json:"peopleAlsoAsk,omitempty"`
	RelatedSearches []string   `json:"relatedSearches,omitempty"`
}

// Result is the analysis output.
type Result struct {
	SerpTerms          SerpTerms    `json:"serpTerms"`
	Questions          Questions    `json:"questions"`
	CompetitorHeadings []string     `json:"competitorHeadings"`
	Competitors        []Competitor `json:"competitors"`
	Stats              Stats        `json:"stats"`
	PromptContext      string       `json:"promptContext"`
}

// SerpTerms holds the ranked terms and their tiers.
type SerpTerms struct {
	MustHave   []string `json:"mustHave"`
	ShouldHave []string `json:"shouldHave"`
	NiceToHave []string `json:"niceToHave"`
	All        []string `json:"all"`
}

// Questions holds the filtered questions and the related searches.
type Questions struct {
	PeopleAlsoAsk   []string `json:"peopleAlsoAsk"`
	RelatedSearches []string `json:"relatedSearches"`
}

// Competitor summarizes one document of the batch.
type Competitor struct {
	Position      int    `json:"position"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Domain        string `json:"domain"`
	TitleLength   int    `json:"titleLength"`
	SnippetLength int    `json:"snippetLength"`
}

// Stats describes the analyzed batch.
type Stats struct {
	TotalResultsAnalyzed int          `json:"totalResultsAnalyzed"`
	AverageSnippetLength int          `json:"averageSnippetLength"`
	TermDetails          []TermDetail `json:"termDetails"`
}

// TermDetail exposes the counts behind a ranked term.
type TermDetail struct {
	Term       string  `json:"term"`
	Score      float64 `json:"score"`
	InTitles   int     `json:"inTitles"`
	InSnippets int     `json:"inSnippets"`
	Frequency  int     `json:"frequency"`
}

// Options configures an Engine
type Options struct {
	// Policy defaults to config.DefaultPolicy when left zero.
	Policy config.Policy
	// Stoplist defaults to the built-in German list.
	Stoplist *stoplist.Manager
	Logger   *zap.Logger
}

// Engine runs analyses. It holds only read-only configuration and is safe
// for concurrent use.
type Engine struct {
	policy     config.Policy
	extractor  *ingest.Extractor
	scorer     *rank.Scorer
	classifier *tiers.Classifier
	logger     *zap.Logger
}

// New creates an Engine. It fails only when the policy is invalid.
func New(opts Options) (*Engine, error) {
	policy := opts.Policy
	if policy == (config.Policy{}) {
		policy = config.DefaultPolicy()
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	stops := opts.Stoplist
	if stops == nil {
		stops = stoplist.NewGerman()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		policy:    policy,
		extractor: ingest.NewExtractor(ingest.NewTokenizerWith(policy.Letters, policy.MinTokenLength), stops),
		scorer: rank.NewScorer(rank.Weights{
			Frequency: policy.Weights.Frequency,
			Title:     policy.Weights.Title,
			Snippet:   policy.Weights.Snippet,
		}, policy.MaxTerms),
		classifier: tiers.NewClassifier(tiers.Thresholds{
			MustHave:   policy.MustHaveRatio,
			ShouldHave: policy.ShouldHaveRatio,
		}, policy.TierCap),
		logger: logger,
	}, nil
}

// Policy returns the policy the engine was built with.
func (e *Engine) Policy() config.Policy {
	return e.policy
}

// Analyze runs the full pipeline over one result batch:
// extraction → aggregation → scoring/exclusion → tiering → formatting
func (e *Engine) Analyze(req Request) Result {
	agg := analytics.NewAggregator(e.extractor)
	for _, doc := range req.Results {
		agg.Process(doc.Title, doc.Snippet)
	}
	stats := agg.Snapshot()

	ranked := e.scorer.Rank(stats.Terms, req.Keyword)
	buckets := e.classifier.Classify(ranked, stats.TotalDocs)

	qs := questions.Extract(req.PeopleAlsoAsk, req.RelatedSearches, e.policy.QuestionCap)
	headings := e.headings(req.Results)

	res := Result{
		SerpTerms: SerpTerms{
			MustHave:   tiers.Texts(buckets.MustHave),
			ShouldHave: tiers.Texts(buckets.ShouldHave),
			NiceToHave: tiers.Texts(buckets.NiceToHave),
			All:        tiers.Texts(ranked),
		},
		Questions: Questions{
			PeopleAlsoAsk:   nonNil(qs.PeopleAlsoAsk),
			RelatedSearches: nonNil(qs.RelatedSearches),
		},
		CompetitorHeadings: headings,
		Competitors:        competitors(req.Results),
		Stats: Stats{
			TotalResultsAnalyzed: len(req.Results),
			AverageSnippetLength: averageSnippetLength(req.Results),
			TermDetails:          e.termDetails(ranked),
		},
	}
	res.PromptContext = prompt.Format(prompt.Input{
		MustHave:        res.SerpTerms.MustHave,
		ShouldHave:      res.SerpTerms.ShouldHave,
		NiceToHave:      res.SerpTerms.NiceToHave,
		Headings:        headings,
		Questions:       res.Questions.PeopleAlsoAsk,
		MustHaveRatio:   e.policy.MustHaveRatio,
		ShouldHaveRatio: e.policy.ShouldHaveRatio,
	}, e.policy.PromptListCap)

	e.logger.Debug("serp analysis complete",
		zap.String("keyword", req.Keyword),
		zap.Int("documents", stats.TotalDocs),
		zap.Int("candidate_terms", len(stats.Terms)),
		zap.Int("ranked_terms", len(ranked)),
		zap.Int("must_have", len(res.SerpTerms.MustHave)),
		zap.Int("should_have", len(res.SerpTerms.ShouldHave)),
		zap.Int("nice_to_have", len(res.SerpTerms.NiceToHave)),
		zap.Int("questions", len(res.Questions.PeopleAlsoAsk)),
	)

	return res
}

// headings returns the titles of the first documents, up to the heading
// cap, exactly as given. Blank titles keep their slot.
func (e *Engine) headings(docs []Document) []string {
	n := min(len(docs), e.policy.HeadingCap)
	out := make([]string, 0, n)
	for _, d := range docs[:n] {
		out = append(out, d.Title)
	}
	return out
}

func (e *Engine) termDetails(ranked []rank.ScoredTerm) []TermDetail {
	n := len(ranked)
	if n > e.policy.TermDetailCap {
		n = e.policy.TermDetailCap
	}
	out := make([]TermDetail, 0, n)
	for _, t := range ranked[:n] {
		out = append(out, TermDetail{
			Term:       t.Text,
			Score:      t.Score,
			InTitles:   t.TitleDocs,
			InSnippets: t.SnippetDocs,
			Frequency:  t.RawFrequency,
		})
	}
	return out
}

func competitors(docs []Document) []Competitor {
	out := make([]Competitor, 0, len(docs))
	for _, d := range docs {
		out = append(out, Competitor{
			Position:      d.Position,
			Title:         d.Title,
			URL:           d.URL,
			Domain:        Domain(d.URL),
			TitleLength:   utf8.RuneCountInString(d.Title),
			SnippetLength: utf8.RuneCountInString(d.Snippet),
		})
	}
	return out
}

// averageSnippetLength is the mean snippet length in characters, rounded.
func averageSnippetLength(docs []Document) int {
	if len(docs) == 0 {
		return 0
	}
	total := 0
	for _, d := range docs {
		total += utf8.RuneCountInString(d.Snippet)
	}
	return int(math.Round(float64(total) / float64(len(docs))))
}

// Domain returns the lowercase host of rawURL without a leading "www.".
// Unparseable URLs yield "".
func Domain(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
