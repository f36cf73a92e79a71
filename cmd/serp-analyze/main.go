package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cognicore/serpterms/internal/serp"
	"github.com/cognicore/serpterms/pkg/serpterms"
	"github.com/cognicore/serpterms/pkg/serpterms/config"
	"github.com/cognicore/serpterms/pkg/serpterms/store"
	"github.com/cognicore/serpterms/pkg/serpterms/store/memstore"
	"github.com/cognicore/serpterms/pkg/serpterms/store/sqlite"
)

type options struct {
	input    string
	keyword  string
	policy   string
	stoplist string
	db       string
	history  string
	limit    int
	prompt   bool
}

type historyEntry struct {
	ID        string    `json:"id"`
	Keyword   string    `json:"keyword"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Terms     []string  `json:"terms"`
}

func main() {
	var (
		opts  options
		debug bool
	)
	flag.StringVar(&opts.input, "input", "", "Path to a JSON batch or JSONL documents (required unless --history)")
	flag.StringVar(&opts.keyword, "keyword", "", "Focus keyword (overrides the batch file)")
	flag.StringVar(&opts.policy, "policy", "", "Optional: policy YAML file")
	flag.StringVar(&opts.stoplist, "stoplist", "", "Optional: stoplist YAML file (default: built-in German list)")
	flag.StringVar(&opts.db, "db", "", "Optional: SQLite archive path (default: in-memory archive for this run)")
	flag.StringVar(&opts.history, "history", "", "List archived reports for a keyword (requires --db)")
	flag.IntVar(&opts.limit, "limit", 10, "Maximum reports listed by --history")
	flag.BoolVar(&opts.prompt, "prompt", false, "Print only the prompt context")
	flag.BoolVar(&debug, "debug", false, "Development logging")
	flag.Parse()

	logger, err := newLogger(debug)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(context.Background(), opts, logger, os.Stdout); err != nil {
		logger.Fatal("serp-analyze failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context, opts options, logger *zap.Logger, out io.Writer) error {
	if opts.history != "" {
		if opts.db == "" {
			return fmt.Errorf("--history requires --db")
		}
		return listHistory(ctx, opts, out)
	}
	if opts.input == "" {
		return fmt.Errorf("--input required")
	}

	loader := config.Loader{
		PolicyPath:   opts.policy,
		StoplistPath: opts.stoplist,
	}
	components, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load configs: %w", err)
	}

	engine, err := serpterms.New(serpterms.Options{
		Policy:   components.Policy,
		Stoplist: components.Stoplist,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	req, err := serp.Load(opts.input, logger)
	if err != nil {
		return fmt.Errorf("load batch: %w", err)
	}
	if opts.keyword != "" {
		req.Keyword = opts.keyword
	}
	if strings.TrimSpace(req.Keyword) == "" {
		logger.Warn("no focus keyword given, nothing will be excluded")
	}

	res := engine.Analyze(req)

	payload, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	id, err := archive(ctx, opts.db, req, res, payload)
	if err != nil {
		return err
	}
	logger.Info("analysis archived",
		zap.String("id", id),
		zap.String("keyword", req.Keyword),
		zap.Bool("persistent", opts.db != ""),
	)

	if opts.prompt {
		_, err = fmt.Fprint(out, res.PromptContext)
		return err
	}
	_, err = fmt.Fprintln(out, string(payload))
	return err
}

// openArchive opens the SQLite archive at path, or an in-memory archive
// that lives for this run when path is empty.
func openArchive(ctx context.Context, path string) (store.Store, error) {
	if path == "" {
		return memstore.New(), nil
	}
	return sqlite.OpenSQLite(ctx, path)
}

// archive saves the result and returns the report ID.
func archive(ctx context.Context, path string, req serpterms.Request, res serpterms.Result, payload []byte) (string, error) {
	st, err := openArchive(ctx, path)
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	defer st.Close()

	report := store.NewReport(req.Keyword, req.Country, time.Now(), res.SerpTerms.All, payload)
	if err := st.SaveReport(ctx, report); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return report.ID, nil
}

func listHistory(ctx context.Context, opts options, out io.Writer) error {
	st, err := openArchive(ctx, opts.db)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer st.Close()

	reports, err := st.ListReports(ctx, opts.history, opts.limit)
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}

	entries := make([]historyEntry, 0, len(reports))
	for _, r := range reports {
		entries = append(entries, historyEntry{
			ID:        r.ID,
			Keyword:   r.Keyword,
			Country:   r.Country,
			CreatedAt: r.CreatedAt,
			Terms:     r.Terms,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
