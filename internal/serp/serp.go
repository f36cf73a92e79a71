// Package serp loads search-result batches from disk for the CLI.
package serp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/cognicore/serpterms/pkg/serpterms"
	"github.com/cognicore/serpterms/pkg/serpterms/internalerr"
)

// providerResponse is the subset of a SerpAPI Google response we read.
type providerResponse struct {
	SearchParameters struct {
		Query   string `json:"q"`
		Country string `json:"gl"`
		Lang    string `json:"hl"`
	} `json:"search_parameters"`
	OrganicResults []struct {
		Position int    `json:"position"`
		Title    string `json:"title"`
		Link     string `json:"link"`
		Snippet  string `json:"snippet"`
	} `json:"organic_results"`
	RelatedQuestions []struct {
		Question string `json:"question"`
	} `json:"related_questions"`
	RelatedSearches []struct {
		Query string `json:"query"`
	} `json:"related_searches"`
}

// Load reads a batch from path. Three layouts are accepted:
//   - *.jsonl: one document per line; malformed lines are skipped
//   - a JSON object with "organic_results" (SerpAPI response)
//   - a JSON serpterms.Request
//
// Titles and snippets are stripped of HTML markup.
func Load(path string, logger *zap.Logger) (serpterms.Request, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return serpterms.Request{}, fmt.Errorf("read file %s: %w", path, err)
	}

	var req serpterms.Request
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		req, err = decodeJSONL(data, path, logger)
	} else {
		req, err = decodeJSON(data)
	}
	if err != nil {
		return serpterms.Request{}, err
	}

	for i := range req.Results {
		req.Results[i].Title = StripHTML(req.Results[i].Title)
		req.Results[i].Snippet = StripHTML(req.Results[i].Snippet)
	}
	return req, nil
}

func decodeJSONL(data []byte, path string, logger *zap.Logger) (serpterms.Request, error) {
	var req serpterms.Request
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var doc serpterms.Document
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			logger.Warn("skipping malformed line",
				zap.String("path", path),
				zap.Int("line", i+1),
				zap.Error(err),
			)
			continue
		}
		if doc.Position == 0 {
			doc.Position = len(req.Results) + 1
		}
		req.Results = append(req.Results, doc)
	}

	if len(req.Results) == 0 {
		return req, fmt.Errorf("%w: no valid documents found in %s", internalerr.ErrInvalidInput, path)
	}
	return req, nil
}

func decodeJSON(data []byte) (serpterms.Request, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return serpterms.Request{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidInput, err)
	}

	if _, ok := probe["organic_results"]; ok {
		var resp providerResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return serpterms.Request{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidInput, err)
		}
		return fromProvider(resp), nil
	}

	var req serpterms.Request
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&req); err != nil {
		return serpterms.Request{}, fmt.Errorf("%w: %v", internalerr.ErrInvalidInput, err)
	}
	return req, nil
}

func fromProvider(resp providerResponse) serpterms.Request {
	req := serpterms.Request{
		Keyword:  resp.SearchParameters.Query,
		Country:  resp.SearchParameters.Country,
		Language: resp.SearchParameters.Lang,
	}
	for _, item := range resp.OrganicResults {
		req.Results = append(req.Results, serpterms.Document{
			Position: item.Position,
			Title:    item.Title,
			Snippet:  item.Snippet,
			URL:      item.Link,
		})
	}
	for _, q := range resp.RelatedQuestions {
		req.PeopleAlsoAsk = append(req.PeopleAlsoAsk, q.Question)
	}
	for _, s := range resp.RelatedSearches {
		req.RelatedSearches = append(req.RelatedSearches, s.Query)
	}
	return req
}

// StripHTML removes markup and decodes entities, collapsing whitespace.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.Join(strings.Fields(buf.String()), " ")
}
