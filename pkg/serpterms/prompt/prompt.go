package prompt

import (
	"bytes"
	"fmt"
)

// Placeholder is printed for an empty section.
const Placeholder = "Keine gefunden"

// DefaultListCap limits headings and questions in the context block.
const DefaultListCap = 5

// Input carries everything rendered into the context block.
type Input struct {
	MustHave   []string
	ShouldHave []string
	NiceToHave []string
	Headings   []string
	Questions  []string

	// Cut points as fractions, used only in section labels.
	MustHaveRatio   float64
	ShouldHaveRatio float64
}

// Format renders the tiers, headings and questions as a plain-text block for
// a content generator. Headings and questions are cut to listCap entries.
func Format(in Input, listCap int) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "SERP-ANALYSE DER TOP-ERGEBNISSE\n\n")

	fmt.Fprintf(&buf, "PFLICHT-BEGRIFFE (in mindestens %s der Titel):\n", percent(in.MustHaveRatio))
	writeList(&buf, in.MustHave)

	fmt.Fprintf(&buf, "\nEMPFOHLENE BEGRIFFE (in %s bis %s der Titel):\n", percent(in.ShouldHaveRatio), percent(in.MustHaveRatio))
	writeList(&buf, in.ShouldHave)

	fmt.Fprintf(&buf, "\nOPTIONALE BEGRIFFE:\n")
	writeList(&buf, in.NiceToHave)

	fmt.Fprintf(&buf, "\nWETTBEWERBER-ÜBERSCHRIFTEN (zur Inspiration):\n")
	writeList(&buf, head(in.Headings, listCap))

	fmt.Fprintf(&buf, "\nHÄUFIGE FRAGEN:\n")
	writeList(&buf, head(in.Questions, listCap))

	return buf.String()
}

func writeList(buf *bytes.Buffer, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(buf, "- %s\n", Placeholder)
		return
	}
	for _, item := range items {
		fmt.Fprintf(buf, "- %s\n", item)
	}
}

func percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

func head(items []string, n int) []string {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
