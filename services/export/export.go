// Package export produces the console's downloadable artifacts: the question
// paper document (PDF, with a guaranteed plain-text fallback) and the CSV
// evaluation summary.
package export

import (
	"fmt"

	"github.com/vamsidulam/exameval/core"
	"github.com/vamsidulam/exameval/core/paper"
)

// pdfFunc is swappable in tests to force the fallback path.
var pdfFunc = renderPDF

// Paper exports a laid-out document. A PDF failure downgrades to plain text
// so the caller always receives a non-empty artifact; the error is logged,
// never returned.
func Paper(doc paper.Document, logger core.Logger) (data []byte, filename string) {
	name := sanitizeFilename(doc.Title)
	pdfData, err := pdfFunc(doc)
	if err != nil {
		logger.Error(fmt.Sprintf("pdf export failed, falling back to text: %v", err), err)
		return renderText(doc), name + ".txt"
	}
	return pdfData, name + ".pdf"
}

func sanitizeFilename(title string) string {
	if title == "" {
		return "question-paper"
	}
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r == ' ':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "question-paper"
	}
	return string(out)
}
