package export

import (
	"fmt"
	"strings"

	"github.com/vamsidulam/exameval/core/paper"
)

// renderText renders the same paginated document as plain text. It cannot
// fail, which is what makes it a safe fallback for the PDF path.
func renderText(doc paper.Document) []byte {
	var b strings.Builder
	for i, page := range doc.Pages {
		if i > 0 {
			fmt.Fprintf(&b, "\n----- Page %d -----\n\n", i+1)
		}
		for _, line := range page.Lines {
			writeTextLine(&b, line)
		}
	}
	return []byte(b.String())
}

func writeTextLine(b *strings.Builder, line paper.Line) {
	switch line.Kind {
	case paper.LineTitle, paper.LineSubtitle:
		b.WriteString(line.Text + "\n")
		b.WriteString(strings.Repeat("=", len(line.Text)) + "\n")
	case paper.LineMeta, paper.LineInstruction, paper.LineEmptyState:
		b.WriteString(line.Text + "\n")
	case paper.LineSectionHeader:
		b.WriteString("\n" + line.Text + "\n")
		b.WriteString(strings.Repeat("-", len(line.Text)) + "\n")
	case paper.LineQuestion:
		if line.Marks > 0 {
			fmt.Fprintf(b, "%-84s [%dM]\n", line.Text, line.Marks)
		} else {
			b.WriteString(line.Text + "\n")
		}
	case paper.LineContinuation:
		b.WriteString("    " + line.Text + "\n")
	case paper.LineOption:
		marker := "  "
		if line.Correct {
			marker = "* " // grading copy: correct option marked
		}
		b.WriteString("      " + marker + line.Text + "\n")
	case paper.LineSpacer:
		b.WriteString("\n")
	}
}
