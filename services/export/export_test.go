package export

import (
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsidulam/exameval/core"
	"github.com/vamsidulam/exameval/core/evaluation"
	"github.com/vamsidulam/exameval/core/paper"
)

func discardLogger() core.Logger {
	return core.NewStdLogger(log.New(io.Discard, "", 0))
}

// assertTextEqual fails with a unified diff so a rendering change is readable.
func assertTextEqual(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Errorf("rendered text mismatch:\n%s", diff)
}

func sampleDoc() paper.Document {
	return paper.Document{
		Title:      "Midterm",
		TotalMarks: 10,
		Pages: []paper.Page{
			{Lines: []paper.Line{
				{Kind: paper.LineSubtitle, Text: "Midterm"},
				{Kind: paper.LineMeta, Text: "Total Marks: 10"},
				{Kind: paper.LineSectionHeader, Text: "Section A"},
				{Kind: paper.LineInstruction, Text: "Answer all 2 questions."},
				{Kind: paper.LineQuestion, Text: "1. What is the capital of France?", Marks: 2},
				{Kind: paper.LineOption, Text: "A) Paris", Correct: true},
				{Kind: paper.LineOption, Text: "B) London"},
			}},
			{Lines: []paper.Line{
				{Kind: paper.LineQuestion, Text: "2. Explain entropy.", Marks: 8},
			}},
		},
	}
}

func TestPaper(t *testing.T) {
	t.Run("happy path yields a pdf", func(t *testing.T) {
		data, filename := Paper(sampleDoc(), discardLogger())
		assert.Equal(t, "Midterm.pdf", filename)
		require.NotEmpty(t, data)
		assert.True(t, strings.HasPrefix(string(data), "%PDF"), "pdf magic bytes")
	})

	t.Run("pdf failure falls back to text, never errors", func(t *testing.T) {
		orig := pdfFunc
		pdfFunc = func(paper.Document) ([]byte, error) { return nil, errors.New("font missing") }
		defer func() { pdfFunc = orig }()

		data, filename := Paper(sampleDoc(), discardLogger())
		assert.Equal(t, "Midterm.txt", filename)
		text := string(data)
		assert.Contains(t, text, "Midterm")
		assert.Contains(t, text, "Total Marks: 10")
		assert.Contains(t, text, "* A) Paris")
	})
}

func TestRenderText(t *testing.T) {
	want := strings.Join([]string{
		"Midterm",
		"=======",
		"Total Marks: 10",
		"",
		"Section A",
		"---------",
		"Answer all 2 questions.",
		fmt.Sprintf("%-84s [2M]", "1. What is the capital of France?"),
		"      * A) Paris",
		"        B) London",
		"",
		"----- Page 2 -----",
		"",
		fmt.Sprintf("%-84s [8M]", "2. Explain entropy."),
		"",
	}, "\n")

	assertTextEqual(t, want, string(renderText(sampleDoc())))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Midterm Exam 2026", "Midterm_Exam_2026"},
		{"CS101: Final / Draft?", "CS101_Final__Draft"},
		{"", "question-paper"},
		{"///", "question-paper"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), tt.in)
	}
}

func TestEvaluationSummary(t *testing.T) {
	results := []evaluation.EvaluationResult{
		{StudentID: "S001", Score: 78.5, MaxScore: 100, Grade: "B+", Status: "evaluated", Feedback: "good work"},
		{StudentID: "S002", Score: 42, MaxScore: 100, Grade: "D", Status: "evaluated"},
	}

	data, err := EvaluationSummary(results)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "student_id,score,max_score,grade,status,feedback", lines[0])
	assert.Equal(t, "S001,78.5,100,B+,evaluated,good work", lines[1])
	assert.Equal(t, "S002,42,100,D,evaluated,", lines[2])
}
