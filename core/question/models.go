package question

import (
	"regexp"
	"strings"
)

// Kind is the closed set of question variants. The backend sends free-form
// question_type strings; they are matched once, at ingestion, and never again.
type Kind string

const (
	MultipleChoice Kind = "multiple_choice"
	TrueFalse      Kind = "true_false"
	ShortAnswer    Kind = "short_answer"
	Essay          Kind = "essay"
	FillBlank      Kind = "fill_blank"
)

// KindOf classifies a raw question_type string. Unknown types degrade to
// ShortAnswer rather than failing.
func KindOf(raw string) Kind {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(t, "mcq"), strings.Contains(t, "multiple"), strings.Contains(t, "choice"):
		return MultipleChoice
	case strings.Contains(t, "true"), strings.Contains(t, "t/f"):
		return TrueFalse
	case strings.Contains(t, "fill"), strings.Contains(t, "blank"):
		return FillBlank
	case strings.Contains(t, "essay"), strings.Contains(t, "long"):
		return Essay
	default:
		return ShortAnswer
	}
}

type Question struct {
	Number        int      `json:"question_number"`
	Text          string   `json:"question_text"`
	Marks         int      `json:"marks"`
	RawType       string   `json:"question_type,omitempty"`
	Kind          Kind     `json:"-"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	SectionName   string   `json:"section_name,omitempty"`
	BTL           string   `json:"btl,omitempty"` // Bloom's Taxonomy Level tag
}

// HasOptions reports whether the option list should be rendered: only
// multiple-choice questions with a non-empty ordered list qualify.
func (q Question) HasOptions() bool {
	return q.Kind == MultipleChoice && len(q.Options) > 0
}

// DisplayNumber falls back to the positional index when the backend omitted
// a question number.
func (q Question) DisplayNumber(idx int) int {
	if q.Number > 0 {
		return q.Number
	}
	return idx + 1
}

var marksAnnotation = regexp.MustCompile(`\s*\[\s*\d+\s*[Mm]\s*\]\s*$`)

// CleanText strips a trailing "[nM]" marks annotation; marks are rendered
// right-aligned separately on the exported document.
func CleanText(s string) string {
	return strings.TrimSpace(marksAnnotation.ReplaceAllString(s, ""))
}

var optionLetter = regexp.MustCompile(`^([A-Da-d])\s*[).:]`)

// CorrectOptionIndex locates the option matching the correct answer: first by
// leading "A)".."D)" letter, then by literal substring, case-insensitively.
// Returns -1 when nothing matches; at most one option is ever flagged.
func CorrectOptionIndex(options []string, correct string) int {
	correct = strings.TrimSpace(correct)
	if correct == "" || len(options) == 0 {
		return -1
	}

	// a bare letter answer ("A", "b") or a lettered answer ("B) London")
	letter := ""
	if len(correct) == 1 {
		letter = strings.ToUpper(correct)
	} else if m := optionLetter.FindStringSubmatch(correct); m != nil {
		letter = strings.ToUpper(m[1])
	}
	if letter >= "A" && letter <= "D" {
		for i, opt := range options {
			if m := optionLetter.FindStringSubmatch(strings.TrimSpace(opt)); m != nil {
				if strings.ToUpper(m[1]) == letter {
					return i
				}
			}
		}
		if idx := int(letter[0] - 'A'); idx < len(options) {
			return idx
		}
	}

	lc := strings.ToLower(correct)
	for i, opt := range options {
		if strings.Contains(strings.ToLower(opt), lc) {
			return i
		}
	}
	return -1
}
