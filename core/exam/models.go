package exam

import "fmt"

// Section types govern how many of a section's questions count toward the total.
const (
	SectionAnswerAll = "AnswerAll"
	SectionChooseAny = "ChooseAny"
	SectionOptional  = "Optional"
)

type (
	// ExamTime is the wall-clock start time printed on the paper header.
	ExamTime struct {
		Hour   int    `json:"hour"`
		Minute int    `json:"minute"`
		Period string `json:"period"` // AM | PM
	}

	Section struct {
		Name              string `json:"sectionName"`
		Type              string `json:"sectionType"`
		TotalQuestions    int    `json:"totalQuestions"`
		QuestionsToAnswer int    `json:"questionsToAnswer"`
		MarksPerQuestion  int    `json:"marksPerQuestion"`
		// TotalMarks is an optional backend-precomputed total; it wins over
		// the derived value when present.
		TotalMarks int `json:"totalMarks,omitempty"`
	}

	// Template is a reusable exam blueprint specifying sections, question
	// counts, and marks distribution.
	Template struct {
		ID             string    `json:"id"`
		Name           string    `json:"templateName"`
		InstituteName  string    `json:"instituteName"`
		Duration       int       `json:"duration"` // minutes
		ExamDate       string    `json:"examDate"`
		ExamTime       ExamTime  `json:"examTime"`
		TotalQuestions int       `json:"totalQuestions"`
		TotalMarks     int       `json:"totalMarks"`
		Sections       []Section `json:"sections"`
	}
)

// Instruction derives the section's printed instruction text from its type.
func (s Section) Instruction() string {
	switch s.Type {
	case SectionAnswerAll:
		return fmt.Sprintf("Answer all %d questions.", s.TotalQuestions)
	case SectionChooseAny:
		return fmt.Sprintf("Answer any %d questions out of %d.", s.QuestionsToAnswer, s.TotalQuestions)
	case SectionOptional:
		toAnswer := s.QuestionsToAnswer
		if toAnswer == 0 {
			toAnswer = s.TotalQuestions
		}
		return fmt.Sprintf("Answer any %d questions out of %d.", toAnswer, s.TotalQuestions)
	default:
		n := s.TotalQuestions
		if n > 5 {
			n = 5
		}
		return fmt.Sprintf("Answer any %d Questions.", n)
	}
}

// ComputedMarks is the section's contribution to the paper total:
// every question counts for AnswerAll, only the answered subset otherwise.
func (s Section) ComputedMarks() int {
	if s.TotalMarks > 0 {
		return s.TotalMarks
	}
	if s.Type == SectionAnswerAll {
		return s.TotalQuestions * s.MarksPerQuestion
	}
	return s.QuestionsToAnswer * s.MarksPerQuestion
}

// GrandTotal sums the computed marks of all sections.
func (t Template) GrandTotal() int {
	var total int
	for _, s := range t.Sections {
		total += s.ComputedMarks()
	}
	return total
}

// SectionByName returns the declared section with the given name, if any.
func (t Template) SectionByName(name string) (Section, bool) {
	for _, s := range t.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// String renders the header time, e.g. "09:30 AM". Empty when unset.
func (et ExamTime) String() string {
	if et.Hour == 0 && et.Minute == 0 && et.Period == "" {
		return ""
	}
	return fmt.Sprintf("%02d:%02d %s", et.Hour, et.Minute, et.Period)
}
