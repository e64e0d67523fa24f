package paper

import (
	"encoding/json"
	"time"

	"github.com/vamsidulam/exameval/core"
	"github.com/vamsidulam/exameval/core/exam"
	"github.com/vamsidulam/exameval/core/question"
)

type (
	// QuestionPaper is an instance of generated questions tied to a template
	// and a syllabus input. The question list is empty until a generation
	// call succeeds.
	QuestionPaper struct {
		ID                     string              `json:"id"`
		TemplateID             string              `json:"template_id"`
		Name                   string              `json:"name"`
		Syllabus               string              `json:"syllabus"`
		AdditionalInstructions string              `json:"additional_instructions,omitempty"`
		Questions              []question.Question `json:"questions,omitempty"`
		CreatedAt              time.Time           `json:"created_at,omitempty"`
		UpdatedAt              time.Time           `json:"updated_at,omitempty"`
	}

	// SectionGroup is one section's slice of the paper, in render order.
	// Section is nil for names the template does not declare.
	SectionGroup struct {
		Name      string
		Section   *exam.Section
		Questions []question.Question
	}
)

// HasQuestions is a derived display flag, never stored.
func (p QuestionPaper) HasQuestions() bool {
	return len(p.Questions) > 0
}

// WithQuestions returns a copy carrying an edited question list; the caller
// is responsible for persisting it via the API.
func (p QuestionPaper) WithQuestions(qs []question.Question) QuestionPaper {
	p.Questions = append([]question.Question(nil), qs...)
	return p
}

// GroupBySection partitions questions by section name, iterating in the
// template's declared section order; names the template does not declare are
// appended afterward in first-seen order.
func GroupBySection(tpl exam.Template, qs []question.Question) []SectionGroup {
	byName := make(map[string][]question.Question)
	var seen []string
	for _, q := range qs {
		if _, ok := byName[q.SectionName]; !ok {
			seen = append(seen, q.SectionName)
		}
		byName[q.SectionName] = append(byName[q.SectionName], q)
	}

	declared := make(map[string]bool, len(tpl.Sections))
	groups := make([]SectionGroup, 0, len(seen))
	for i := range tpl.Sections {
		s := tpl.Sections[i]
		declared[s.Name] = true
		if questions, ok := byName[s.Name]; ok {
			groups = append(groups, SectionGroup{Name: s.Name, Section: &s, Questions: questions})
		}
	}
	for _, name := range seen {
		if !declared[name] {
			groups = append(groups, SectionGroup{Name: name, Questions: byName[name]})
		}
	}
	return groups
}

func FromMap(m map[string]interface{}) QuestionPaper {
	p := QuestionPaper{
		ID:                     core.JSONString(m, "id", "_id", "paper_id", "paperId"),
		TemplateID:             core.JSONString(m, "template_id", "templateId"),
		Name:                   core.JSONString(m, "name", "paper_name", "paperName"),
		Syllabus:               core.JSONString(m, "syllabus", "syllabus_text", "syllabusText"),
		AdditionalInstructions: core.JSONString(m, "additional_instructions", "additionalInstructions"),
		CreatedAt:              core.JSONTime(m, "created_at", "createdAt"),
		UpdatedAt:              core.JSONTime(m, "updated_at", "updatedAt"),
	}
	for _, qm := range core.JSONObjectSlice(m, "questions") {
		p.Questions = append(p.Questions, question.FromMap(qm))
	}
	return p
}

func (p *QuestionPaper) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*p = FromMap(m)
	return nil
}
