package exam

import (
	"encoding/json"

	"github.com/vamsidulam/exameval/core"
)

// The backend names template fields inconsistently across endpoints
// (templateName vs template_name vs name). Mapping happens here, once,
// and everything downstream consumes the canonical shape only.

func TemplateFromMap(m map[string]interface{}) Template {
	tpl := Template{
		ID:             core.JSONString(m, "id", "_id", "template_id", "templateId"),
		Name:           core.JSONString(m, "templateName", "template_name", "name"),
		InstituteName:  core.JSONString(m, "instituteName", "institute_name"),
		Duration:       core.JSONInt(m, "duration", "durationMinutes", "duration_minutes"),
		ExamDate:       core.JSONString(m, "examDate", "exam_date"),
		TotalQuestions: core.JSONInt(m, "totalQuestions", "total_questions"),
		TotalMarks:     core.JSONInt(m, "totalMarks", "total_marks"),
	}
	if et := core.JSONObject(m, "examTime", "exam_time"); et != nil {
		tpl.ExamTime = ExamTime{
			Hour:   core.JSONInt(et, "hour"),
			Minute: core.JSONInt(et, "minute"),
			Period: core.JSONString(et, "period"),
		}
	}
	for _, sm := range core.JSONObjectSlice(m, "sections") {
		tpl.Sections = append(tpl.Sections, SectionFromMap(sm))
	}
	return tpl
}

func SectionFromMap(m map[string]interface{}) Section {
	return Section{
		Name:              core.JSONString(m, "sectionName", "section_name", "name"),
		Type:              core.JSONString(m, "sectionType", "section_type", "type"),
		TotalQuestions:    core.JSONInt(m, "totalQuestions", "total_questions"),
		QuestionsToAnswer: core.JSONInt(m, "questionsToAnswer", "questions_to_answer"),
		MarksPerQuestion:  core.JSONInt(m, "marksPerQuestion", "marks_per_question"),
		TotalMarks:        core.JSONInt(m, "totalMarks", "total_marks"),
	}
}

func (t *Template) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*t = TemplateFromMap(m)
	return nil
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = SectionFromMap(m)
	return nil
}
