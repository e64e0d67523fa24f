package question

import (
	"encoding/json"

	"github.com/vamsidulam/exameval/core"
)

func FromMap(m map[string]interface{}) Question {
	raw := core.JSONString(m, "question_type", "questionType", "type")
	return Question{
		Number:        core.JSONInt(m, "question_number", "questionNumber", "number"),
		Text:          core.JSONString(m, "question_text", "questionText", "text"),
		Marks:         core.JSONInt(m, "marks", "mark"),
		RawType:       raw,
		Kind:          KindOf(raw),
		Options:       core.JSONStringSlice(m, "options", "choices"),
		CorrectAnswer: core.JSONString(m, "correct_answer", "correctAnswer", "answer"),
		SectionName:   core.JSONString(m, "section_name", "sectionName", "section"),
		BTL:           core.JSONString(m, "btl", "bloom_level", "bloomLevel"),
	}
}

func (q *Question) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*q = FromMap(m)
	return nil
}
