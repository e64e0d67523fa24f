package exam

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate_UnmarshalJSON(t *testing.T) {
	t.Run("camelCase payload", func(t *testing.T) {
		data := []byte(`{
			"id": "tpl-1",
			"templateName": "Midterm",
			"instituteName": "Sunrise Institute",
			"duration": 90,
			"examTime": {"hour": 9, "minute": 30, "period": "AM"},
			"sections": [
				{"sectionName": "Section A", "sectionType": "AnswerAll", "totalQuestions": 5, "marksPerQuestion": 2}
			]
		}`)
		var tpl Template
		assert.NoError(t, json.Unmarshal(data, &tpl))
		assert.Equal(t, "Midterm", tpl.Name)
		assert.Equal(t, 90, tpl.Duration)
		assert.Equal(t, "09:30 AM", tpl.ExamTime.String())
		if assert.Len(t, tpl.Sections, 1) {
			assert.Equal(t, SectionAnswerAll, tpl.Sections[0].Type)
			assert.Equal(t, 10, tpl.Sections[0].ComputedMarks())
		}
	})

	t.Run("snake_case payload maps to the same shape", func(t *testing.T) {
		data := []byte(`{
			"template_id": "tpl-1",
			"template_name": "Midterm",
			"institute_name": "Sunrise Institute",
			"duration": "90",
			"sections": [
				{"section_name": "Section B", "section_type": "ChooseAny", "total_questions": 5, "questions_to_answer": 3, "marks_per_question": 4}
			]
		}`)
		var tpl Template
		assert.NoError(t, json.Unmarshal(data, &tpl))
		assert.Equal(t, "tpl-1", tpl.ID)
		assert.Equal(t, "Midterm", tpl.Name)
		assert.Equal(t, 90, tpl.Duration) // numeric string tolerated
		if assert.Len(t, tpl.Sections, 1) {
			assert.Equal(t, 12, tpl.Sections[0].ComputedMarks())
		}
	})

	t.Run("absent fields default, never fail", func(t *testing.T) {
		var tpl Template
		assert.NoError(t, json.Unmarshal([]byte(`{}`), &tpl))
		assert.Zero(t, tpl.Duration)
		assert.Empty(t, tpl.Sections)
	})
}
