package exam

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vamsidulam/exameval/core"
)

func TestSection_Instruction(t *testing.T) {
	tests := []struct {
		name    string
		section Section
		want    string
	}{
		{
			"answer all",
			Section{Type: SectionAnswerAll, TotalQuestions: 5},
			"Answer all 5 questions.",
		},
		{
			"choose any",
			Section{Type: SectionChooseAny, TotalQuestions: 5, QuestionsToAnswer: 3},
			"Answer any 3 questions out of 5.",
		},
		{
			"optional with count",
			Section{Type: SectionOptional, TotalQuestions: 4, QuestionsToAnswer: 2},
			"Answer any 2 questions out of 4.",
		},
		{
			"optional without count falls back to total",
			Section{Type: SectionOptional, TotalQuestions: 4},
			"Answer any 4 questions out of 4.",
		},
		{
			"unspecified type caps at 5",
			Section{TotalQuestions: 8},
			"Answer any 5 Questions.",
		},
		{
			"unspecified type below cap",
			Section{Type: "Weird", TotalQuestions: 3},
			"Answer any 3 Questions.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.section.Instruction())
		})
	}
}

func TestSection_ComputedMarks(t *testing.T) {
	tests := []struct {
		name    string
		section Section
		want    int
	}{
		{"answer all counts every question", Section{Type: SectionAnswerAll, TotalQuestions: 5, MarksPerQuestion: 2}, 10},
		{"choose any counts answered subset", Section{Type: SectionChooseAny, TotalQuestions: 5, QuestionsToAnswer: 3, MarksPerQuestion: 4}, 12},
		{"optional counts answered subset", Section{Type: SectionOptional, TotalQuestions: 6, QuestionsToAnswer: 2, MarksPerQuestion: 5}, 10},
		{"precomputed total wins", Section{Type: SectionAnswerAll, TotalQuestions: 5, MarksPerQuestion: 2, TotalMarks: 25}, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.section.ComputedMarks())
		})
	}
}

func TestTemplate_GrandTotal(t *testing.T) {
	tpl := Template{
		Sections: []Section{
			{Name: "Section A", Type: SectionAnswerAll, TotalQuestions: 5, MarksPerQuestion: 2},
			{Name: "Section B", Type: SectionChooseAny, TotalQuestions: 5, QuestionsToAnswer: 3, MarksPerQuestion: 4},
		},
	}
	assert.Equal(t, 22, tpl.GrandTotal()) // 5x2 + 3x4
}

func TestTemplate_SectionByName(t *testing.T) {
	tpl := Template{Sections: []Section{{Name: "Section A"}, {Name: "Section B"}}}

	s, ok := tpl.SectionByName("Section B")
	assert.True(t, ok)
	assert.Equal(t, "Section B", s.Name)

	_, ok = tpl.SectionByName("Section C")
	assert.False(t, ok)
}

func TestTemplateForm_Validate(t *testing.T) {
	validate, translator := core.NewValidator()

	validForm := func() TemplateForm {
		return TemplateForm{
			Name:          "Midterm Blueprint",
			InstituteName: "Sunrise Institute",
			Duration:      90,
			Sections: []Section{
				{Name: "Section A", Type: SectionAnswerAll, TotalQuestions: 5, MarksPerQuestion: 2},
			},
		}
	}

	t.Run("valid form passes", func(t *testing.T) {
		form := validForm()
		assert.NoError(t, form.Validate(validate, translator))
	})

	t.Run("missing name blocks submit", func(t *testing.T) {
		form := validForm()
		form.Name = ""
		err := form.Validate(validate, translator)
		assert.Error(t, err)
		vErr, ok := err.(*core.ValidationError)
		if assert.True(t, ok) {
			assert.Equal(t, "templateName", vErr.Fields[0].Field)
		}
	})

	t.Run("non-positive duration blocks submit", func(t *testing.T) {
		form := validForm()
		form.Duration = 0
		assert.Error(t, form.Validate(validate, translator))
	})

	t.Run("no sections blocks submit", func(t *testing.T) {
		form := validForm()
		form.Sections = nil
		assert.Error(t, form.Validate(validate, translator))
	})

	t.Run("choose any needs answerable count", func(t *testing.T) {
		form := validForm()
		form.Sections = []Section{
			{Name: "Section B", Type: SectionChooseAny, TotalQuestions: 5, QuestionsToAnswer: 7, MarksPerQuestion: 4},
		}
		assert.Error(t, form.Validate(validate, translator))
	})

	t.Run("unknown section type rejected", func(t *testing.T) {
		form := validForm()
		form.Sections = []Section{
			{Name: "Section X", Type: "PickSome", TotalQuestions: 5, MarksPerQuestion: 2},
		}
		assert.Error(t, form.Validate(validate, translator))
	})
}

func TestTemplateForm_Template(t *testing.T) {
	form := TemplateForm{
		Name: "Finals",
		Sections: []Section{
			{Name: "Section A", Type: SectionAnswerAll, TotalQuestions: 5, MarksPerQuestion: 2},
			{Name: "Section B", Type: SectionChooseAny, TotalQuestions: 5, QuestionsToAnswer: 3, MarksPerQuestion: 4},
		},
	}
	tpl := form.Template()
	assert.Equal(t, 10, tpl.TotalQuestions)
	assert.Equal(t, 22, tpl.TotalMarks)
}
