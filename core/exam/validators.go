package exam

import (
	"errors"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/vamsidulam/exameval/core"
)

var (
	errNoSections        = errors.New("at least one section is required")
	errChooseAnyTooMany  = "questionsToAnswer cannot exceed totalQuestions"
	errChooseAnyRequired = "questionsToAnswer is required for this section type"
	errBadSectionType    = "must be one of AnswerAll, ChooseAny, Optional"
)

// TemplateForm carries the client-side template create/edit fields.
// Validation here blocks the submit before any network call is made.
type TemplateForm struct {
	Name          string    `json:"templateName" validate:"required,alphanum_"`
	InstituteName string    `json:"instituteName" validate:"required"`
	Duration      int       `json:"duration" validate:"required,gt=0"`
	ExamDate      string    `json:"examDate"`
	ExamTime      ExamTime  `json:"examTime"`
	Sections      []Section `json:"sections"`
}

func (f *TemplateForm) Validate(validate *validator.Validate, translator ut.Translator) error {
	f.Name = core.CleanString(f.Name)
	f.InstituteName = core.CleanString(f.InstituteName)

	if err := core.TranslateValidationErrors(validate.Struct(f), translator); err != nil {
		return err
	}
	if len(f.Sections) == 0 {
		return core.NewValidationError(errNoSections, core.FieldError{Field: "sections", Error: errNoSections.Error()})
	}
	for _, s := range f.Sections {
		if err := validateSection(s); err != nil {
			return err
		}
	}
	return nil
}

func validateSection(s Section) error {
	fldErr := func(field, msg string) error {
		return core.NewValidationError(errors.New(msg), core.FieldError{Field: s.Name + "." + field, Error: msg})
	}
	switch s.Type {
	case SectionAnswerAll:
	case SectionChooseAny, SectionOptional:
		if s.QuestionsToAnswer <= 0 {
			return fldErr("questionsToAnswer", errChooseAnyRequired)
		}
		if s.QuestionsToAnswer > s.TotalQuestions {
			return fldErr("questionsToAnswer", errChooseAnyTooMany)
		}
	default:
		return fldErr("sectionType", errBadSectionType)
	}
	if s.TotalQuestions <= 0 {
		return fldErr("totalQuestions", "must be a positive number")
	}
	if s.MarksPerQuestion <= 0 {
		return fldErr("marksPerQuestion", "must be a positive number")
	}
	return nil
}

// Template materializes the validated form into a canonical Template.
func (f TemplateForm) Template() Template {
	tpl := Template{
		Name:          f.Name,
		InstituteName: f.InstituteName,
		Duration:      f.Duration,
		ExamDate:      f.ExamDate,
		ExamTime:      f.ExamTime,
		Sections:      f.Sections,
	}
	for _, s := range f.Sections {
		tpl.TotalQuestions += s.TotalQuestions
	}
	tpl.TotalMarks = tpl.GrandTotal()
	return tpl
}
