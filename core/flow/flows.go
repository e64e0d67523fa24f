package flow

// The three console flows. Guards are supplied by the caller so the FSM
// stays free of form types; a nil guard means the step has no client-side
// validation.

// Template creation: details -> sections -> review -> submitted.
const (
	TplDetails   State = "details"
	TplSections  State = "sections"
	TplReview    State = "review"
	TplSubmitted State = "submitted"
)

func TemplateCreation(detailsOK, sectionsOK func() error) *Flow {
	return New("template-creation", TplDetails).
		Permit(TplDetails, TplSections, detailsOK).
		Permit(TplSections, TplDetails). // going back never re-validates
		Permit(TplSections, TplReview, sectionsOK).
		Permit(TplReview, TplSections).
		Permit(TplReview, TplSubmitted).
		Terminal(TplSubmitted)
}

// Question-paper generation: setup -> syllabus -> generating -> done|failed.
const (
	GenSetup      State = "setup"
	GenSyllabus   State = "syllabus"
	GenGenerating State = "generating"
	GenDone       State = "done"
	GenFailed     State = "failed"
)

func PaperGeneration(setupOK, syllabusOK func() error) *Flow {
	return New("paper-generation", GenSetup).
		Permit(GenSetup, GenSyllabus, setupOK).
		Permit(GenSyllabus, GenSetup).
		Permit(GenSyllabus, GenGenerating, syllabusOK).
		Permit(GenGenerating, GenDone).
		Permit(GenGenerating, GenFailed).
		Permit(GenFailed, GenSyllabus). // a failed generation can be retried
		Terminal(GenDone)
}

// Evaluation upload: key sheet -> scripts -> evaluating -> done|failed.
const (
	EvalKeySheet   State = "key-sheet"
	EvalScripts    State = "scripts"
	EvalEvaluating State = "evaluating"
	EvalDone       State = "done"
	EvalFailed     State = "failed"
)

func EvaluationUpload(keySheetOK, scriptsOK func() error) *Flow {
	return New("evaluation-upload", EvalKeySheet).
		Permit(EvalKeySheet, EvalScripts, keySheetOK).
		Permit(EvalScripts, EvalKeySheet).
		Permit(EvalScripts, EvalEvaluating, scriptsOK).
		Permit(EvalEvaluating, EvalDone).
		Permit(EvalEvaluating, EvalFailed).
		Permit(EvalFailed, EvalScripts).
		Terminal(EvalDone)
}
