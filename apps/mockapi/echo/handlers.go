package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/core"
	"github.com/vamsidulam/exameval/core/evaluation"
	"github.com/vamsidulam/exameval/core/exam"
	"github.com/vamsidulam/exameval/core/paper"
	"github.com/vamsidulam/exameval/core/question"
	"github.com/vamsidulam/exameval/core/student"
	"github.com/vamsidulam/exameval/core/timetable"
)

type api struct {
	store *Store
}

var (
	errBadCredentials   = echo.NewHTTPError(http.StatusBadRequest, "incorrect username or password")
	errTemplateNotFound = echo.NewHTTPError(http.StatusNotFound, "template not found")
	errPaperNotFound    = echo.NewHTTPError(http.StatusNotFound, "question paper not found")
	errStudentNotFound  = echo.NewHTTPError(http.StatusNotFound, "student not found")
	errKeySheetNotFound = echo.NewHTTPError(http.StatusNotFound, "key sheet not found")
	errStudentIDExists  = echo.NewHTTPError(http.StatusBadRequest, "student with this ID already exists")
)

// auth

func (api *api) login(ctx echo.Context) error {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := ctx.Bind(&creds); err != nil {
		return errors.Wrap(err, "binding credentials")
	}
	if !api.store.checkLogin(creds.Username, creds.Password) {
		return errBadCredentials
	}
	token, err := issueToken(creds.Username)
	if err != nil {
		return errors.Wrap(err, "signing token")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"access_token": token, "token_type": "bearer"})
}

// templates

func (api *api) registerTemplates(g *echo.Group) {
	g.GET("/templates", api.listTemplates)
	g.POST("/templates", api.createTemplate)
	g.GET("/templates/:id", api.getTemplate)
	g.PUT("/templates/:id", api.updateTemplate)
	g.DELETE("/templates/:id", api.deleteTemplate)
}

func (api *api) listTemplates(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.listTemplates())
}

func (api *api) createTemplate(ctx echo.Context) error {
	var tpl exam.Template
	if err := ctx.Bind(&tpl); err != nil {
		return errors.Wrap(err, "binding template")
	}
	if tpl.Name == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "templateName", Error: "this field is required"})
	}
	return ctx.JSON(http.StatusCreated, api.store.createTemplate(tpl))
}

func (api *api) getTemplate(ctx echo.Context) error {
	tpl, ok := api.store.getTemplate(ctx.Param("id"))
	if !ok {
		return errTemplateNotFound
	}
	return ctx.JSON(http.StatusOK, tpl)
}

func (api *api) updateTemplate(ctx echo.Context) error {
	var tpl exam.Template
	if err := ctx.Bind(&tpl); err != nil {
		return errors.Wrap(err, "binding template")
	}
	tpl.ID = ctx.Param("id")
	if !api.store.updateTemplate(tpl) {
		return errTemplateNotFound
	}
	return ctx.JSON(http.StatusOK, tpl)
}

func (api *api) deleteTemplate(ctx echo.Context) error {
	if !api.store.deleteTemplate(ctx.Param("id")) {
		return errTemplateNotFound
	}
	return ctx.NoContent(http.StatusNoContent)
}

// question papers

func (api *api) registerPapers(g *echo.Group) {
	g.GET("/question-papers", api.listPapers)
	g.POST("/question-papers", api.createPaper)
	g.GET("/question-papers/:id", api.getPaper)
	g.POST("/question-papers/:id/generate", api.generatePaper)
	g.PUT("/question-papers/:id/questions", api.saveQuestions)
	g.DELETE("/question-papers/:id", api.deletePaper)
}

func (api *api) listPapers(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.listPapers())
}

func (api *api) createPaper(ctx echo.Context) error {
	var np struct {
		TemplateID             string `json:"template_id"`
		Name                   string `json:"name"`
		Syllabus               string `json:"syllabus"`
		AdditionalInstructions string `json:"additional_instructions"`
	}
	if err := ctx.Bind(&np); err != nil {
		return errors.Wrap(err, "binding paper")
	}
	if _, ok := api.store.getTemplate(np.TemplateID); !ok {
		return errTemplateNotFound
	}
	now := time.Now().UTC()
	p := paper.QuestionPaper{
		TemplateID:             np.TemplateID,
		Name:                   np.Name,
		Syllabus:               np.Syllabus,
		AdditionalInstructions: np.AdditionalInstructions,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	return ctx.JSON(http.StatusCreated, api.store.createPaper(p))
}

func (api *api) getPaper(ctx echo.Context) error {
	p, ok := api.store.getPaper(ctx.Param("id"))
	if !ok {
		return errPaperNotFound
	}
	return ctx.JSON(http.StatusOK, p)
}

func (api *api) generatePaper(ctx echo.Context) error {
	p, ok := api.store.getPaper(ctx.Param("id"))
	if !ok {
		return errPaperNotFound
	}
	tpl, ok := api.store.getTemplate(p.TemplateID)
	if !ok {
		return errTemplateNotFound
	}
	p.Questions = generateQuestions(tpl, p.Syllabus)
	p.UpdatedAt = time.Now().UTC()
	api.store.savePaper(p)
	return ctx.JSON(http.StatusOK, p)
}

func (api *api) saveQuestions(ctx echo.Context) error {
	p, ok := api.store.getPaper(ctx.Param("id"))
	if !ok {
		return errPaperNotFound
	}
	var body struct {
		Questions []question.Question `json:"questions"`
	}
	if err := ctx.Bind(&body); err != nil {
		return errors.Wrap(err, "binding questions")
	}
	p = p.WithQuestions(body.Questions)
	p.UpdatedAt = time.Now().UTC()
	api.store.savePaper(p)
	return ctx.JSON(http.StatusOK, p)
}

func (api *api) deletePaper(ctx echo.Context) error {
	if !api.store.deletePaper(ctx.Param("id")) {
		return errPaperNotFound
	}
	return ctx.NoContent(http.StatusNoContent)
}

// students

func (api *api) registerStudents(g *echo.Group) {
	g.GET("/students", api.listStudents)
	g.POST("/students", api.createStudent)
	g.PUT("/students/:id", api.updateStudent)
	g.DELETE("/students/:id", api.deleteStudent)
	g.POST("/students/import-csv", api.importStudents)
}

func (api *api) listStudents(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.listStudents())
}

func (api *api) createStudent(ctx echo.Context) error {
	var s student.Student
	if err := ctx.Bind(&s); err != nil {
		return errors.Wrap(err, "binding student")
	}
	if s.StudentID == "" || s.Name == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "student_id", Error: "student_id and name are required"})
	}
	if api.store.studentIDExists(s.StudentID) {
		return errStudentIDExists
	}
	return ctx.JSON(http.StatusCreated, api.store.createStudent(s))
}

func (api *api) updateStudent(ctx echo.Context) error {
	var s student.Student
	if err := ctx.Bind(&s); err != nil {
		return errors.Wrap(err, "binding student")
	}
	s.ID = ctx.Param("id")
	if !api.store.updateStudent(s) {
		return errStudentNotFound
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *api) deleteStudent(ctx echo.Context) error {
	if !api.store.deleteStudent(ctx.Param("id")) {
		return errStudentNotFound
	}
	return ctx.NoContent(http.StatusNoContent)
}

// evaluation

func (api *api) registerEvaluation(g *echo.Group) {
	g.POST("/evaluation/key-sheets", api.uploadKeySheet)
	g.GET("/evaluation/key-sheets", api.listKeySheets)
	g.GET("/evaluation/key-sheets/:id/metadata", api.getKeyMetadata)
	g.POST("/evaluation/scripts", api.uploadScript)
	g.GET("/evaluation/scripts", api.listScripts)
	g.POST("/evaluation/evaluate", api.evaluate)
	g.GET("/evaluation/results", api.listResults)
	g.GET("/evaluation/stats", api.getStats)
}

func (api *api) uploadKeySheet(ctx echo.Context) error {
	filename, err := formFileName(ctx)
	if err != nil {
		return err
	}
	className := ctx.FormValue("class_name")
	if className == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "class_name", Error: "this field is required"})
	}
	ks := evaluation.KeySheet{
		ClassName:  className,
		Subject:    ctx.FormValue("subject"),
		FileName:   filename,
		UploadedAt: time.Now().UTC(),
	}
	return ctx.JSON(http.StatusCreated, api.store.createKeySheet(ks))
}

func (api *api) listKeySheets(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.listKeySheets())
}

func (api *api) getKeyMetadata(ctx echo.Context) error {
	md, ok := api.store.keyMetadata(ctx.Param("id"))
	if !ok {
		return errKeySheetNotFound
	}
	return ctx.JSON(http.StatusOK, md)
}

func (api *api) uploadScript(ctx echo.Context) error {
	filename, err := formFileName(ctx)
	if err != nil {
		return err
	}
	keySheetID := ctx.FormValue("key_sheet_id")
	if !api.store.keySheetExists(keySheetID) {
		return errKeySheetNotFound
	}
	sc := evaluation.StudentScript{
		StudentID:  ctx.FormValue("student_id"),
		KeySheetID: keySheetID,
		FileName:   filename,
		UploadedAt: time.Now().UTC(),
	}
	return ctx.JSON(http.StatusCreated, api.store.createScript(sc))
}

func (api *api) listScripts(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.listScripts(ctx.QueryParam("key_sheet_id")))
}

func (api *api) evaluate(ctx echo.Context) error {
	var body struct {
		KeySheetID string `json:"key_sheet_id"`
	}
	if err := ctx.Bind(&body); err != nil {
		return errors.Wrap(err, "binding evaluate request")
	}
	if !api.store.keySheetExists(body.KeySheetID) {
		return errKeySheetNotFound
	}
	return ctx.JSON(http.StatusOK, api.store.evaluateScripts(body.KeySheetID))
}

func (api *api) listResults(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.listResults(ctx.QueryParam("key_sheet_id")))
}

func (api *api) getStats(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.stats(ctx.QueryParam("key_sheet_id")))
}

// timetable

func (api *api) registerTimetable(g *echo.Group) {
	g.POST("/timetable/upload", api.uploadTimetable)
	g.GET("/timetable", api.listTimetables)
}

func (api *api) uploadTimetable(ctx echo.Context) error {
	filename, err := formFileName(ctx)
	if err != nil {
		return err
	}
	className := ctx.FormValue("class_name")
	if className == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "class_name", Error: "this field is required"})
	}
	tt := timetable.Timetable{
		ClassName:  className,
		FileName:   filename,
		UploadedAt: time.Now().UTC(),
	}
	return ctx.JSON(http.StatusCreated, api.store.createTimetable(tt))
}

func (api *api) listTimetables(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.listTimetables(ctx.QueryParam("class_name")))
}

func formFileName(ctx echo.Context) (string, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return "", core.NewValidationError(nil, core.FieldError{Field: "file", Error: "a file part is required"})
	}
	return fh.Filename, nil
}
