package examapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echoapi "github.com/vamsidulam/exameval/apps/mockapi/echo"
	"github.com/vamsidulam/exameval/core"
	"github.com/vamsidulam/exameval/core/exam"
	"github.com/vamsidulam/exameval/core/session"
)

type memStore struct {
	prefs session.Prefs
}

func (s *memStore) Load() (session.Prefs, error) { return s.prefs, nil }
func (s *memStore) Save(p session.Prefs) error   { s.prefs = p; return nil }

// newTestClient spins up the in-memory backend and a client pointed at it.
// The session starts empty; call loginAs to authenticate.
func newTestClient(t *testing.T) (*Client, *session.Context) {
	t.Helper()
	srv := httptest.NewServer(echoapi.NewServer(&echoapi.Options{DisableReqLogs: true}))
	t.Cleanup(srv.Close)

	sess, err := session.NewContext(&memStore{})
	require.NoError(t, err)
	return NewClient(Options{BaseURL: srv.URL, Session: sess}), sess
}

func loginAs(t *testing.T, client *Client, sess *session.Context) {
	t.Helper()
	tok, err := client.Login(context.Background(), Credentials{
		Username: core.Conf.GetString("seedTeacherUsername"),
		Password: core.Conf.GetString("seedTeacherPassword"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, tok.AccessToken)
	require.NoError(t, sess.SetToken(tok.AccessToken, "teacher"))
}

func sampleTemplate() exam.Template {
	return exam.Template{
		Name: "Midterm",
		Sections: []exam.Section{
			{Name: "Section A", Type: exam.SectionAnswerAll, TotalQuestions: 2, MarksPerQuestion: 2},
			{Name: "Section B", Type: exam.SectionChooseAny, TotalQuestions: 3, QuestionsToAnswer: 2, MarksPerQuestion: 4},
		},
	}
}

func TestLogin(t *testing.T) {
	client, sess := newTestClient(t)
	ctx := context.Background()

	t.Run("bad credentials surface the backend detail verbatim", func(t *testing.T) {
		_, err := client.Login(ctx, Credentials{Username: "teacher", Password: "nope"})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.EqualError(t, apiErr, "incorrect username or password")
	})

	t.Run("valid credentials yield a usable token", func(t *testing.T) {
		loginAs(t, client, sess)
		_, err := client.ListTemplates(ctx)
		assert.NoError(t, err)
	})
}

func TestFailClosedWithoutToken(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.ListTemplates(context.Background())
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func TestTemplates(t *testing.T) {
	client, sess := newTestClient(t)
	loginAs(t, client, sess)
	ctx := context.Background()

	created, err := client.CreateTemplate(ctx, sampleTemplate())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Midterm", created.Name)
	assert.Len(t, created.Sections, 2)

	got, err := client.GetTemplate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 12, got.GrandTotal())

	got.Name = "Midterm v2"
	updated, err := client.UpdateTemplate(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Midterm v2", updated.Name)

	tpls, err := client.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, tpls, 1)

	require.NoError(t, client.DeleteTemplate(ctx, created.ID))
	_, err = client.GetTemplate(ctx, created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.EqualError(t, apiErr, "template not found")
}

func TestCreateTemplateValidation(t *testing.T) {
	client, sess := newTestClient(t)
	loginAs(t, client, sess)

	_, err := client.CreateTemplate(context.Background(), exam.Template{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Detail, "templateName")
}

func TestPapers(t *testing.T) {
	client, sess := newTestClient(t)
	loginAs(t, client, sess)
	ctx := context.Background()

	tpl, err := client.CreateTemplate(ctx, sampleTemplate())
	require.NoError(t, err)

	t.Run("unknown template is rejected", func(t *testing.T) {
		_, err := client.CreatePaper(ctx, NewPaper{TemplateID: "nope", Name: "x", Syllabus: "y"})
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.EqualError(t, apiErr, "template not found")
	})

	p, err := client.CreatePaper(ctx, NewPaper{
		TemplateID: tpl.ID,
		Name:       "Midterm 2026",
		Syllabus:   "thermodynamics, kinematics",
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	assert.False(t, p.HasQuestions(), "questions only exist after generation")

	generated, err := client.GeneratePaper(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, generated.HasQuestions())
	assert.Len(t, generated.Questions, 5) // 2 + 3 across sections

	// first section questions are multiple choice with a marked answer
	first := generated.Questions[0]
	assert.True(t, first.HasOptions())
	assert.NotEmpty(t, first.CorrectAnswer)
	assert.Equal(t, "Section A", first.SectionName)

	// edits replace the stored questions wholesale
	edited := generated.Questions[:2]
	edited[0].Text = "Edited question text"
	saved, err := client.SaveQuestions(ctx, p.ID, edited)
	require.NoError(t, err)
	require.Len(t, saved.Questions, 2)
	assert.Equal(t, "Edited question text", saved.Questions[0].Text)

	require.NoError(t, client.DeletePaper(ctx, p.ID))
	papers, err := client.ListPapers(ctx)
	require.NoError(t, err)
	assert.Empty(t, papers)
}

func TestBackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening

	sess, err := session.NewContext(&memStore{prefs: session.Prefs{Token: "tkn"}})
	require.NoError(t, err)
	client := NewClient(Options{BaseURL: srv.URL, Session: sess})

	_, err = client.ListTemplates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend unreachable")
}
