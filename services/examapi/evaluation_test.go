package examapi

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsidulam/exameval/core/session"
)

func TestEvaluationWorkflow(t *testing.T) {
	client, sess := newTestClient(t)
	loginAs(t, client, sess)
	ctx := context.Background()

	t.Run("key sheet upload requires a class name", func(t *testing.T) {
		_, err := client.UploadKeySheet(ctx, strings.NewReader("key"), "key.pdf", "", "")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Contains(t, apiErr.Detail, "class_name")
	})

	ks, err := client.UploadKeySheet(ctx, strings.NewReader("key"), "physics-key.pdf", "CSE-A", "Physics")
	require.NoError(t, err)
	require.NotEmpty(t, ks.ID)
	assert.Equal(t, "physics-key.pdf", ks.FileName)
	assert.Equal(t, "Physics", ks.Subject)

	t.Run("metadata for an uploaded key sheet", func(t *testing.T) {
		md, err := client.KeySheetMetadata(ctx, ks.ID)
		require.NoError(t, err)
		assert.Equal(t, ks.ID, md.KeySheetID)
		assert.Equal(t, "Physics", md.Subject)
		assert.Equal(t, 10, md.TotalQuestions)
		assert.Equal(t, 100, md.TotalMarks)
	})

	t.Run("metadata for an unknown key sheet", func(t *testing.T) {
		_, err := client.KeySheetMetadata(ctx, "nope")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.EqualError(t, apiErr, "key sheet not found")
	})

	t.Run("script upload requires a known key sheet", func(t *testing.T) {
		_, err := client.UploadScript(ctx, strings.NewReader("ans"), "s.pdf", "nope", "S001")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.EqualError(t, apiErr, "key sheet not found")
	})

	for _, studentID := range []string{"S001", "S002", "S003"} {
		sc, err := client.UploadScript(ctx, strings.NewReader("answers"), studentID+".pdf", ks.ID, studentID)
		require.NoError(t, err)
		assert.Equal(t, "pending", sc.Status)
	}

	scripts, err := client.ListScripts(ctx, ks.ID)
	require.NoError(t, err)
	require.Len(t, scripts, 3)

	results, err := client.Evaluate(ctx, ks.ID)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, "evaluated", r.Status)
		assert.Equal(t, float64(100), r.MaxScore)
		assert.GreaterOrEqual(t, r.Score, 40.0)
		assert.LessOrEqual(t, r.Score, 95.0)
	}

	t.Run("re-evaluation finds nothing pending", func(t *testing.T) {
		again, err := client.Evaluate(ctx, ks.ID)
		require.NoError(t, err)
		assert.Empty(t, again)
	})

	t.Run("dashboard resolves whole or not at all", func(t *testing.T) {
		dash, err := client.Dashboard(ctx, ks.ID)
		require.NoError(t, err)
		assert.Len(t, dash.Results, 3)
		assert.Len(t, dash.KeySheets, 1)
		assert.Equal(t, 3, dash.Stats.Evaluated)
		assert.Zero(t, dash.Stats.Pending)
		assert.GreaterOrEqual(t, dash.Stats.Highest, dash.Stats.Average)
		assert.LessOrEqual(t, dash.Stats.Lowest, dash.Stats.Average)

		sess2, err := session.NewContext(&memStore{})
		require.NoError(t, err)
		broken := NewClient(Options{BaseURL: client.base, Session: sess2})
		_, err = broken.Dashboard(ctx, ks.ID)
		require.Error(t, err, "one failing leg discards the lot")
	})
}

func TestTimetable(t *testing.T) {
	client, sess := newTestClient(t)
	loginAs(t, client, sess)
	ctx := context.Background()

	tt, err := client.UploadTimetable(ctx, strings.NewReader("timetable"), "cse-a.pdf", "CSE-A")
	require.NoError(t, err)
	require.NotEmpty(t, tt.ID)

	_, err = client.UploadTimetable(ctx, strings.NewReader("timetable"), "ece-b.pdf", "ECE-B")
	require.NoError(t, err)

	all, err := client.ListTimetables(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := client.ListTimetables(ctx, "CSE-A")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "cse-a.pdf", filtered[0].FileName)
}
