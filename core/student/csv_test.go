package student

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vamsidulam/exameval/core"
)

const rosterHeader = "student_id,name,email,phone_no,branch\n"

func TestPreflightRoster(t *testing.T) {
	validate, _ := core.NewValidator()

	t.Run("partial failure keeps both counters honest", func(t *testing.T) {
		csv := rosterHeader +
			"S001,Alice,alice@example.com,,CSE\n" +
			"S002,Bob,,,CSE\n" +
			",Carol,carol@example.com,,CSE\n" + // row 3: missing student_id
			"S004,Dave,not-an-email,,CSE\n" + // row 4: bad email
			"S005,Eve,eve@example.com,,ECE\n"

		rep, err := PreflightRoster(strings.NewReader(csv), validate)
		require.NoError(t, err)

		assert.Equal(t, 5, rep.TotalRows)
		assert.Equal(t, 3, rep.SuccessfulInserts)
		assert.Equal(t, 2, rep.FailedInserts)
		require.Len(t, rep.Failed, 2)
		assert.Equal(t, 3, rep.Failed[0].Row)
		assert.Contains(t, rep.Failed[0].Reason, "student_id is required")
		assert.Equal(t, 4, rep.Failed[1].Row)
		assert.Contains(t, rep.Failed[1].Reason, "email is not a valid email")
		assert.Contains(t, rep.Failed[1].Data, "not-an-email")
	})

	t.Run("headerless files follow the default column order", func(t *testing.T) {
		csv := "S001,Alice,alice@example.com,999,CSE\n" +
			"S002,,,,\n" // missing name

		rep, err := PreflightRoster(strings.NewReader(csv), validate)
		require.NoError(t, err)

		assert.Equal(t, 2, rep.TotalRows)
		assert.Equal(t, 1, rep.SuccessfulInserts)
		assert.Equal(t, 1, rep.FailedInserts)
		require.Len(t, rep.Failed, 1)
		assert.Equal(t, 2, rep.Failed[0].Row)
		assert.Contains(t, rep.Failed[0].Reason, "name is required")
	})

	t.Run("ragged rows are reported not fatal", func(t *testing.T) {
		csv := rosterHeader +
			"S001,Alice\n" // short row: email column absent, still valid

		rep, err := PreflightRoster(strings.NewReader(csv), validate)
		require.NoError(t, err)
		assert.Equal(t, 1, rep.SuccessfulInserts)
	})

	t.Run("empty file errors", func(t *testing.T) {
		_, err := PreflightRoster(strings.NewReader(""), validate)
		assert.EqualError(t, err, "roster csv is empty")
	})

	t.Run("header-only file has zero rows", func(t *testing.T) {
		rep, err := PreflightRoster(strings.NewReader(rosterHeader), validate)
		require.NoError(t, err)
		assert.Zero(t, rep.TotalRows)
	})
}

func TestImportReportFromMap(t *testing.T) {
	payload := `{
		"totalRows": 10,
		"successfulInserts": 8,
		"failedInserts": 2,
		"failedRows": [
			{"row": 3, "data": ",Carol,c@x.com", "reason": "missing student_id"},
			{"row_number": 7, "row_data": "S007,,", "detail": "missing name"}
		]
	}`

	var rep ImportReport
	require.NoError(t, json.Unmarshal([]byte(payload), &rep))

	assert.Equal(t, 10, rep.TotalRows)
	assert.Equal(t, 8, rep.SuccessfulInserts)
	assert.Equal(t, 2, rep.FailedInserts)
	require.Len(t, rep.Failed, 2)
	assert.Equal(t, 3, rep.Failed[0].Row)
	assert.Equal(t, "missing student_id", rep.Failed[0].Reason)
	assert.Equal(t, 7, rep.Failed[1].Row)
	assert.Equal(t, "missing name", rep.Failed[1].Reason)
}

func TestStudentFromMap(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Student
	}{
		{
			"snake_case",
			`{"id": "u1", "student_id": "S001", "name": "Alice", "phone_no": "999"}`,
			Student{ID: "u1", StudentID: "S001", Name: "Alice", PhoneNo: "999"},
		},
		{
			"camelCase",
			`{"_id": "u2", "studentId": "S002", "studentName": "Bob", "phoneNo": "111", "branch": "ECE"}`,
			Student{ID: "u2", StudentID: "S002", Name: "Bob", PhoneNo: "111", Branch: "ECE"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Student
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &s))
			assert.Equal(t, tt.want, s)
		})
	}
}
