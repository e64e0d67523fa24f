package echoapi

import (
	"encoding/csv"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/vamsidulam/exameval/core/student"
)

// importStudents handles the bulk roster upload. The import is not atomic:
// valid rows are committed as they are seen, rejected rows are echoed back
// with their row number, raw data, and reason.
func (api *api) importStudents(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "a csv file part is required")
	}
	f, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening uploaded csv")
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not parse csv: "+err.Error())
	}
	if len(records) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "csv file is empty")
	}

	branch := ctx.FormValue("class_name")
	start := 0
	if isHeader(records[0]) {
		start = 1
	}

	rep := student.ImportReport{}
	seen := make(map[string]bool)
	for i, rec := range records[start:] {
		rep.TotalRows++
		s, reason := rowToStudent(rec, branch)
		if reason == "" {
			if seen[s.StudentID] || api.store.studentIDExists(s.StudentID) {
				reason = "duplicate student ID"
			}
		}
		if reason != "" {
			rep.FailedInserts++
			rep.Failed = append(rep.Failed, student.FailedRow{
				Row:    i + 1,
				Data:   strings.Join(rec, ","),
				Reason: reason,
			})
			continue
		}
		seen[s.StudentID] = true
		api.store.createStudent(s)
		rep.SuccessfulInserts++
	}
	return ctx.JSON(http.StatusOK, rep)
}

func isHeader(rec []string) bool {
	for _, c := range rec {
		if strings.EqualFold(strings.TrimSpace(c), "student_id") {
			return true
		}
	}
	return false
}

// columns: student_id, name, email, phone_no, branch
func rowToStudent(rec []string, defaultBranch string) (student.Student, string) {
	col := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	s := student.Student{
		StudentID: col(0),
		Name:      col(1),
		Email:     col(2),
		PhoneNo:   col(3),
		Branch:    col(4),
	}
	if s.Branch == "" {
		s.Branch = defaultBranch
	}
	switch {
	case s.StudentID == "":
		return s, "missing student_id"
	case s.Name == "":
		return s, "missing name"
	case s.Email != "" && !strings.Contains(s.Email, "@"):
		return s, "invalid email"
	}
	return s, ""
}
