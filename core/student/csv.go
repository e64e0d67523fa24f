package student

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Client-side roster pre-validation. The backend remains the authority (it
// re-validates and reports duplicates); this pass catches structural problems
// before bytes go over the wire, in the same per-row report shape.

// expected header columns, in order; extra columns are ignored
var rosterColumns = []string{"student_id", "name", "email", "phone_no", "branch"}

type rosterRow struct {
	StudentID string `json:"student_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	PhoneNo   string `json:"phone_no"`
	Branch    string `json:"branch"`
}

// PreflightRoster parses and validates a roster CSV without uploading it.
// Row numbers are 1-based over data rows, matching the backend's reports.
func PreflightRoster(r io.Reader, validate *validator.Validate) (ImportReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are reported per-row, not fatal
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return ImportReport{}, errors.Wrap(err, "reading roster csv")
	}
	if len(records) == 0 {
		return ImportReport{}, errors.New("roster csv is empty")
	}

	cols, start := columnIndex(records)
	rep := ImportReport{}
	for i, rec := range records[start:] {
		rep.TotalRows++
		row := rosterRow{
			StudentID: field(rec, cols, "student_id"),
			Name:      field(rec, cols, "name"),
			Email:     field(rec, cols, "email"),
			PhoneNo:   field(rec, cols, "phone_no"),
			Branch:    field(rec, cols, "branch"),
		}
		if err := validate.Struct(row); err != nil {
			rep.FailedInserts++
			rep.Failed = append(rep.Failed, FailedRow{
				Row:    i + 1,
				Data:   strings.Join(rec, ","),
				Reason: rowReason(err),
			})
			continue
		}
		rep.SuccessfulInserts++
	}
	return rep, nil
}

// columnIndex maps column names to indices from a header row when one is
// present; headerless files are assumed to follow the default column order.
func columnIndex(records [][]string) (map[string]int, int) {
	first := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		first[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := first["student_id"]; ok {
		return first, 1
	}
	cols := make(map[string]int, len(rosterColumns))
	for i, c := range rosterColumns {
		cols[c] = i
	}
	return cols, 0
}

func field(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func rowReason(err error) string {
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(vErrs))
	for _, vErr := range vErrs {
		switch vErr.Tag() {
		case "required":
			parts = append(parts, vErr.Field()+" is required")
		case "email":
			parts = append(parts, vErr.Field()+" is not a valid email")
		default:
			parts = append(parts, vErr.Field()+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}
