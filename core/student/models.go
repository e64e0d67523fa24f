package student

import (
	"encoding/json"

	"github.com/vamsidulam/exameval/core"
)

type Student struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	PhoneNo   string `json:"phone_no,omitempty"`
	Branch    string `json:"branch,omitempty"`
	Status    string `json:"status,omitempty"`
}

type (
	// FailedRow echoes a rejected CSV row back with its original data.
	FailedRow struct {
		Row    int    `json:"row"`
		Data   string `json:"data"`
		Reason string `json:"reason"`
	}

	// ImportReport is the outcome of a bulk CSV import. The operation is not
	// atomic: successful rows are committed and failed rows enumerated, so
	// partial success is never a hard failure.
	ImportReport struct {
		TotalRows         int         `json:"total_rows"`
		SuccessfulInserts int         `json:"successful_inserts"`
		FailedInserts     int         `json:"failed_inserts"`
		Failed            []FailedRow `json:"failed_rows,omitempty"`
	}
)

func FromMap(m map[string]interface{}) Student {
	return Student{
		ID:        core.JSONString(m, "id", "_id"),
		StudentID: core.JSONString(m, "student_id", "studentId"),
		Name:      core.JSONString(m, "name", "student_name", "studentName"),
		Email:     core.JSONString(m, "email"),
		PhoneNo:   core.JSONString(m, "phone_no", "phoneNo", "phone"),
		Branch:    core.JSONString(m, "branch"),
		Status:    core.JSONString(m, "status"),
	}
}

func (s *Student) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = FromMap(m)
	return nil
}

func ImportReportFromMap(m map[string]interface{}) ImportReport {
	rep := ImportReport{
		TotalRows:         core.JSONInt(m, "total_rows", "totalRows"),
		SuccessfulInserts: core.JSONInt(m, "successful_inserts", "successfulInserts"),
		FailedInserts:     core.JSONInt(m, "failed_inserts", "failedInserts"),
	}
	for _, fm := range core.JSONObjectSlice(m, "failed_rows", "failedRows", "failures") {
		rep.Failed = append(rep.Failed, FailedRow{
			Row:    core.JSONInt(fm, "row", "row_number", "rowNumber"),
			Data:   core.JSONString(fm, "data", "row_data", "rowData"),
			Reason: core.JSONString(fm, "reason", "detail", "error"),
		})
	}
	return rep
}

func (r *ImportReport) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*r = ImportReportFromMap(m)
	return nil
}
