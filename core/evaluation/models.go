package evaluation

import (
	"encoding/json"
	"time"

	"github.com/vamsidulam/exameval/core"
)

// Transfer records for the evaluation workflow. Scores come exclusively from
// the backend; nothing here computes or adjusts them.

type (
	// KeySheet is an uploaded reference answer document used as the grading
	// baseline.
	KeySheet struct {
		ID         string    `json:"id"`
		ClassName  string    `json:"class_name"`
		Subject    string    `json:"subject,omitempty"`
		FileName   string    `json:"file_name,omitempty"`
		UploadedAt time.Time `json:"uploaded_at,omitempty"`
	}

	// KeyMetadata is the backend's parsed view of a key sheet.
	KeyMetadata struct {
		KeySheetID     string `json:"key_sheet_id"`
		TotalQuestions int    `json:"total_questions"`
		TotalMarks     int    `json:"total_marks"`
		Subject        string `json:"subject,omitempty"`
	}

	// StudentScript is an uploaded student answer submission.
	StudentScript struct {
		ID         string    `json:"id"`
		StudentID  string    `json:"student_id"`
		KeySheetID string    `json:"key_sheet_id"`
		FileName   string    `json:"file_name,omitempty"`
		Status     string    `json:"status,omitempty"` // pending | evaluated | failed
		UploadedAt time.Time `json:"uploaded_at,omitempty"`
	}

	// EvaluationResult is a script's evaluation outcome.
	EvaluationResult struct {
		ID          string    `json:"id"`
		StudentID   string    `json:"student_id"`
		ScriptID    string    `json:"script_id,omitempty"`
		KeySheetID  string    `json:"key_sheet_id"`
		Score       float64   `json:"score"`
		MaxScore    float64   `json:"max_score"`
		Grade       string    `json:"grade,omitempty"`
		Feedback    string    `json:"feedback,omitempty"`
		Status      string    `json:"status,omitempty"`
		EvaluatedAt time.Time `json:"evaluated_at,omitempty"`
	}

	// ResultStats is the aggregate the analytics view renders.
	ResultStats struct {
		Evaluated int     `json:"evaluated"`
		Pending   int     `json:"pending"`
		Average   float64 `json:"average"`
		Highest   float64 `json:"highest"`
		Lowest    float64 `json:"lowest"`
	}

	// Dashboard bundles the three concurrently fetched datasets; it is only
	// ever populated whole.
	Dashboard struct {
		Results   []EvaluationResult
		KeySheets []KeySheet
		Stats     ResultStats
	}
)

func KeySheetFromMap(m map[string]interface{}) KeySheet {
	return KeySheet{
		ID:         core.JSONString(m, "id", "_id", "key_sheet_id", "keySheetId"),
		ClassName:  core.JSONString(m, "class_name", "className"),
		Subject:    core.JSONString(m, "subject"),
		FileName:   core.JSONString(m, "file_name", "fileName"),
		UploadedAt: core.JSONTime(m, "uploaded_at", "uploadedAt"),
	}
}

func KeyMetadataFromMap(m map[string]interface{}) KeyMetadata {
	return KeyMetadata{
		KeySheetID:     core.JSONString(m, "key_sheet_id", "keySheetId"),
		TotalQuestions: core.JSONInt(m, "total_questions", "totalQuestions"),
		TotalMarks:     core.JSONInt(m, "total_marks", "totalMarks"),
		Subject:        core.JSONString(m, "subject"),
	}
}

func ScriptFromMap(m map[string]interface{}) StudentScript {
	return StudentScript{
		ID:         core.JSONString(m, "id", "_id", "script_id", "scriptId"),
		StudentID:  core.JSONString(m, "student_id", "studentId"),
		KeySheetID: core.JSONString(m, "key_sheet_id", "keySheetId"),
		FileName:   core.JSONString(m, "file_name", "fileName"),
		Status:     core.JSONString(m, "status"),
		UploadedAt: core.JSONTime(m, "uploaded_at", "uploadedAt"),
	}
}

func ResultFromMap(m map[string]interface{}) EvaluationResult {
	return EvaluationResult{
		ID:          core.JSONString(m, "id", "_id", "result_id", "resultId"),
		StudentID:   core.JSONString(m, "student_id", "studentId"),
		ScriptID:    core.JSONString(m, "script_id", "scriptId"),
		KeySheetID:  core.JSONString(m, "key_sheet_id", "keySheetId"),
		Score:       core.JSONFloat(m, "score", "obtained_marks", "obtainedMarks"),
		MaxScore:    core.JSONFloat(m, "max_score", "maxScore", "total_marks", "totalMarks"),
		Grade:       core.JSONString(m, "grade"),
		Feedback:    core.JSONString(m, "feedback"),
		Status:      core.JSONString(m, "status"),
		EvaluatedAt: core.JSONTime(m, "evaluated_at", "evaluatedAt"),
	}
}

func StatsFromMap(m map[string]interface{}) ResultStats {
	return ResultStats{
		Evaluated: core.JSONInt(m, "evaluated", "evaluated_count", "evaluatedCount"),
		Pending:   core.JSONInt(m, "pending", "pending_count", "pendingCount"),
		Average:   core.JSONFloat(m, "average", "average_score", "averageScore"),
		Highest:   core.JSONFloat(m, "highest", "highest_score", "highestScore"),
		Lowest:    core.JSONFloat(m, "lowest", "lowest_score", "lowestScore"),
	}
}

func (k *KeySheet) UnmarshalJSON(data []byte) error         { return fromJSON(data, k, KeySheetFromMap) }
func (k *KeyMetadata) UnmarshalJSON(data []byte) error      { return fromJSON(data, k, KeyMetadataFromMap) }
func (s *StudentScript) UnmarshalJSON(data []byte) error    { return fromJSON(data, s, ScriptFromMap) }
func (r *EvaluationResult) UnmarshalJSON(data []byte) error { return fromJSON(data, r, ResultFromMap) }
func (s *ResultStats) UnmarshalJSON(data []byte) error      { return fromJSON(data, s, StatsFromMap) }

func fromJSON[T any](data []byte, dst *T, fn func(map[string]interface{}) T) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*dst = fn(m)
	return nil
}
