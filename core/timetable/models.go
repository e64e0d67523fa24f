package timetable

import (
	"encoding/json"
	"time"

	"github.com/vamsidulam/exameval/core"
)

// Timetable is an uploaded class timetable record; the file itself lives on
// the backend, the console only tracks the upload.
type Timetable struct {
	ID         string    `json:"id"`
	ClassName  string    `json:"class_name"`
	FileName   string    `json:"file_name,omitempty"`
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
}

func FromMap(m map[string]interface{}) Timetable {
	return Timetable{
		ID:         core.JSONString(m, "id", "_id", "timetable_id", "timetableId"),
		ClassName:  core.JSONString(m, "class_name", "className"),
		FileName:   core.JSONString(m, "file_name", "fileName"),
		UploadedAt: core.JSONTime(m, "uploaded_at", "uploadedAt"),
	}
}

func (t *Timetable) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*t = FromMap(m)
	return nil
}
