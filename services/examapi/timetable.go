package examapi

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/vamsidulam/exameval/core/timetable"
)

func (c *Client) UploadTimetable(ctx context.Context, file io.Reader, filename, className string) (timetable.Timetable, error) {
	var tt timetable.Timetable
	fields := map[string]string{"class_name": className}
	err := c.upload(ctx, "/timetable/upload", file, filename, fields, &tt)
	return tt, err
}

func (c *Client) ListTimetables(ctx context.Context, className string) ([]timetable.Timetable, error) {
	path := "/timetable"
	if className != "" {
		path += "?class_name=" + url.QueryEscape(className)
	}
	var tts []timetable.Timetable
	err := c.do(ctx, http.MethodGet, path, nil, &tts)
	return tts, err
}
