package examapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/vamsidulam/exameval/core/student"
)

func (c *Client) ListStudents(ctx context.Context) ([]student.Student, error) {
	var students []student.Student
	err := c.do(ctx, http.MethodGet, "/students", nil, &students)
	return students, err
}

func (c *Client) CreateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	var created student.Student
	err := c.do(ctx, http.MethodPost, "/students", s, &created)
	return created, err
}

func (c *Client) UpdateStudent(ctx context.Context, s student.Student) (student.Student, error) {
	var updated student.Student
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/students/%s", s.ID), s, &updated)
	return updated, err
}

func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/students/%s", id), nil, nil)
}

// ImportStudentsCSV uploads a roster CSV. The import is not atomic: the
// report carries both committed and rejected rows and must be presented as
// such, never as a hard failure.
func (c *Client) ImportStudentsCSV(ctx context.Context, file io.Reader, filename, className string) (student.ImportReport, error) {
	var rep student.ImportReport
	fields := map[string]string{"class_name": className}
	err := c.upload(ctx, "/students/import-csv", file, filename, fields, &rep)
	return rep, err
}
