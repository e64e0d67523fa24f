package examapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vamsidulam/exameval/core/paper"
	"github.com/vamsidulam/exameval/core/question"
)

// NewPaper is the create payload; questions only exist once generation
// succeeds server-side.
type NewPaper struct {
	TemplateID             string `json:"template_id" validate:"required"`
	Name                   string `json:"name" validate:"required"`
	Syllabus               string `json:"syllabus" validate:"required"`
	AdditionalInstructions string `json:"additional_instructions,omitempty"`
}

func (c *Client) ListPapers(ctx context.Context) ([]paper.QuestionPaper, error) {
	var papers []paper.QuestionPaper
	err := c.do(ctx, http.MethodGet, "/question-papers", nil, &papers)
	return papers, err
}

func (c *Client) GetPaper(ctx context.Context, id string) (paper.QuestionPaper, error) {
	var p paper.QuestionPaper
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/question-papers/%s", id), nil, &p)
	return p, err
}

func (c *Client) CreatePaper(ctx context.Context, np NewPaper) (paper.QuestionPaper, error) {
	var p paper.QuestionPaper
	err := c.do(ctx, http.MethodPost, "/question-papers", np, &p)
	return p, err
}

// GeneratePaper triggers the backend's AI question generation and returns the
// populated paper. Generation can be slow; the context is the only leash.
func (c *Client) GeneratePaper(ctx context.Context, id string) (paper.QuestionPaper, error) {
	var p paper.QuestionPaper
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/question-papers/%s/generate", id), nil, &p)
	return p, err
}

// SaveQuestions persists an edited question list, replacing the stored one.
func (c *Client) SaveQuestions(ctx context.Context, id string, qs []question.Question) (paper.QuestionPaper, error) {
	var p paper.QuestionPaper
	body := map[string]interface{}{"questions": qs}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/question-papers/%s/questions", id), body, &p)
	return p, err
}

func (c *Client) DeletePaper(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/question-papers/%s", id), nil, nil)
}
