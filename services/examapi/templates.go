package examapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vamsidulam/exameval/core/exam"
)

func (c *Client) ListTemplates(ctx context.Context) ([]exam.Template, error) {
	var tpls []exam.Template
	err := c.do(ctx, http.MethodGet, "/templates", nil, &tpls)
	return tpls, err
}

func (c *Client) GetTemplate(ctx context.Context, id string) (exam.Template, error) {
	var tpl exam.Template
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/templates/%s", id), nil, &tpl)
	return tpl, err
}

func (c *Client) CreateTemplate(ctx context.Context, tpl exam.Template) (exam.Template, error) {
	var created exam.Template
	err := c.do(ctx, http.MethodPost, "/templates", tpl, &created)
	return created, err
}

func (c *Client) UpdateTemplate(ctx context.Context, tpl exam.Template) (exam.Template, error) {
	var updated exam.Template
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/templates/%s", tpl.ID), tpl, &updated)
	return updated, err
}

func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/templates/%s", id), nil, nil)
}
