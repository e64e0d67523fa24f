package examapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/vamsidulam/exameval/core/evaluation"
)

func (c *Client) UploadKeySheet(ctx context.Context, file io.Reader, filename, className, subject string) (evaluation.KeySheet, error) {
	var ks evaluation.KeySheet
	fields := map[string]string{"class_name": className}
	if subject != "" {
		fields["subject"] = subject
	}
	err := c.upload(ctx, "/evaluation/key-sheets", file, filename, fields, &ks)
	return ks, err
}

func (c *Client) ListKeySheets(ctx context.Context) ([]evaluation.KeySheet, error) {
	var sheets []evaluation.KeySheet
	err := c.do(ctx, http.MethodGet, "/evaluation/key-sheets", nil, &sheets)
	return sheets, err
}

func (c *Client) KeySheetMetadata(ctx context.Context, keySheetID string) (evaluation.KeyMetadata, error) {
	var md evaluation.KeyMetadata
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/evaluation/key-sheets/%s/metadata", keySheetID), nil, &md)
	return md, err
}

func (c *Client) UploadScript(ctx context.Context, file io.Reader, filename, keySheetID, studentID string) (evaluation.StudentScript, error) {
	var script evaluation.StudentScript
	fields := map[string]string{
		"key_sheet_id": keySheetID,
		"student_id":   studentID,
	}
	err := c.upload(ctx, "/evaluation/scripts", file, filename, fields, &script)
	return script, err
}

func (c *Client) ListScripts(ctx context.Context, keySheetID string) ([]evaluation.StudentScript, error) {
	var scripts []evaluation.StudentScript
	err := c.do(ctx, http.MethodGet, "/evaluation/scripts?key_sheet_id="+url.QueryEscape(keySheetID), nil, &scripts)
	return scripts, err
}

// Evaluate triggers evaluation of all pending scripts against a key sheet.
func (c *Client) Evaluate(ctx context.Context, keySheetID string) ([]evaluation.EvaluationResult, error) {
	var results []evaluation.EvaluationResult
	body := map[string]string{"key_sheet_id": keySheetID}
	err := c.do(ctx, http.MethodPost, "/evaluation/evaluate", body, &results)
	return results, err
}

func (c *Client) Results(ctx context.Context, keySheetID string) ([]evaluation.EvaluationResult, error) {
	var results []evaluation.EvaluationResult
	err := c.do(ctx, http.MethodGet, "/evaluation/results?key_sheet_id="+url.QueryEscape(keySheetID), nil, &results)
	return results, err
}

func (c *Client) Stats(ctx context.Context, keySheetID string) (evaluation.ResultStats, error) {
	var stats evaluation.ResultStats
	err := c.do(ctx, http.MethodGet, "/evaluation/stats?key_sheet_id="+url.QueryEscape(keySheetID), nil, &stats)
	return stats, err
}

// Dashboard fetches results, key sheets, and stats concurrently. All three
// must resolve before anything is returned; one failure discards the lot.
// There is no ordering guarantee between the calls.
func (c *Client) Dashboard(ctx context.Context, keySheetID string) (evaluation.Dashboard, error) {
	var dash evaluation.Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		results, err := c.Results(gctx, keySheetID)
		dash.Results = results
		return err
	})
	g.Go(func() error {
		sheets, err := c.ListKeySheets(gctx)
		dash.KeySheets = sheets
		return err
	})
	g.Go(func() error {
		stats, err := c.Stats(gctx, keySheetID)
		dash.Stats = stats
		return err
	})
	if err := g.Wait(); err != nil {
		return evaluation.Dashboard{}, err
	}
	return dash, nil
}
