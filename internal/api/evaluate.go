package api

import (
	"context"
	"net/http"
)

// Evaluate evaluates a single expression on the service.
func (c *Client) Evaluate(ctx context.Context, expr string) (*EvaluateResponse, error) {
	var out EvaluateResponse
	if err := c.do(ctx, http.MethodPost, "/v1/evaluate", EvaluateRequest{Expression: expr}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
