package api

// APIError represents an error response from the calculator service.
type APIError struct {
	Error    string `json:"error"`
	Code     string `json:"code"`
	Position *int   `json:"position,omitempty"`
}

// Error codes.
const (
	CodeSyntaxError   = "SYNTAX_ERROR"
	CodeInvalidButton = "INVALID_BUTTON"
	CodeInvalidBody   = "INVALID_BODY"
	CodeNotFound      = "NOT_FOUND"
	CodeUnauthorized  = "UNAUTHORIZED"
)

// --- Evaluate ---

// EvaluateRequest is the request body for POST /v1/evaluate.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse is the response from POST /v1/evaluate. Value is absent
// when the result is not finite; Result always holds the display form.
type EvaluateResponse struct {
	Value  *float64 `json:"value,omitempty"`
	Result string   `json:"result"`
}

// --- Sessions ---

// Session is the state of one calculator session.
type Session struct {
	ID             string `json:"id"`
	Input          string `json:"input"`
	Result         string `json:"result"`
	ResultConsumed bool   `json:"result_consumed"`
}

// PressRequest is the request body for POST /v1/sessions/:id/buttons.
type PressRequest struct {
	Button string `json:"button"`
}

// DeleteSessionResponse is the response from DELETE /v1/sessions/:id.
type DeleteSessionResponse struct {
	Success bool `json:"success"`
}
