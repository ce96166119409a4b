package errors

// ErrorResponse is the error response body for rejected trigger requests.
// Info carries the fixed human-readable summary; Details the per-request
// rejection reason.
type ErrorResponse struct {
	Info    string `json:"info"`
	Details string `json:"details,omitempty"`
}
