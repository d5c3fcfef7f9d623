package response

// Resp is the standard JSON response body.
// Successful responses carry Data; failed responses carry Error.
type Resp struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
