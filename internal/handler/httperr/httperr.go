package httperr

// Response is the error body every endpoint returns.
type Response struct {
	Error string `json:"error"`
}
