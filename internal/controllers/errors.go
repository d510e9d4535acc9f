package controllers

// Тексты ошибок в ответах API.
const (
	MsgFetchFailed      = "Error fetching URL shorteners"
	MsgInvalidInput     = "Invalid input"
	MsgSlugExists       = "Custom slug already exists"
	MsgInternal         = "Internal server error"
	MsgRecordNotFound   = "URL shortener record not found"
	MsgInvalidID        = "Invalid URL shortener ID"
	MsgShortURLNotFound = "Short URL not found"
	MsgShortURLExpired  = "This short URL has expired"
	MsgRedirectFailed   = "Server error during redirect"
	MsgStoreUnavailable = "Storage is unavailable"
)

// errorResponse тело ответа с ошибкой.
type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
