package models

// ErrorResponse is the standard single-message error body
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries every failed validation rule for a request
type ValidationErrorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages"`
}

// DeleteResponse confirms a deletion and echoes the removed item
type DeleteResponse struct {
	Message string   `json:"message"`
	Item    MenuItem `json:"item"`
}

// Fixed client-facing messages
const (
	MsgMenuItemNotFound    = "Menu item not found"
	MsgValidationFailed    = "Validation failed"
	MsgMenuItemDeleted     = "Menu item deleted"
	MsgInternalServerError = "Internal Server Error"
)

// NewNotFoundResponse builds the body returned whenever a path id matches no item
func NewNotFoundResponse() ErrorResponse {
	return ErrorResponse{Error: MsgMenuItemNotFound}
}

// NewValidationErrorResponse wraps the collected rule messages
func NewValidationErrorResponse(messages []string) ValidationErrorResponse {
	return ValidationErrorResponse{Error: MsgValidationFailed, Messages: messages}
}
