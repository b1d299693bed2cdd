package dto

// ErrorResponse is the body of every failed request.
// Errors is either a message string or a map of field name to messages.
type ErrorResponse struct {
	Errors any `json:"errors" swaggertype:"object"`
}
