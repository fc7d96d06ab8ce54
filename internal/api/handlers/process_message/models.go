package process_message

// ProcessMessageRequest HTTP request model
type ProcessMessageRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}
