package request_models

type SelectionRequest struct {
	Interests []string `json:"interests"`
	Company   string   `json:"company"`
	Template  string   `json:"template"`
}

type ToggleSuggestionRequest struct {
	// Date defaults to today when empty.
	Date string `json:"date"`
}
