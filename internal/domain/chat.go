package domain

// ChatPersonality is a selectable persona for the help-bot chat. The
// description is the primer message sent to the model when a chat starts.
type ChatPersonality struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
