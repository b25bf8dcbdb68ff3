package domain

// Need is one entry in the cupboard catalog.
type Need struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Quantity    int    `json:"quantity"`
	Type        string `json:"type"`
	Description string `json:"description"`
}
