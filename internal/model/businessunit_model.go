package model

type BusinessUnit struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ActivityID  *string `json:"activity_id,omitempty"`
}
