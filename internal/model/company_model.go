package model

type Company struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	CountryID *string `json:"country_id,omitempty"`
}
