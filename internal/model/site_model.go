package model

type Site struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	InternalCode string  `json:"internal_code,omitempty"`
	CountryID    *string `json:"country_id,omitempty"`
	CompanyID    *string `json:"company_id,omitempty"`
	City         string  `json:"city,omitempty"`
	Address      string  `json:"address,omitempty"`
}
