package model

type Language struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
