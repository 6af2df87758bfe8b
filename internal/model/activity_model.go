package model

type Activity struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}
