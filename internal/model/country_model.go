package model

import "time"

type Country struct {
	ID        string    `json:"id"`
	AreaID    string    `json:"area_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	NameEN    string    `json:"name_en"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Filled only when the caller asked for expansion.
	Area *Area `json:"area,omitempty"`
}
