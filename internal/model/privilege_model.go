package model

type Privilege struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UserPrivilege links a user to a privilege.
type UserPrivilege struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	PrivilegeID string `json:"privilege_id"`
}
