package domain

// ContactInput is the body for creating or updating a contact
// phones are accepted for symmetry with ContactView but never written
type ContactInput struct {
	FirstName string       `json:"first_name" validate:"required,notblank,max=100" example:"Ada"`
	LastName  string       `json:"last_name" validate:"required,notblank,max=100" example:"Lovelace"`
	Address   string       `json:"address" validate:"required,notblank,max=500" example:"12 St James's Square, London"`
	Phones    []PhoneInput `json:"phones,omitempty" validate:"omitempty,max=20,dive"`
}

// PhoneInput is a phone number as sent by clients
type PhoneInput struct {
	PhoneID int    `json:"phone_id,omitempty" validate:"omitempty,min=1"`
	Number  string `json:"number" validate:"omitempty,max=32" example:"555-0100"`
}

// ContactView is a contact as returned by the API
type ContactView struct {
	ContactID int         `json:"contact_id" example:"1"`
	User      string      `json:"user" example:"Ada Lovelace"`
	FirstName string      `json:"first_name" example:"Ada"`
	LastName  string      `json:"last_name" example:"Lovelace"`
	Address   string      `json:"address" example:"12 St James's Square, London"`
	Phones    []PhoneView `json:"phones"`
}

// PhoneView is a phone as returned by the API
type PhoneView struct {
	PhoneID int    `json:"phone_id" example:"10"`
	Number  string `json:"number" example:"555-0100"`
}

// Affected reports how many rows a write touched
type Affected struct {
	Affected int `json:"affected" example:"1"`
}
