// Package domain holds the contact model, its wire DTOs and the mapping between them
package domain

import "slices"

// Phone is a number owned by exactly one contact
type Phone struct {
	PhoneID   int
	ContactID int
	Number    string
}

// Contact is a person in the address book with the phones folded from its rows
// Phones keeps first-seen order and is never nil on values built by the repo
type Contact struct {
	ContactID int
	FirstName string
	LastName  string
	Address   string
	Phones    []Phone
}

// Equal reports structural equality including identity and the phone list
func (c Contact) Equal(o Contact) bool {
	return c.ContactID == o.ContactID &&
		c.FirstName == o.FirstName &&
		c.LastName == o.LastName &&
		c.Address == o.Address &&
		slices.Equal(c.Phones, o.Phones)
}

// FullName joins first and last name the way views present it
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}
