package domain

import (
	"addressbook/internal/core/normalize"
	perr "addressbook/internal/platform/errors"
)

// FromInput builds a Contact from a validated input with normalized text fields
// names are single line, the address keeps its line breaks
// identity and phones are left for the store to own
// a field that normalizes to nothing is a validation error naming it
func FromInput(in ContactInput) (Contact, error) {
	c := Contact{
		FirstName: normalize.Line(in.FirstName),
		LastName:  normalize.Line(in.LastName),
		Address:   normalize.Block(in.Address),
	}
	for _, f := range []struct{ name, v string }{
		{"first_name", c.FirstName},
		{"last_name", c.LastName},
		{"address", c.Address},
	} {
		if f.v == "" {
			return Contact{}, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must not be blank", f.name), f.name)
		}
	}
	return c, nil
}

// ToView maps a Contact to its wire form
func ToView(c Contact) ContactView {
	phones := make([]PhoneView, 0, len(c.Phones))
	for _, p := range c.Phones {
		phones = append(phones, PhoneView{PhoneID: p.PhoneID, Number: p.Number})
	}
	return ContactView{
		ContactID: c.ContactID,
		User:      c.FullName(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Address:   c.Address,
		Phones:    phones,
	}
}

// ToViews maps a list of contacts
// nil in gives nil out so callers can tell "nothing mapped" from an empty list
func ToViews(cs []Contact) []ContactView {
	if cs == nil {
		return nil
	}
	out := make([]ContactView, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToView(c))
	}
	return out
}
