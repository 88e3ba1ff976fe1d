package repo

import (
	"addressbook/internal/core/fold"
	"addressbook/internal/platform/store"
	"addressbook/internal/services/api/contacts/domain"
)

// Row is one line of the denormalized contact result set
// phone columns are NULL for a contact without phones
type Row struct {
	ContactID      int
	FirstName      string
	LastName       string
	Address        string
	PhoneID        *int
	PhoneContactID *int
	Number         *string
}

// scan reads the columns in the order the stored functions return them
func (r *Row) scan(s store.Row) error {
	return s.Scan(
		&r.ContactID,
		&r.FirstName,
		&r.LastName,
		&r.Address,
		&r.PhoneID,
		&r.PhoneContactID,
		&r.Number,
	)
}

type phoneKey struct{ contact, phone int }

// newFolder groups rows by contact id
// phones are appended in arrival order, once per phone id within a contact
func newFolder() *fold.Folder[Row, int, domain.Contact] {
	seen := make(map[phoneKey]struct{})
	return fold.New(
		func(r Row) int { return r.ContactID },
		func(r Row) domain.Contact {
			return domain.Contact{
				ContactID: r.ContactID,
				FirstName: r.FirstName,
				LastName:  r.LastName,
				Address:   r.Address,
				Phones:    []domain.Phone{},
			}
		},
		func(c *domain.Contact, r Row) {
			if r.PhoneID == nil {
				return
			}
			k := phoneKey{contact: c.ContactID, phone: *r.PhoneID}
			if _, dup := seen[k]; dup {
				return
			}
			seen[k] = struct{}{}

			owner := c.ContactID
			if r.PhoneContactID != nil {
				owner = *r.PhoneContactID
			}
			var number string
			if r.Number != nil {
				number = *r.Number
			}
			c.Phones = append(c.Phones, domain.Phone{PhoneID: *r.PhoneID, ContactID: owner, Number: number})
		},
	)
}
