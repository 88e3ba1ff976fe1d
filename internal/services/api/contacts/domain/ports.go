package domain

import "context"

// ServicePort is the contact repository contract the transport talks to
// writes return the number of affected rows, zero means nothing matched
type ServicePort interface {
	List(ctx context.Context) ([]Contact, error)
	ByID(ctx context.Context, id int) (Contact, bool, error)
	Create(ctx context.Context, c Contact) (int, error)
	Update(ctx context.Context, id int, c Contact) (int, error)
	Delete(ctx context.Context, id int) (int, error)
}
