// Package http provides http transport for contacts
package http

import (
	"context"
	stdhttp "net/http"

	"addressbook/internal/modkit/httpkit"
	perr "addressbook/internal/platform/errors"
	"addressbook/internal/services/api/contacts/domain"
	"addressbook/internal/services/api/contacts/repo"
)

// Service is what the handlers call
type Service interface {
	domain.ServicePort
	History(ctx context.Context, id, limit int) ([]repo.Event, error)
}

// Register mounts contact endpoints on the given router
func Register(r httpkit.Router, s Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.list)
	httpkit.PostJSON[domain.ContactInput](r, "/", h.create)
	httpkit.Get(r, "/{id}", h.byID)
	httpkit.PutJSON[domain.ContactInput](r, "/{id}", h.update)
	httpkit.Delete(r, "/{id}", h.remove)
	httpkit.Get(r, "/{id}/events", h.events)
}

type handlers struct{ svc Service }

// list godoc
// @Summary List contacts
// @Description Every contact with its phones
// @Tags Contacts
// @Produce json
// @Success 200 {array} domain.ContactView "ok"
// @Failure 404 {object} httpkit.Envelope "nothing to show"
// @Router /contacts [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	cs, err := h.svc.List(r.Context())
	if err != nil {
		return nil, err
	}
	views := domain.ToViews(cs)
	if views == nil {
		return nil, perr.NotFoundf("no contacts")
	}
	return views, nil
}

// byID godoc
// @Summary Get a contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact id"
// @Success 200 {object} domain.ContactView "ok"
// @Failure 404 {object} httpkit.Envelope "no such contact"
// @Router /contacts/{id} [get]
func (h *handlers) byID(r *stdhttp.Request) (any, error) {
	id, err := httpkit.IntParam(r, "id")
	if err != nil {
		return nil, err
	}
	c, ok, err := h.svc.ByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, perr.NotFoundf("contact %d not found", id)
	}
	return domain.ToView(c), nil
}

// create godoc
// @Summary Create a contact
// @Description Phones in the body are accepted but not stored
// @Tags Contacts
// @Accept json
// @Produce json
// @Param payload body domain.ContactInput true "Contact"
// @Success 200 {object} domain.Affected "ok"
// @Router /contacts [post]
func (h *handlers) create(r *stdhttp.Request, in domain.ContactInput) (any, error) {
	c, err := domain.FromInput(in)
	if err != nil {
		return nil, err
	}
	n, err := h.svc.Create(r.Context(), c)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, perr.Newf(perr.ErrorCodeValidation, "contact was not created")
	}
	return domain.Affected{Affected: n}, nil
}

// update godoc
// @Summary Update a contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact id"
// @Param payload body domain.ContactInput true "Contact"
// @Success 200 {object} domain.Affected "ok"
// @Failure 404 {object} httpkit.Envelope "no such contact"
// @Router /contacts/{id} [put]
func (h *handlers) update(r *stdhttp.Request, in domain.ContactInput) (any, error) {
	id, err := httpkit.IntParam(r, "id")
	if err != nil {
		return nil, err
	}
	c, err := domain.FromInput(in)
	if err != nil {
		return nil, err
	}
	n, err := h.svc.Update(r.Context(), id, c)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, perr.NotFoundf("contact %d not found", id)
	}
	return domain.Affected{Affected: n}, nil
}

// remove godoc
// @Summary Delete a contact and its phones
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact id"
// @Success 200 {object} domain.Affected "ok"
// @Failure 404 {object} httpkit.Envelope "no such contact"
// @Router /contacts/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	id, err := httpkit.IntParam(r, "id")
	if err != nil {
		return nil, err
	}
	n, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, perr.NotFoundf("contact %d not found", id)
	}
	return domain.Affected{Affected: n}, nil
}

// events godoc
// @Summary Journaled writes for a contact
// @Description Newest first; empty when the journal is disabled
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact id"
// @Param limit query int false "Max events (1-200, default 50)"
// @Success 200 {array} repo.Event "ok"
// @Router /contacts/{id}/events [get]
func (h *handlers) events(r *stdhttp.Request) (any, error) {
	id, err := httpkit.IntParam(r, "id")
	if err != nil {
		return nil, err
	}
	limit, err := httpkit.IntQuery(r, "limit", 50)
	if err != nil {
		return nil, err
	}
	return h.svc.History(r.Context(), id, limit)
}
