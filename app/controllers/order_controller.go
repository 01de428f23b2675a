package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/pkg/response"
	"github.com/htoohtoo/storefront/pkg/session"
)

type OrderController struct {
	manager *store.Manager
}

func NewOrderController(manager *store.Manager) *OrderController {
	return &OrderController{manager: manager}
}

// List returns the current identity's order history, most recent first.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	ctr := c.manager.Get(session.FromCtx(r.Context()))
	if !ctr.Auth.IsAuthenticated() {
		response.Unauthorized(w)
		return
	}
	response.Success(w, ctr.Auth.Orders())
}

// Show returns one order from the identity's own history.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	ctr := c.manager.Get(session.FromCtx(r.Context()))
	if !ctr.Auth.IsAuthenticated() {
		response.Unauthorized(w)
		return
	}

	id := chi.URLParam(r, "id")
	for _, o := range ctr.Auth.Orders() {
		if o.ID == id {
			response.Success(w, o)
			return
		}
	}
	response.NotFound(w)
}
