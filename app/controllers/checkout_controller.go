package controllers

import (
	"errors"
	"net/http"

	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/app/services"
	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/pkg/bind"
	"github.com/htoohtoo/storefront/pkg/logger"
	"github.com/htoohtoo/storefront/pkg/response"
	"github.com/htoohtoo/storefront/pkg/session"
	"github.com/htoohtoo/storefront/pkg/validate"
)

type CheckoutController struct {
	manager  *store.Manager
	checkout *services.Checkout
}

func NewCheckoutController(manager *store.Manager, checkout *services.Checkout) *CheckoutController {
	return &CheckoutController{manager: manager, checkout: checkout}
}

// Quote prices the current cart: subtotal, shipping, tax, total.
func (c *CheckoutController) Quote(w http.ResponseWriter, r *http.Request) {
	ctr := c.manager.Get(session.FromCtx(r.Context()))
	response.Success(w, services.QuoteFor(ctr.Cart.TotalPrice()))
}

type submitRequest struct {
	Address       models.Address `json:"address"`
	PaymentMethod string         `json:"paymentMethod" validate:"required"`
}

// Submit places the order. While a submission for this session is still in
// the payment delay, further submissions return 409.
func (c *CheckoutController) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitRequest
	errs, err := bind.JSON(r, &body)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// Address is a nested struct, validated on its own.
	if errs == nil {
		errs = map[string]string{}
	}
	for field, msg := range validate.Struct(body.Address) {
		errs["address."+field] = msg
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	sessionID := session.FromCtx(r.Context())
	ctr := c.manager.Get(sessionID)

	order, err := c.checkout.Submit(sessionID, ctr, services.SubmitInput{
		Address:       body.Address,
		PaymentMethod: body.PaymentMethod,
	})
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		response.Unauthorized(w)
		return
	case errors.Is(err, services.ErrEmptyCart):
		response.Error(w, http.StatusBadRequest, "cart is empty")
		return
	case errors.Is(err, services.ErrCheckoutInProgress):
		response.Error(w, http.StatusConflict, "checkout already in progress")
		return
	case err != nil:
		logger.Error("checkout: submit failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "could not place order")
		return
	}

	response.Created(w, order)
}
