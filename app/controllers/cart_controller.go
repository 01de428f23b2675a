package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/htoohtoo/storefront/app/catalog"
	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/pkg/bind"
	"github.com/htoohtoo/storefront/pkg/response"
	"github.com/htoohtoo/storefront/pkg/session"
)

type CartController struct {
	manager *store.Manager
}

func NewCartController(manager *store.Manager) *CartController {
	return &CartController{manager: manager}
}

func (c *CartController) cart(r *http.Request) *store.CartStore {
	return c.manager.Get(session.FromCtx(r.Context())).Cart
}

// Show returns the session's cart with totals.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.cart(r).Snapshot())
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// AddItem puts one unit of the product in the cart.
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	var body addItemRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	product, ok := catalog.Find(body.ProductID)
	if !ok {
		response.NotFound(w)
		return
	}

	cart := c.cart(r)
	cart.Add(product)
	response.Success(w, cart.Snapshot())
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity replaces a line's quantity; zero or below removes the line.
func (c *CartController) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var body setQuantityRequest
	if _, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart := c.cart(r)
	cart.SetQuantity(chi.URLParam(r, "productID"), body.Quantity)
	response.Success(w, cart.Snapshot())
}

// RemoveItem deletes a line. Removing an absent product is not an error.
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart := c.cart(r)
	cart.Remove(chi.URLParam(r, "productID"))
	response.Success(w, cart.Snapshot())
}

// Clear empties the cart.
func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	cart := c.cart(r)
	cart.Clear()
	response.Success(w, cart.Snapshot())
}

type setOpenRequest struct {
	Open bool `json:"open"`
}

// SetOpen shows or hides the cart drawer.
func (c *CartController) SetOpen(w http.ResponseWriter, r *http.Request) {
	var body setOpenRequest
	if _, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart := c.cart(r)
	cart.SetOpen(body.Open)
	response.Success(w, cart.Snapshot())
}

// ToggleDrawer flips the drawer visibility.
func (c *CartController) ToggleDrawer(w http.ResponseWriter, r *http.Request) {
	cart := c.cart(r)
	cart.Toggle()
	response.Success(w, cart.Snapshot())
}
