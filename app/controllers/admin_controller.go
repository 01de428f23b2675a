package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/htoohtoo/storefront/app/catalog"
	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/pkg/bind"
	"github.com/htoohtoo/storefront/pkg/event"
	"github.com/htoohtoo/storefront/pkg/response"
)

// EventOrderStatusChanged fires when an admin moves an order's status.
const EventOrderStatusChanged = "order.status_changed"

// OrderStatusChanged is the EventOrderStatusChanged payload.
type OrderStatusChanged struct {
	OrderID string             `json:"orderId"`
	Status  models.OrderStatus `json:"status"`
}

// AdminController serves the back-office view: all orders across sessions,
// the account list and a few headline numbers. Routes using it sit behind
// the admin role guard.
type AdminController struct {
	manager *store.Manager
	ledger  *store.Ledger
}

func NewAdminController(manager *store.Manager, ledger *store.Ledger) *AdminController {
	return &AdminController{manager: manager, ledger: ledger}
}

// Orders lists every order placed on the server, most recent first.
func (c *AdminController) Orders(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.ledger.All())
}

// Order returns one order by id.
func (c *AdminController) Order(w http.ResponseWriter, r *http.Request) {
	o, ok := c.ledger.Find(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, o)
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,in=pending,processing,shipped,delivered,cancelled"`
}

// SetStatus moves an order to a new status and announces the change.
func (c *AdminController) SetStatus(w http.ResponseWriter, r *http.Request) {
	var body setStatusRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	} else if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	id := chi.URLParam(r, "id")
	status := models.OrderStatus(body.Status)
	if !c.ledger.SetStatus(id, status) {
		response.NotFound(w)
		return
	}

	event.Fire(EventOrderStatusChanged, OrderStatusChanged{OrderID: id, Status: status})

	o, _ := c.ledger.Find(id)
	response.Success(w, o)
}

// Users lists the known accounts, public fields only.
func (c *AdminController) Users(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.manager.Accounts().Users())
}

// Stats returns the dashboard headline numbers.
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	orders := c.ledger.All()

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
	}

	response.Success(w, map[string]any{
		"orders":   len(orders),
		"revenue":  revenue.StringFixed(2),
		"users":    len(c.manager.Accounts().Users()),
		"products": len(catalog.Products()),
		"sessions": c.manager.Count(),
	})
}
