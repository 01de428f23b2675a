// Package routes maps the HTTP surface onto controllers.
package routes

import (
	"time"

	gql "github.com/graphql-go/graphql"

	"github.com/htoohtoo/storefront/app/controllers"
	"github.com/htoohtoo/storefront/app/models"
	"github.com/htoohtoo/storefront/app/services"
	"github.com/htoohtoo/storefront/app/store"
	"github.com/htoohtoo/storefront/pkg/graphql"
	"github.com/htoohtoo/storefront/pkg/metrics"
	"github.com/htoohtoo/storefront/pkg/middleware"
	"github.com/htoohtoo/storefront/pkg/rbac"
	"github.com/htoohtoo/storefront/pkg/router"
	"github.com/htoohtoo/storefront/pkg/ws"
)

// Deps carries the shared state the controllers close over.
type Deps struct {
	Manager  *store.Manager
	Ledger   *store.Ledger
	Checkout *services.Checkout
	Hub      *ws.Hub
	Schema   gql.Schema
}

// RegisterAPI wires every route. Session and logging middleware are applied
// by the server before the router runs.
func RegisterAPI(r *router.Router, deps Deps) {
	authCtl := controllers.NewAuthController(deps.Manager)
	catalogCtl := controllers.NewCatalogController()
	cartCtl := controllers.NewCartController(deps.Manager)
	checkoutCtl := controllers.NewCheckoutController(deps.Manager, deps.Checkout)
	orderCtl := controllers.NewOrderController(deps.Manager)
	adminCtl := controllers.NewAdminController(deps.Manager, deps.Ledger)
	mediaCtl := controllers.NewMediaController()

	api := r.Group("/api")

	// Credential endpoints get a per-IP rate limit.
	credLimit := middleware.RateLimit(10, time.Minute)
	api.Post("/auth/login", "auth.login", authCtl.Login, credLimit)
	api.Post("/auth/register", "auth.register", authCtl.Register, credLimit)
	api.Post("/auth/logout", "auth.logout", authCtl.Logout)
	api.Get("/auth/me", "auth.me", authCtl.Me)
	api.Patch("/auth/profile", "auth.profile", authCtl.UpdateProfile)

	api.Get("/products", "catalog.products", catalogCtl.Products)
	api.Get("/products/featured", "catalog.featured", catalogCtl.Featured)
	api.Get("/products/{id}", "catalog.product", catalogCtl.Product)
	api.Get("/categories", "catalog.categories", catalogCtl.Categories)

	api.Get("/cart", "cart.show", cartCtl.Show)
	api.Post("/cart/items", "cart.add", cartCtl.AddItem)
	api.Put("/cart/items/{productID}", "cart.quantity", cartCtl.SetQuantity)
	api.Delete("/cart/items/{productID}", "cart.remove", cartCtl.RemoveItem)
	api.Delete("/cart", "cart.clear", cartCtl.Clear)
	api.Post("/cart/drawer", "cart.drawer", cartCtl.SetOpen)
	api.Post("/cart/drawer/toggle", "cart.drawer.toggle", cartCtl.ToggleDrawer)

	api.Get("/checkout/quote", "checkout.quote", checkoutCtl.Quote)
	api.Post("/checkout", "checkout.submit", checkoutCtl.Submit)

	api.Get("/orders", "orders.list", orderCtl.List)
	api.Get("/orders/{id}", "orders.show", orderCtl.Show)

	gqlHandler := graphql.Handler(deps.Schema)
	api.Get("/graphql", "graphql.get", gqlHandler)
	api.Post("/graphql", "graphql.post", gqlHandler)

	admin := api.Group("/admin", middleware.Auth, rbac.HasRole(models.RoleAdmin))
	admin.Get("/orders", "admin.orders", adminCtl.Orders)
	admin.Get("/orders/{id}", "admin.order", adminCtl.Order)
	admin.Patch("/orders/{id}/status", "admin.order.status", adminCtl.SetStatus)
	admin.Get("/users", "admin.users", adminCtl.Users)
	admin.Get("/stats", "admin.stats", adminCtl.Stats)
	admin.Post("/products/{id}/image", "admin.product.image", mediaCtl.UploadProductImage)

	r.Get("/storage/*", "media.show", mediaCtl.Show)
	r.Get("/ws/orders", "ws.orders", deps.Hub.ServeHTTP)
	r.Get("/metrics", "metrics", metrics.Handler().ServeHTTP)
}
