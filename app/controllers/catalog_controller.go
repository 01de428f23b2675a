package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/htoohtoo/storefront/app/catalog"
	"github.com/htoohtoo/storefront/pkg/response"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController { return &CatalogController{} }

// Products lists the catalog, filtered and sorted by query parameters.
func (c *CatalogController) Products(w http.ResponseWriter, r *http.Request) {
	qp := r.URL.Query()
	q := catalog.Query{
		Term:     qp.Get("search"),
		Category: qp.Get("category"),
		Sort:     qp.Get("sort"),
	}
	if v, err := strconv.ParseFloat(qp.Get("min_price"), 64); err == nil {
		q.MinPrice = v
	}
	if v, err := strconv.ParseFloat(qp.Get("max_price"), 64); err == nil {
		q.MaxPrice = v
	}

	response.Success(w, catalog.Search(q))
}

func (c *CatalogController) Product(w http.ResponseWriter, r *http.Request) {
	p, ok := catalog.Find(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, p)
}

func (c *CatalogController) Featured(w http.ResponseWriter, r *http.Request) {
	response.Success(w, catalog.Featured())
}

func (c *CatalogController) Categories(w http.ResponseWriter, r *http.Request) {
	response.Success(w, catalog.Categories())
}
