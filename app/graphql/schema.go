// Package graphql defines the catalog query schema. The catalog is
// read-only, so there are no mutations.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/htoohtoo/storefront/app/catalog"
	"github.com/htoohtoo/storefront/app/models"
)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float), Resolve: priceOf},
		"originalPrice": &graphql.Field{
			Type: graphql.Float,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				prod := p.Source.(models.Product)
				if prod.OriginalPrice == nil {
					return nil, nil
				}
				return prod.OriginalPrice.InexactFloat64(), nil
			},
		},
		"category":    &graphql.Field{Type: graphql.String},
		"rating":      &graphql.Field{Type: graphql.Float},
		"reviewCount": &graphql.Field{Type: graphql.Int},
		"description": &graphql.Field{Type: graphql.String},
		"inStock":     &graphql.Field{Type: graphql.Boolean},
		"tags":        &graphql.Field{Type: graphql.NewList(graphql.String)},
		"image":       &graphql.Field{Type: graphql.String},
		"unit":        &graphql.Field{Type: graphql.String},
	},
})

func priceOf(p graphql.ResolveParams) (any, error) {
	return p.Source.(models.Product).Price.InexactFloat64(), nil
}

var categoryType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Category",
	Fields: graphql.Fields{
		"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"image": &graphql.Field{Type: graphql.String},
	},
})

// NewSchema builds the catalog query schema.
func NewSchema() (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"minPrice": &graphql.ArgumentConfig{Type: graphql.Float},
					"maxPrice": &graphql.ArgumentConfig{Type: graphql.Float},
					"sort":     &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					q := catalog.Query{}
					if v, ok := p.Args["search"].(string); ok {
						q.Term = v
					}
					if v, ok := p.Args["category"].(string); ok {
						q.Category = v
					}
					if v, ok := p.Args["minPrice"].(float64); ok {
						q.MinPrice = v
					}
					if v, ok := p.Args["maxPrice"].(float64); ok {
						q.MaxPrice = v
					}
					if v, ok := p.Args["sort"].(string); ok {
						q.Sort = v
					}
					return catalog.Search(q), nil
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					prod, ok := catalog.Find(p.Args["id"].(string))
					if !ok {
						return nil, nil
					}
					return prod, nil
				},
			},
			"featured": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(graphql.ResolveParams) (any, error) {
					return catalog.Featured(), nil
				},
			},
			"categories": &graphql.Field{
				Type: graphql.NewList(categoryType),
				Resolve: func(graphql.ResolveParams) (any, error) {
					return catalog.Categories(), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}
