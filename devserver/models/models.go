// ABOUTME: Collection schemas and shared response types for the catalog API
// ABOUTME: Schemas drive validation, reference population, and list filters

package models

import (
	"math"
	"slices"
	"strings"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports liveness and document counts
type HealthResponse struct {
	Status      string         `json:"status"`
	Collections map[string]int `json:"collections"`
}

// Order statuses in workflow order
var OrderStatuses = []string{"pending", "confirmed", "shipped", "cancelled"}

// RefSpec says which collection a reference field points into and which
// field of the target names it
type RefSpec struct {
	Collection string
	Display    string
}

// Filter maps a query parameter onto a document field
type Filter struct {
	Param string
	Field string
}

// Schema describes one document collection
type Schema struct {
	Name     string // collection name and route segment
	Required map[string]string
	Refs     map[string]RefSpec
	Filters  []Filter
	// ActiveFilter enables ?activeOnly=true
	ActiveFilter bool
	Check        func(doc map[string]any, partial bool) []string
}

// Collection names
const (
	Brands     = "brands"
	Categories = "categories"
	SizeTypes  = "sizeTypes"
	Sizes      = "sizes"
	Products   = "products"
	Stock      = "stock"
	Orders     = "orders"
	Banners    = "banners"
)

// Schemas lists every collection served under /<name>
var Schemas = []Schema{
	{
		Name:         Brands,
		Required:     map[string]string{"name": "Name is required"},
		ActiveFilter: true,
	},
	{
		Name:         Categories,
		Required:     map[string]string{"name": "Name is required"},
		Refs:         map[string]RefSpec{"parent": {Collection: Categories, Display: "name"}},
		ActiveFilter: true,
	},
	{
		Name:     Sizes,
		Required: map[string]string{"sizeType": "Size Type is required", "label": "Label is required"},
		Refs:     map[string]RefSpec{"sizeType": {Collection: SizeTypes, Display: "name"}},
		Filters:  []Filter{{Param: "sizeTypeId", Field: "sizeType"}},
	},
	{
		Name:     Products,
		Required: map[string]string{"name": "Name is required", "category": "Category is required"},
		Refs: map[string]RefSpec{
			"category": {Collection: Categories, Display: "name"},
			"brand":    {Collection: Brands, Display: "name"},
		},
		Filters:      []Filter{{Param: "categoryId", Field: "category"}},
		ActiveFilter: true,
		Check:        checkProduct,
	},
	{
		Name:     Stock,
		Required: map[string]string{"product": "Product is required", "size": "Size is required"},
		Refs: map[string]RefSpec{
			"product": {Collection: Products, Display: "name"},
			"size":    {Collection: Sizes, Display: "label"},
		},
		Filters: []Filter{{Param: "productId", Field: "product"}},
		Check:   checkStock,
	},
	{
		Name:    Orders,
		Filters: []Filter{{Param: "status", Field: "status"}},
		Check:   checkOrder,
	},
	{
		Name:     Banners,
		Required: map[string]string{"title": "Title is required", "image": "Banner image is required"},
	},
}

// SizeTypeSchema is served under /sizes/types rather than its own segment
var SizeTypeSchema = Schema{
	Name:     SizeTypes,
	Required: map[string]string{"name": "Name is required"},
}

// Validate returns the failure messages for doc. A partial document (a
// PATCH body) only has the fields it carries checked.
func (s Schema) Validate(doc map[string]any, partial bool) []string {
	var msgs []string
	fields := make([]string, 0, len(s.Required))
	for f := range s.Required {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	for _, f := range fields {
		v, present := doc[f]
		if partial && !present {
			continue
		}
		if str, ok := v.(string); !ok || strings.TrimSpace(str) == "" {
			msgs = append(msgs, s.Required[f])
		}
	}
	if s.Check != nil {
		msgs = append(msgs, s.Check(doc, partial)...)
	}
	return msgs
}

func checkProduct(doc map[string]any, partial bool) []string {
	v, present := doc["price"]
	if partial && !present {
		return nil
	}
	if price, ok := v.(float64); !ok || price <= 0 {
		return []string{"Price must be positive"}
	}
	return nil
}

func checkStock(doc map[string]any, partial bool) []string {
	v, present := doc["stockQty"]
	if !present {
		if partial {
			return nil
		}
		doc["stockQty"] = float64(0)
		return nil
	}
	if !IsQuantity(v) {
		return []string{"Stock must be 0 or greater"}
	}
	return nil
}

func checkOrder(doc map[string]any, partial bool) []string {
	v, present := doc["status"]
	if !present {
		if !partial {
			doc["status"] = OrderStatuses[0]
		}
		return nil
	}
	if s, ok := v.(string); !ok || !slices.Contains(OrderStatuses, s) {
		return []string{"Status must be one of " + strings.Join(OrderStatuses, ", ")}
	}
	return nil
}

// IsQuantity reports whether v is a whole JSON number of at least zero
func IsQuantity(v any) bool {
	n, ok := v.(float64)
	return ok && n >= 0 && n == math.Trunc(n)
}
