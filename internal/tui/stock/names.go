// ABOUTME: Fills in product and size names on stock rows
// ABOUTME: The API may return references as bare ids

package stock

import "github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"

// Resolve returns rows with unpopulated product and size references named
// from products and sizes. Unknown ids are left as they are.
func Resolve(rows []catalog.Stock, products []catalog.Product, sizes []catalog.Size) []catalog.Stock {
	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	sizeLabels := make(map[string]string, len(sizes))
	for _, s := range sizes {
		sizeLabels[s.ID] = s.Label
	}

	out := make([]catalog.Stock, len(rows))
	for i, r := range rows {
		if r.Product.Name == "" {
			r.Product.Name = productNames[r.Product.ID]
		}
		if r.Size.Label == "" && r.Size.Name == "" {
			r.Size.Label = sizeLabels[r.Size.ID]
		}
		out[i] = r
	}
	return out
}
