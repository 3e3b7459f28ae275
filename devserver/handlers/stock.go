// ABOUTME: Stock handlers addressed by product and size
// ABOUTME: One row per pair; the quick update creates the row on first write

package handlers

import (
	"net/http"

	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/models"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/store"
)

func stockSchema() models.Schema {
	for _, s := range models.Schemas {
		if s.Name == models.Stock {
			return s
		}
	}
	panic("stock schema missing")
}

func samePair(productID, sizeID string) func(store.Document) bool {
	return func(d store.Document) bool {
		return refID(d["product"]) == productID && refID(d["size"]) == sizeID
	}
}

// CreateStock adds a row, refusing a second row for the same product and size
func (h *Handler) CreateStock(w http.ResponseWriter, r *http.Request) {
	s := stockSchema()
	var doc store.Document
	if !h.decodeBody(w, r, &doc) {
		return
	}
	if doc == nil {
		doc = store.Document{}
	}
	delete(doc, "_id")
	if h.validationFailed(w, s.Validate(doc, false)) {
		return
	}
	if msg := h.danglingRef(s, doc); msg != "" {
		h.writeError(w, msg, http.StatusBadRequest)
		return
	}
	if _, exists := h.store.FindOne(models.Stock, samePair(doc.String("product"), doc.String("size"))); exists {
		h.writeError(w, "Stock already exists for this product and size", http.StatusConflict)
		return
	}
	h.writeJSON(w, http.StatusCreated, h.populate(s, h.store.Insert(models.Stock, doc)))
}

// StockForProductSize returns the row for one product and size
func (h *Handler) StockForProductSize(w http.ResponseWriter, r *http.Request) {
	d, ok := h.store.FindOne(models.Stock, samePair(r.PathValue("product"), r.PathValue("size")))
	if !ok {
		h.writeError(w, "No stock for this product and size", http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, h.populate(stockSchema(), d))
}

// SetStockForProductSize sets the quantity for one product and size,
// creating the row when it does not exist yet
func (h *Handler) SetStockForProductSize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity any `json:"quantity"`
	}
	if !h.decodeBody(w, r, &req) {
		return
	}
	if !models.IsQuantity(req.Quantity) {
		h.writeError(w, "Stock must be 0 or greater", http.StatusBadRequest)
		return
	}

	productID, sizeID := r.PathValue("product"), r.PathValue("size")
	s := stockSchema()
	if msg := h.danglingRef(s, store.Document{"product": productID, "size": sizeID}); msg != "" {
		h.writeError(w, msg, http.StatusNotFound)
		return
	}

	d, _ := h.store.Upsert(models.Stock, samePair(productID, sizeID), store.Document{
		"product":  productID,
		"size":     sizeID,
		"stockQty": req.Quantity,
	})
	h.writeJSON(w, http.StatusOK, h.populate(s, d))
}
