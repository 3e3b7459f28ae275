// ABOUTME: Handlers for the sub-resources hanging off categories and products
// ABOUTME: Size types, category size-type links, and product image lists

package handlers

import (
	"net/http"
	"slices"

	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/models"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/store"
)

// CategorySizeTypes lists the size types linked to a category
func (h *Handler) CategorySizeTypes(w http.ResponseWriter, r *http.Request) {
	cat, ok := h.store.Get(models.Categories, r.PathValue("id"))
	if !ok {
		h.writeError(w, notFound(models.Categories), http.StatusNotFound)
		return
	}

	out := []store.Document{}
	for _, id := range stringList(cat["sizeTypes"]) {
		if st, found := h.store.Get(models.SizeTypes, id); found {
			out = append(out, st)
		}
	}
	h.writeJSON(w, http.StatusOK, out)
}

// AddCategorySizeType links a size type to a category. Linking twice is a no-op.
func (h *Handler) AddCategorySizeType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SizeTypeID string `json:"sizeTypeId"`
	}
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.SizeTypeID == "" {
		h.writeError(w, "Size Type is required", http.StatusBadRequest)
		return
	}
	if _, found := h.store.Get(models.SizeTypes, req.SizeTypeID); !found {
		h.writeError(w, notFound(models.SizeTypes), http.StatusNotFound)
		return
	}

	id := r.PathValue("id")
	cat, ok := h.store.Get(models.Categories, id)
	if !ok {
		h.writeError(w, notFound(models.Categories), http.StatusNotFound)
		return
	}
	linked := stringList(cat["sizeTypes"])
	if !slices.Contains(linked, req.SizeTypeID) {
		linked = append(linked, req.SizeTypeID)
	}
	cat, _ = h.store.Patch(models.Categories, id, store.Document{"sizeTypes": linked})
	h.writeJSON(w, http.StatusOK, cat)
}

// AddProductImage appends an image URL to a product
func (h *Handler) AddProductImage(w http.ResponseWriter, r *http.Request) {
	h.editImages(w, r, func(images []string, url string) []string {
		if slices.Contains(images, url) {
			return images
		}
		return append(images, url)
	})
}

// RemoveProductImage drops an image URL from a product
func (h *Handler) RemoveProductImage(w http.ResponseWriter, r *http.Request) {
	h.editImages(w, r, func(images []string, url string) []string {
		return slices.DeleteFunc(images, func(s string) bool { return s == url })
	})
}

func (h *Handler) editImages(w http.ResponseWriter, r *http.Request, edit func([]string, string) []string) {
	var req struct {
		ImageURL string `json:"imageUrl"`
	}
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.ImageURL == "" {
		h.writeError(w, "Image URL is required", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")
	p, ok := h.store.Get(models.Products, id)
	if !ok {
		h.writeError(w, notFound(models.Products), http.StatusNotFound)
		return
	}
	images := edit(stringList(p["images"]), req.ImageURL)
	p, _ = h.store.Patch(models.Products, id, store.Document{"images": images})
	h.writeJSON(w, http.StatusOK, p)
}

// stringList reads a JSON array of strings, skipping anything else
func stringList(v any) []string {
	var out []string
	switch list := v.(type) {
	case []string:
		out = append(out, list...)
	case []any:
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}
