// ABOUTME: Generic list/get/create/patch/delete handlers for a collection
// ABOUTME: Reference fields come back populated with the target's name or label

package handlers

import (
	"net/http"

	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/models"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/store"
)

// cascades lists the reference fields to clear out when a document in the
// keyed collection is deleted: stock rows go with their product or size
var cascades = map[string][]string{
	models.Products: {"product"},
	models.Sizes:    {"size"},
}

// matcher builds the list filter for a request's query string
func matcher(s models.Schema, r *http.Request) func(store.Document) bool {
	q := r.URL.Query()
	activeOnly := s.ActiveFilter && q.Get("activeOnly") == "true"

	type cond struct{ field, value string }
	var conds []cond
	for _, f := range s.Filters {
		if v := q.Get(f.Param); v != "" {
			conds = append(conds, cond{f.Field, v})
		}
	}

	if !activeOnly && len(conds) == 0 {
		return nil
	}
	return func(d store.Document) bool {
		if activeOnly {
			if active, ok := d["isActive"].(bool); ok && !active {
				return false
			}
		}
		for _, c := range conds {
			if refID(d[c.field]) != c.value {
				return false
			}
		}
		return true
	}
}

// refID returns the id a reference field holds, populated or not
func refID(v any) string {
	switch ref := v.(type) {
	case string:
		return ref
	case map[string]any:
		id, _ := ref["_id"].(string)
		return id
	}
	return ""
}

// populate replaces bare reference ids with {_id, name|label} objects.
// Dangling references are left as the bare id.
func (h *Handler) populate(s models.Schema, d store.Document) store.Document {
	for field, rs := range s.Refs {
		id, ok := d[field].(string)
		if !ok || id == "" {
			continue
		}
		target, found := h.store.Get(rs.Collection, id)
		if !found {
			continue
		}
		d[field] = map[string]any{"_id": id, rs.Display: target[rs.Display]}
	}
	return d
}

func (h *Handler) listDocuments(s models.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		docs := h.store.List(s.Name, matcher(s, r))
		for i := range docs {
			docs[i] = h.populate(s, docs[i])
		}
		h.writeJSON(w, http.StatusOK, docs)
	}
}

func (h *Handler) getDocument(s models.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := h.store.Get(s.Name, r.PathValue("id"))
		if !ok {
			h.writeError(w, notFound(s.Name), http.StatusNotFound)
			return
		}
		h.writeJSON(w, http.StatusOK, h.populate(s, d))
	}
}

func (h *Handler) createDocument(s models.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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
		h.writeJSON(w, http.StatusCreated, h.populate(s, h.store.Insert(s.Name, doc)))
	}
}

func (h *Handler) patchDocument(s models.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var fields store.Document
		if !h.decodeBody(w, r, &fields) {
			return
		}
		if h.validationFailed(w, s.Validate(fields, true)) {
			return
		}
		if msg := h.danglingRef(s, fields); msg != "" {
			h.writeError(w, msg, http.StatusBadRequest)
			return
		}
		d, ok := h.store.Patch(s.Name, r.PathValue("id"), fields)
		if !ok {
			h.writeError(w, notFound(s.Name), http.StatusNotFound)
			return
		}
		h.writeJSON(w, http.StatusOK, h.populate(s, d))
	}
}

func (h *Handler) deleteDocument(s models.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if !h.store.Delete(s.Name, id) {
			h.writeError(w, notFound(s.Name), http.StatusNotFound)
			return
		}
		for _, field := range cascades[s.Name] {
			for _, row := range h.store.List(models.Stock, func(d store.Document) bool { return refID(d[field]) == id }) {
				h.store.Delete(models.Stock, row.ID())
			}
		}
		h.writeJSON(w, http.StatusOK, map[string]string{"message": "Deleted successfully"})
	}
}

// danglingRef names the first reference field pointing at nothing
func (h *Handler) danglingRef(s models.Schema, doc store.Document) string {
	for field, rs := range s.Refs {
		id, ok := doc[field].(string)
		if !ok || id == "" {
			continue
		}
		if _, found := h.store.Get(rs.Collection, id); !found {
			return "Unknown " + field + " " + id
		}
	}
	return ""
}

func notFound(collection string) string {
	return "Not found in " + collection
}
