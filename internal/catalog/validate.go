// ABOUTME: Client-side validation run before any request is sent
// ABOUTME: Messages match what the operator sees inline next to each field

package catalog

import (
	"slices"
	"strings"
)

// FieldError is a validation failure for one field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every field failure for one document
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// For returns the message for field, or ""
func (e *ValidationError) For(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

type checker struct {
	fields []FieldError
}

func (c *checker) require(field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		c.add(field, msg)
	}
}

func (c *checker) add(field, msg string) {
	c.fields = append(c.fields, FieldError{Field: field, Message: msg})
}

func (c *checker) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}

// Validate checks a brand before create or update
func (b Brand) Validate() error {
	var c checker
	c.require("name", b.Name, "Name is required")
	return c.err()
}

// Validate checks a category before create or update
func (cat Category) Validate() error {
	var c checker
	c.require("name", cat.Name, "Name is required")
	return c.err()
}

// Validate checks a size type before create
func (t SizeType) Validate() error {
	var c checker
	c.require("name", t.Name, "Name is required")
	return c.err()
}

// Validate checks a size before create or update
func (s Size) Validate() error {
	var c checker
	c.require("sizeType", s.SizeType.ID, "Size Type is required")
	c.require("label", s.Label, "Label is required")
	return c.err()
}

// Validate checks a product before create or update
func (p Product) Validate() error {
	var c checker
	c.require("name", p.Name, "Name is required")
	c.require("category", p.Category.ID, "Category is required")
	if p.Price <= 0 {
		c.add("price", "Price must be positive")
	}
	return c.err()
}

// Validate checks a stock row before create or update
func (s Stock) Validate() error {
	var c checker
	c.require("product", s.Product.ID, "Product is required")
	c.require("size", s.Size.ID, "Size is required")
	if s.Quantity < 0 {
		c.add("stockQty", "Stock must be 0 or greater")
	}
	return c.err()
}

// Validate checks a banner before create or update
func (b Banner) Validate() error {
	var c checker
	c.require("title", b.Title, "Title is required")
	c.require("image", b.Image, "Banner image is required")
	return c.err()
}

// ValidateQuantity checks a quick stock update
func ValidateQuantity(qty int) error {
	if qty < 0 {
		return &ValidationError{Fields: []FieldError{{Field: "quantity", Message: "Stock must be 0 or greater"}}}
	}
	return nil
}

// ValidateOrderStatus checks status is a known order status
func ValidateOrderStatus(status string) error {
	if !slices.Contains(OrderStatuses, status) {
		return &ValidationError{Fields: []FieldError{{
			Field:   "status",
			Message: "Status must be one of " + strings.Join(OrderStatuses, ", "),
		}}}
	}
	return nil
}
