// ABOUTME: Add and edit forms for catalog resources described as field schemas
// ABOUTME: Turns raw values from CLI flags or TUI inputs into validated documents

package catalog

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// FieldKind says how a raw field value is parsed
type FieldKind int

const (
	KindText FieldKind = iota
	KindRef
	KindNumber
	KindInteger
	KindFlag
)

// Field is one input of a resource form
type Field struct {
	Key        string // flag name and form key
	Label      string
	Kind       FieldKind
	RefTo      string // collection a KindRef field points at
	Required   bool
	CreateOnly bool // fixed once the document exists
}

// Saved is the document returned by a create or update
type Saved struct {
	ID  string
	Doc any
}

// Editor creates and updates documents of one resource from raw values.
// Only keys present in values are applied. An update starts from the stored
// document, so absent keys keep their current value.
type Editor interface {
	Resource() string
	Fields() []Field
	Current(ctx context.Context, id string) (map[string]string, error)
	Create(ctx context.Context, values map[string]string) (Saved, error)
	Update(ctx context.Context, id string, values map[string]string) (Saved, error)
}

type binding[T any] struct {
	Field
	get func(*T) string
	set func(*T, string) error
}

type docEditor[T any] struct {
	resource string
	bindings []binding[T]
	id       func(T) string
	load     func(ctx context.Context, id string) (T, error)
	create   func(ctx context.Context, doc T) (T, error)
	update   func(ctx context.Context, id string, doc T) (T, error)
}

func (e *docEditor[T]) Resource() string { return e.resource }

func (e *docEditor[T]) Fields() []Field {
	fields := make([]Field, len(e.bindings))
	for i, b := range e.bindings {
		fields[i] = b.Field
	}
	return fields
}

// Current returns the stored document as raw values, for prefilling a form
func (e *docEditor[T]) Current(ctx context.Context, id string) (map[string]string, error) {
	doc, err := e.load(ctx, id)
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(e.bindings))
	for _, b := range e.bindings {
		values[b.Key] = b.get(&doc)
	}
	return values, nil
}

func (e *docEditor[T]) Create(ctx context.Context, values map[string]string) (Saved, error) {
	if err := e.check(values, false); err != nil {
		return Saved{}, err
	}
	var doc T
	if err := e.apply(&doc, values); err != nil {
		return Saved{}, err
	}
	saved, err := e.create(ctx, doc)
	if err != nil {
		return Saved{}, err
	}
	return Saved{ID: e.id(saved), Doc: saved}, nil
}

func (e *docEditor[T]) Update(ctx context.Context, id string, values map[string]string) (Saved, error) {
	if len(values) == 0 {
		return Saved{}, &ValidationError{Fields: []FieldError{{Message: "Nothing to update: set at least one field"}}}
	}
	if err := e.check(values, true); err != nil {
		return Saved{}, err
	}
	doc, err := e.load(ctx, id)
	if err != nil {
		return Saved{}, err
	}
	if err := e.apply(&doc, values); err != nil {
		return Saved{}, err
	}
	saved, err := e.update(ctx, id, doc)
	if err != nil {
		return Saved{}, err
	}
	return Saved{ID: e.id(saved), Doc: saved}, nil
}

// check rejects unknown keys, and fixed fields on update, before any request
func (e *docEditor[T]) check(values map[string]string, updating bool) error {
	var c checker
	for _, key := range slices.Sorted(maps.Keys(values)) {
		i := slices.IndexFunc(e.bindings, func(b binding[T]) bool { return b.Key == key })
		switch {
		case i < 0:
			c.add(key, "Unknown field "+key)
		case updating && e.bindings[i].CreateOnly:
			c.add(key, e.bindings[i].Label+" cannot be changed")
		}
	}
	return c.err()
}

func (e *docEditor[T]) apply(doc *T, values map[string]string) error {
	var c checker
	for _, b := range e.bindings {
		raw, ok := values[b.Key]
		if !ok {
			continue
		}
		if err := b.set(doc, strings.TrimSpace(raw)); err != nil {
			c.add(b.Key, err.Error())
		}
	}
	return c.err()
}

func textField[T any](f Field, at func(*T) *string) binding[T] {
	f.Kind = KindText
	return binding[T]{
		Field: f,
		get:   func(d *T) string { return *at(d) },
		set: func(d *T, raw string) error {
			*at(d) = raw
			return nil
		},
	}
}

func refField[T any](f Field, at func(*T) *Ref) binding[T] {
	f.Kind = KindRef
	return binding[T]{
		Field: f,
		get:   func(d *T) string { return at(d).ID },
		set: func(d *T, raw string) error {
			*at(d) = RefTo(raw)
			return nil
		},
	}
}

// optRefField clears the reference when given an empty value
func optRefField[T any](f Field, at func(*T) **Ref) binding[T] {
	f.Kind = KindRef
	return binding[T]{
		Field: f,
		get: func(d *T) string {
			if r := *at(d); r != nil {
				return r.ID
			}
			return ""
		},
		set: func(d *T, raw string) error {
			r := RefTo(raw)
			*at(d) = &r
			return nil
		},
	}
}

func numberField[T any](f Field, at func(*T) *float64) binding[T] {
	f.Kind = KindNumber
	return binding[T]{
		Field: f,
		get:   func(d *T) string { return formatNumber(*at(d)) },
		set: func(d *T, raw string) error {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("%s must be a number", f.Label)
			}
			*at(d) = v
			return nil
		},
	}
}

func optNumberField[T any](f Field, at func(*T) **float64) binding[T] {
	f.Kind = KindNumber
	return binding[T]{
		Field: f,
		get: func(d *T) string {
			if v := *at(d); v != nil {
				return formatNumber(*v)
			}
			return ""
		},
		set: func(d *T, raw string) error {
			if raw == "" {
				*at(d) = nil
				return nil
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("%s must be a number", f.Label)
			}
			*at(d) = &v
			return nil
		},
	}
}

func integerField[T any](f Field, at func(*T) *int) binding[T] {
	f.Kind = KindInteger
	return binding[T]{
		Field: f,
		get:   func(d *T) string { return strconv.Itoa(*at(d)) },
		set: func(d *T, raw string) error {
			if raw == "" && !f.Required {
				*at(d) = 0
				return nil
			}
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%s must be a whole number", f.Label)
			}
			*at(d) = v
			return nil
		},
	}
}

func optIntegerField[T any](f Field, at func(*T) **int) binding[T] {
	f.Kind = KindInteger
	return binding[T]{
		Field: f,
		get: func(d *T) string {
			if v := *at(d); v != nil {
				return strconv.Itoa(*v)
			}
			return ""
		},
		set: func(d *T, raw string) error {
			if raw == "" {
				*at(d) = nil
				return nil
			}
			v, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%s must be a whole number", f.Label)
			}
			*at(d) = &v
			return nil
		},
	}
}

// activeField is the isActive switch; absent means active
func activeField[T any](at func(*T) **bool) binding[T] {
	f := Field{Key: "active", Label: "Active", Kind: KindFlag}
	return binding[T]{
		Field: f,
		get:   func(d *T) string { return strconv.FormatBool(active(*at(d))) },
		set: func(d *T, raw string) error {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%s must be true or false", f.Label)
			}
			*at(d) = Bool(v)
			return nil
		},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Editors returns the form for every editable resource. Orders are only
// moved through their status workflow, so they have none.
func (c *Catalog) Editors() []Editor {
	return []Editor{
		c.productEditor(),
		c.stockEditor(),
		c.categoryEditor(),
		c.brandEditor(),
		c.sizeEditor(),
		c.bannerEditor(),
	}
}

// Editor returns the form for resource, e.g. "products"
func (c *Catalog) Editor(resource string) (Editor, bool) {
	for _, e := range c.Editors() {
		if e.Resource() == resource {
			return e, true
		}
	}
	return nil, false
}

func (c *Catalog) brandEditor() Editor {
	return &docEditor[Brand]{
		resource: "brands",
		bindings: []binding[Brand]{
			textField(Field{Key: "name", Label: "Name", Required: true}, func(b *Brand) *string { return &b.Name }),
			textField(Field{Key: "slug", Label: "Slug"}, func(b *Brand) *string { return &b.Slug }),
			textField(Field{Key: "image", Label: "Image URL"}, func(b *Brand) *string { return &b.Image }),
			activeField(func(b *Brand) **bool { return &b.IsActive }),
		},
		id:     func(b Brand) string { return b.ID },
		load:   c.Brands.Get,
		create: c.Brands.Create,
		update: c.Brands.Update,
	}
}

func (c *Catalog) categoryEditor() Editor {
	return &docEditor[Category]{
		resource: "categories",
		bindings: []binding[Category]{
			textField(Field{Key: "name", Label: "Name", Required: true}, func(x *Category) *string { return &x.Name }),
			textField(Field{Key: "slug", Label: "Slug"}, func(x *Category) *string { return &x.Slug }),
			optRefField(Field{Key: "parent", Label: "Parent Category", RefTo: "categories"}, func(x *Category) **Ref { return &x.Parent }),
			textField(Field{Key: "image", Label: "Image URL"}, func(x *Category) *string { return &x.Image }),
			activeField(func(x *Category) **bool { return &x.IsActive }),
		},
		id:     func(x Category) string { return x.ID },
		load:   c.Categories.Get,
		create: c.Categories.Create,
		update: c.Categories.Update,
	}
}

func (c *Catalog) sizeEditor() Editor {
	return &docEditor[Size]{
		resource: "sizes",
		bindings: []binding[Size]{
			refField(Field{Key: "type", Label: "Size Type", RefTo: "sizeTypes", Required: true}, func(s *Size) *Ref { return &s.SizeType }),
			textField(Field{Key: "label", Label: "Label", Required: true}, func(s *Size) *string { return &s.Label }),
			integerField(Field{Key: "sort-order", Label: "Sort Order"}, func(s *Size) *int { return &s.SortOrder }),
		},
		id:     func(s Size) string { return s.ID },
		load:   c.Sizes.Get,
		create: c.Sizes.Create,
		update: c.Sizes.Update,
	}
}

func (c *Catalog) productEditor() Editor {
	return &docEditor[Product]{
		resource: "products",
		bindings: []binding[Product]{
			textField(Field{Key: "name", Label: "Name", Required: true}, func(p *Product) *string { return &p.Name }),
			textField(Field{Key: "slug", Label: "Slug"}, func(p *Product) *string { return &p.Slug }),
			textField(Field{Key: "description", Label: "Description"}, func(p *Product) *string { return &p.Description }),
			refField(Field{Key: "category", Label: "Category", RefTo: "categories", Required: true}, func(p *Product) *Ref { return &p.Category }),
			optRefField(Field{Key: "brand", Label: "Brand", RefTo: "brands"}, func(p *Product) **Ref { return &p.Brand }),
			numberField(Field{Key: "price", Label: "Price", Required: true}, func(p *Product) *float64 { return &p.Price }),
			optNumberField(Field{Key: "sale-price", Label: "Sale Price"}, func(p *Product) **float64 { return &p.SalePrice }),
			textField(Field{Key: "featured-image", Label: "Featured Image URL"}, func(p *Product) *string { return &p.FeaturedImage }),
			textField(Field{Key: "status", Label: "Status"}, func(p *Product) *string { return &p.Status }),
			activeField(func(p *Product) **bool { return &p.IsActive }),
		},
		id:     func(p Product) string { return p.ID },
		load:   c.Products.Get,
		create: c.Products.Create,
		update: c.Products.Update,
	}
}

func (c *Catalog) stockEditor() Editor {
	return &docEditor[Stock]{
		resource: "stock",
		bindings: []binding[Stock]{
			refField(Field{Key: "product", Label: "Product", RefTo: "products", Required: true, CreateOnly: true}, func(s *Stock) *Ref { return &s.Product }),
			refField(Field{Key: "size", Label: "Size", RefTo: "sizes", Required: true, CreateOnly: true}, func(s *Stock) *Ref { return &s.Size }),
			integerField(Field{Key: "qty", Label: "Stock Quantity", Required: true}, func(s *Stock) *int { return &s.Quantity }),
		},
		id:     func(s Stock) string { return s.ID },
		load:   c.Stock.Get,
		create: c.Stock.Create,
		update: func(ctx context.Context, id string, s Stock) (Stock, error) {
			return c.Stock.Update(ctx, id, s.Quantity)
		},
	}
}

func (c *Catalog) bannerEditor() Editor {
	return &docEditor[Banner]{
		resource: "banners",
		bindings: []binding[Banner]{
			textField(Field{Key: "title", Label: "Title", Required: true}, func(b *Banner) *string { return &b.Title }),
			textField(Field{Key: "subtitle", Label: "Subtitle"}, func(b *Banner) *string { return &b.Subtitle }),
			textField(Field{Key: "image", Label: "Image URL", Required: true}, func(b *Banner) *string { return &b.Image }),
			textField(Field{Key: "link", Label: "Link"}, func(b *Banner) *string { return &b.Link }),
			optIntegerField(Field{Key: "position", Label: "Position"}, func(b *Banner) **int { return &b.Position }),
			activeField(func(b *Banner) **bool { return &b.IsActive }),
		},
		id:     func(b Banner) string { return b.ID },
		load:   c.Banners.Get,
		create: c.Banners.Create,
		update: c.Banners.Update,
	}
}

// Option is one choice for a reference field
type Option struct {
	ID   string
	Name string
}

// RefOptions lists the documents a KindRef field may point at
func (c *Catalog) RefOptions(ctx context.Context, collection string) ([]Option, error) {
	switch collection {
	case "categories":
		items, err := c.Categories.List(ctx, false)
		return options(items, func(x Category) Option { return Option{x.ID, x.Name} }), err
	case "brands":
		items, err := c.Brands.List(ctx, false)
		return options(items, func(x Brand) Option { return Option{x.ID, x.Name} }), err
	case "sizeTypes":
		items, err := c.Sizes.Types(ctx)
		return options(items, func(x SizeType) Option { return Option{x.ID, x.Name} }), err
	case "products":
		items, err := c.Products.List(ctx, ProductFilter{})
		return options(items, func(x Product) Option { return Option{x.ID, x.Name} }), err
	case "sizes":
		items, err := c.Sizes.List(ctx, "")
		return options(items, func(x Size) Option {
			if x.SizeType.Name != "" {
				return Option{x.ID, x.Label + " (" + x.SizeType.Name + ")"}
			}
			return Option{x.ID, x.Label}
		}), err
	}
	return nil, fmt.Errorf("no options for %s", collection)
}

func options[T any](items []T, to func(T) Option) []Option {
	out := make([]Option, 0, len(items))
	for _, it := range items {
		out = append(out, to(it))
	}
	return out
}
