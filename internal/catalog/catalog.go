// ABOUTME: Typed wrappers for each catalog resource over one request primitive
// ABOUTME: Shape parameters and paths only; failures come from the primitive

package catalog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/osamaqaseem39/strikersgear-dashboard/internal/client"
)

// Catalog groups the resource services
type Catalog struct {
	Auth       *AuthService
	Brands     *BrandService
	Categories *CategoryService
	Sizes      *SizeService
	Products   *ProductService
	Stock      *StockService
	Orders     *OrderService
	Banners    *BannerService
}

// New builds every resource service on r
func New(r client.Requester) *Catalog {
	return &Catalog{
		Auth:       &AuthService{r: r},
		Brands:     &BrandService{r: r},
		Categories: &CategoryService{r: r},
		Sizes:      &SizeService{r: r},
		Products:   &ProductService{r: r},
		Stock:      &StockService{r: r},
		Orders:     &OrderService{r: r},
		Banners:    &BannerService{r: r},
	}
}

func get[T any](ctx context.Context, r client.Requester, path string) (T, error) {
	var out T
	err := r.Do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func list[T any](ctx context.Context, r client.Requester, path string) ([]T, error) {
	var out []T
	if err := r.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func send[T any](ctx context.Context, r client.Requester, method, path string, body any) (T, error) {
	var out T
	err := r.Do(ctx, method, path, body, &out)
	return out, err
}

func remove(ctx context.Context, r client.Requester, path string) error {
	return r.Do(ctx, http.MethodDelete, path, nil, nil)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func item(base, id string) string {
	return base + "/" + url.PathEscape(id)
}

// AuthService reaches the unauthenticated /auth endpoints
type AuthService struct{ r client.Requester }

// Status reports whether an admin exists
func (s *AuthService) Status(ctx context.Context) (AuthStatus, error) {
	return get[AuthStatus](ctx, s.r, "/auth/status")
}

// Login exchanges the admin password for a token
func (s *AuthService) Login(ctx context.Context, password string) (AuthResult, error) {
	return send[AuthResult](ctx, s.r, http.MethodPost, "/auth/login", map[string]string{"password": password})
}

// Register creates the admin account and returns its first token
func (s *AuthService) Register(ctx context.Context, password string) (AuthResult, error) {
	return send[AuthResult](ctx, s.r, http.MethodPost, "/auth/register", map[string]string{"password": password})
}

// BrandService manages brands
type BrandService struct{ r client.Requester }

// List returns brands, optionally only active ones
func (s *BrandService) List(ctx context.Context, activeOnly bool) ([]Brand, error) {
	return list[Brand](ctx, s.r, withQuery("/brands", url.Values{"activeOnly": {strconv.FormatBool(activeOnly)}}))
}

func (s *BrandService) Get(ctx context.Context, id string) (Brand, error) {
	return get[Brand](ctx, s.r, item("/brands", id))
}

func (s *BrandService) Create(ctx context.Context, b Brand) (Brand, error) {
	if err := b.Validate(); err != nil {
		return Brand{}, err
	}
	return send[Brand](ctx, s.r, http.MethodPost, "/brands", b)
}

func (s *BrandService) Update(ctx context.Context, id string, b Brand) (Brand, error) {
	if err := b.Validate(); err != nil {
		return Brand{}, err
	}
	return send[Brand](ctx, s.r, http.MethodPatch, item("/brands", id), b)
}

func (s *BrandService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, item("/brands", id))
}

// CategoryService manages categories and their size types
type CategoryService struct{ r client.Requester }

// List returns categories, optionally only active ones
func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]Category, error) {
	return list[Category](ctx, s.r, withQuery("/categories", url.Values{"activeOnly": {strconv.FormatBool(activeOnly)}}))
}

func (s *CategoryService) Get(ctx context.Context, id string) (Category, error) {
	return get[Category](ctx, s.r, item("/categories", id))
}

func (s *CategoryService) Create(ctx context.Context, c Category) (Category, error) {
	if err := c.Validate(); err != nil {
		return Category{}, err
	}
	return send[Category](ctx, s.r, http.MethodPost, "/categories", c)
}

func (s *CategoryService) Update(ctx context.Context, id string, c Category) (Category, error) {
	if err := c.Validate(); err != nil {
		return Category{}, err
	}
	return send[Category](ctx, s.r, http.MethodPatch, item("/categories", id), c)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, item("/categories", id))
}

// SizeTypes returns the size types attached to a category
func (s *CategoryService) SizeTypes(ctx context.Context, id string) ([]SizeType, error) {
	return list[SizeType](ctx, s.r, item("/categories", id)+"/size-types")
}

// AddSizeType attaches a size type to a category
func (s *CategoryService) AddSizeType(ctx context.Context, id, sizeTypeID string) (Category, error) {
	return send[Category](ctx, s.r, http.MethodPost, item("/categories", id)+"/size-types",
		map[string]string{"sizeTypeId": sizeTypeID})
}

// SizeService manages sizes and size types
type SizeService struct{ r client.Requester }

// Types returns every size type
func (s *SizeService) Types(ctx context.Context) ([]SizeType, error) {
	return list[SizeType](ctx, s.r, "/sizes/types")
}

func (s *SizeService) CreateType(ctx context.Context, t SizeType) (SizeType, error) {
	if err := t.Validate(); err != nil {
		return SizeType{}, err
	}
	return send[SizeType](ctx, s.r, http.MethodPost, "/sizes/types", t)
}

// List returns sizes, filtered to one size type when sizeTypeID is set
func (s *SizeService) List(ctx context.Context, sizeTypeID string) ([]Size, error) {
	q := url.Values{}
	if sizeTypeID != "" {
		q.Set("sizeTypeId", sizeTypeID)
	}
	return list[Size](ctx, s.r, withQuery("/sizes", q))
}

func (s *SizeService) Get(ctx context.Context, id string) (Size, error) {
	return get[Size](ctx, s.r, item("/sizes", id))
}

func (s *SizeService) Create(ctx context.Context, sz Size) (Size, error) {
	if err := sz.Validate(); err != nil {
		return Size{}, err
	}
	return send[Size](ctx, s.r, http.MethodPost, "/sizes", sz)
}

func (s *SizeService) Update(ctx context.Context, id string, sz Size) (Size, error) {
	if err := sz.Validate(); err != nil {
		return Size{}, err
	}
	return send[Size](ctx, s.r, http.MethodPatch, item("/sizes", id), sz)
}

func (s *SizeService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, item("/sizes", id))
}

// ProductFilter narrows a product listing
type ProductFilter struct {
	CategoryID string
	ActiveOnly bool
}

func (f ProductFilter) query() url.Values {
	q := url.Values{}
	if f.CategoryID != "" {
		q.Set("categoryId", f.CategoryID)
	}
	if f.ActiveOnly {
		q.Set("activeOnly", "true")
	}
	return q
}

// ProductService manages products and their images
type ProductService struct{ r client.Requester }

func (s *ProductService) List(ctx context.Context, f ProductFilter) ([]Product, error) {
	return list[Product](ctx, s.r, withQuery("/products", f.query()))
}

func (s *ProductService) Get(ctx context.Context, id string) (Product, error) {
	return get[Product](ctx, s.r, item("/products", id))
}

func (s *ProductService) Create(ctx context.Context, p Product) (Product, error) {
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return send[Product](ctx, s.r, http.MethodPost, "/products", p)
}

func (s *ProductService) Update(ctx context.Context, id string, p Product) (Product, error) {
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return send[Product](ctx, s.r, http.MethodPatch, item("/products", id), p)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, item("/products", id))
}

// AddImage appends an image URL to a product
func (s *ProductService) AddImage(ctx context.Context, id, imageURL string) (Product, error) {
	return send[Product](ctx, s.r, http.MethodPost, item("/products", id)+"/images",
		map[string]string{"imageUrl": imageURL})
}

// RemoveImage drops an image URL from a product
func (s *ProductService) RemoveImage(ctx context.Context, id, imageURL string) (Product, error) {
	return send[Product](ctx, s.r, http.MethodDelete, item("/products", id)+"/images",
		map[string]string{"imageUrl": imageURL})
}

// StockService manages per-size stock rows
type StockService struct{ r client.Requester }

// List returns stock rows, filtered to one product when productID is set
func (s *StockService) List(ctx context.Context, productID string) ([]Stock, error) {
	q := url.Values{}
	if productID != "" {
		q.Set("productId", productID)
	}
	return list[Stock](ctx, s.r, withQuery("/stock", q))
}

func (s *StockService) Get(ctx context.Context, id string) (Stock, error) {
	return get[Stock](ctx, s.r, item("/stock", id))
}

// ForProductSize returns the row for one product and size
func (s *StockService) ForProductSize(ctx context.Context, productID, sizeID string) (Stock, error) {
	return get[Stock](ctx, s.r, productSizePath(productID, sizeID))
}

func (s *StockService) Create(ctx context.Context, st Stock) (Stock, error) {
	if err := st.Validate(); err != nil {
		return Stock{}, err
	}
	return send[Stock](ctx, s.r, http.MethodPost, "/stock", st)
}

// Update changes the quantity of an existing row
func (s *StockService) Update(ctx context.Context, id string, qty int) (Stock, error) {
	if err := ValidateQuantity(qty); err != nil {
		return Stock{}, err
	}
	return send[Stock](ctx, s.r, http.MethodPatch, item("/stock", id), map[string]int{"stockQty": qty})
}

// SetQuantity is the quick update addressed by product and size
func (s *StockService) SetQuantity(ctx context.Context, productID, sizeID string, qty int) (Stock, error) {
	if err := ValidateQuantity(qty); err != nil {
		return Stock{}, err
	}
	return send[Stock](ctx, s.r, http.MethodPatch, productSizePath(productID, sizeID), map[string]int{"quantity": qty})
}

func (s *StockService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, item("/stock", id))
}

func productSizePath(productID, sizeID string) string {
	return "/stock/product/" + url.PathEscape(productID) + "/size/" + url.PathEscape(sizeID)
}

// OrderService manages customer orders
type OrderService struct{ r client.Requester }

// List returns orders, filtered to one status when status is set
func (s *OrderService) List(ctx context.Context, status string) ([]Order, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	return list[Order](ctx, s.r, withQuery("/orders", q))
}

func (s *OrderService) Get(ctx context.Context, id string) (Order, error) {
	return get[Order](ctx, s.r, item("/orders", id))
}

// OrderUpdate is a partial order change
type OrderUpdate struct {
	Status string `json:"status,omitempty"`
}

func (s *OrderService) Update(ctx context.Context, id string, u OrderUpdate) (Order, error) {
	if u.Status != "" {
		if err := ValidateOrderStatus(u.Status); err != nil {
			return Order{}, err
		}
	}
	return send[Order](ctx, s.r, http.MethodPatch, item("/orders", id), u)
}

// SetStatus moves an order to status
func (s *OrderService) SetStatus(ctx context.Context, id, status string) (Order, error) {
	if err := ValidateOrderStatus(status); err != nil {
		return Order{}, err
	}
	return s.Update(ctx, id, OrderUpdate{Status: status})
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, item("/orders", id))
}

// BannerService manages storefront banners
type BannerService struct{ r client.Requester }

func (s *BannerService) List(ctx context.Context) ([]Banner, error) {
	return list[Banner](ctx, s.r, "/banners")
}

func (s *BannerService) Get(ctx context.Context, id string) (Banner, error) {
	return get[Banner](ctx, s.r, item("/banners", id))
}

func (s *BannerService) Create(ctx context.Context, b Banner) (Banner, error) {
	if err := b.Validate(); err != nil {
		return Banner{}, err
	}
	return send[Banner](ctx, s.r, http.MethodPost, "/banners", b)
}

func (s *BannerService) Update(ctx context.Context, id string, b Banner) (Banner, error) {
	if err := b.Validate(); err != nil {
		return Banner{}, err
	}
	return send[Banner](ctx, s.r, http.MethodPatch, item("/banners", id), b)
}

func (s *BannerService) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.r, item("/banners", id))
}
