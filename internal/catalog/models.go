// ABOUTME: Catalog document types exchanged with the API
// ABOUTME: Field names follow the API's JSON and Mongo-style _id keys

package catalog

import "time"

// Brand is a product brand
type Brand struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	Image    string `json:"image,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// Active reports the active flag, which defaults to true when absent
func (b Brand) Active() bool { return active(b.IsActive) }

// Category groups products and carries the size types they use
type Category struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Slug     string `json:"slug,omitempty"`
	Parent   *Ref   `json:"parent,omitempty"`
	Image    string `json:"image,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// Active reports the active flag, which defaults to true when absent
func (c Category) Active() bool { return active(c.IsActive) }

// SizeType is a family of sizes such as boot or apparel sizes
type SizeType struct {
	ID   string `json:"_id,omitempty"`
	Name string `json:"name"`
}

// Size is one label within a size type
type Size struct {
	ID        string `json:"_id,omitempty"`
	SizeType  Ref    `json:"sizeType"`
	Label     string `json:"label"`
	SortOrder int    `json:"sortOrder,omitempty"`
}

// Product is a catalog item
type Product struct {
	ID             string   `json:"_id,omitempty"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug,omitempty"`
	Description    string   `json:"description,omitempty"`
	Category       Ref      `json:"category"`
	Brand          *Ref     `json:"brand,omitempty"`
	Price          float64  `json:"price"`
	SalePrice      *float64 `json:"salePrice,omitempty"`
	Images         []string `json:"images,omitempty"`
	FeaturedImage  string   `json:"featuredImage,omitempty"`
	Gallery        []string `json:"gallery,omitempty"`
	AvailableSizes []string `json:"availableSizes,omitempty"`
	Status         string   `json:"status,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
}

// Active reports the active flag, which defaults to true when absent
func (p Product) Active() bool { return active(p.IsActive) }

// BrandName returns the brand display name
func (p Product) BrandName() string {
	if p.Brand == nil {
		return "N/A"
	}
	return p.Brand.Display()
}

// Stock is the quantity held for one product in one size
type Stock struct {
	ID       string `json:"_id,omitempty"`
	Product  Ref    `json:"product"`
	Size     Ref    `json:"size"`
	Quantity int    `json:"stockQty"`
}

// InStock reports whether any units remain
func (s Stock) InStock() bool { return s.Quantity > 0 }

// Key identifies the product/size pair the row belongs to
func (s Stock) Key() StockKey {
	return StockKey{ProductID: s.Product.ID, SizeID: s.Size.ID}
}

// StockKey identifies a stock row by product and size
type StockKey struct {
	ProductID string
	SizeID    string
}

// Order statuses
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderCancelled = "cancelled"
)

// OrderStatuses lists valid order statuses in workflow order
var OrderStatuses = []string{OrderPending, OrderConfirmed, OrderShipped, OrderCancelled}

// NextOrderStatus returns the status that follows status in the
// fulfilment workflow. Shipped and cancelled orders have none.
func NextOrderStatus(status string) (string, bool) {
	switch status {
	case OrderPending:
		return OrderConfirmed, true
	case OrderConfirmed:
		return OrderShipped, true
	}
	return "", false
}

// Order is a customer order
type Order struct {
	ID            string      `json:"_id,omitempty"`
	CustomerName  string      `json:"customerName,omitempty"`
	Phone         string      `json:"phone,omitempty"`
	Address       string      `json:"address,omitempty"`
	City          string      `json:"city,omitempty"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	TotalAmount   float64     `json:"totalAmount,omitempty"`
	Status        string      `json:"status,omitempty"`
	Items         []OrderItem `json:"orderItems,omitempty"`
	CreatedAt     time.Time   `json:"createdAt,omitzero"`
}

// ShortID returns the last eight characters of the id
func (o Order) ShortID() string {
	if len(o.ID) <= 8 {
		return o.ID
	}
	return o.ID[len(o.ID)-8:]
}

// OrderItem is one line of an order
type OrderItem struct {
	Product  Ref     `json:"product"`
	Size     Ref     `json:"size"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price times quantity
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Banner is a storefront promotional banner
type Banner struct {
	ID       string `json:"_id,omitempty"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image,omitempty"`
	Link     string `json:"link,omitempty"`
	Position *int   `json:"position,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// Active reports the active flag, which defaults to true when absent
func (b Banner) Active() bool { return active(b.IsActive) }

// AuthStatus reports whether the admin account has been provisioned
type AuthStatus struct {
	HasAdmin bool `json:"hasAdmin"`
}

// AuthResult is the response to login and registration
type AuthResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// Bool returns a pointer to v, for optional flags
func Bool(v bool) *bool { return &v }

func active(flag *bool) bool {
	return flag == nil || *flag
}
