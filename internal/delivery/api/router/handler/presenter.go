package handler

import (
	"time"

	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/repository"

	"github.com/shopspring/decimal"
)

const (
	dateLayout           = "2006-01-02"
	fallbackCategoryName = "Sin Categoría"
	fallbackBrandName    = "Sin Marca"
)

// Money is an amount in soles, rendered as a JSON number with two decimals.
type Money decimal.Decimal

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = Money(d)

	return nil
}

func (m Money) String() string {
	return decimal.Decimal(m).StringFixed(2)
}

// PageResponse is one page of a listing.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func newPageResponse[E, T any](page *repository.Page[E], convert func(E) T) *PageResponse[T] {
	content := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		content = append(content, convert(item))
	}

	return &PageResponse[T]{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.Total,
		TotalPages:    page.TotalPages(),
	}
}

func mapSlice[E, T any](items []E, convert func(E) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}

	return out
}

// MessageResponse carries a human readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID           uint64  `json:"id"`
	FirstName    string  `json:"nombre"`
	LastName     string  `json:"apellido"`
	Email        string  `json:"email"`
	Role         string  `json:"rol"`
	DNI          *string `json:"dni"`
	Phone        string  `json:"telefono"`
	Gender       string  `json:"genero"`
	BirthDate    *string `json:"fechaNacimiento"`
	AuthProvider string  `json:"authProvider"`
	Enabled      bool    `json:"enabled"`
}

func toUserResponse(u *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Role:         u.Role.String(),
		DNI:          u.DNI,
		Phone:        u.Phone,
		Gender:       u.Gender,
		AuthProvider: string(u.AuthProvider),
		Enabled:      u.Enabled,
	}
	if u.BirthDate != nil {
		birthDate := u.BirthDate.Format(dateLayout)
		resp.BirthDate = &birthDate
	}

	return resp
}

// VariantResponse is one color/size combination with its stock.
type VariantResponse struct {
	ID       uint64 `json:"id"`
	Color    string `json:"color"`
	ColorHex string `json:"colorHex"`
	Size     string `json:"talla"`
	Stock    int    `json:"stock"`
}

// ProductResponse is the storefront view of a product.
type ProductResponse struct {
	ID           uint64            `json:"id"`
	Name         string            `json:"nombre"`
	Description  string            `json:"descripcion"`
	Price        Money             `json:"precio"`
	Discount     int               `json:"descuento"`
	FinalPrice   Money             `json:"precioFinal"`
	ImageURL     string            `json:"imagenUrl"`
	Images       []string          `json:"images"`
	CategoryID   uint64            `json:"categoryId"`
	CategoryName string            `json:"categoryName"`
	BrandID      *uint64           `json:"brandId"`
	BrandName    string            `json:"brandName"`
	Gender       string            `json:"genero"`
	Featured     bool              `json:"featured"`
	Variants     []VariantResponse `json:"variantes"`
	TotalStock   int               `json:"totalStock"`
}

func toProductResponse(p *entity.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        Money(p.Price),
		Discount:     p.Discount,
		FinalPrice:   Money(p.FinalPrice()),
		ImageURL:     p.MainImageURL(),
		Images:       make([]string, 0, len(p.Images)),
		CategoryID:   p.CategoryID,
		CategoryName: fallbackCategoryName,
		BrandID:      p.BrandID,
		BrandName:    fallbackBrandName,
		Gender:       string(p.Gender),
		Featured:     p.Featured,
		Variants:     make([]VariantResponse, 0, len(p.Variants)),
		TotalStock:   p.TotalStock(),
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	if p.Brand != nil {
		resp.BrandName = p.Brand.Name
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, img.URL)
	}
	for _, v := range p.Variants {
		resp.Variants = append(resp.Variants, VariantResponse{
			ID:       v.ID,
			Color:    v.Color,
			ColorHex: v.ColorHex,
			Size:     v.Size,
			Stock:    v.Stock,
		})
	}

	return resp
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

func toCategoryResponse(c *entity.Category) *CategoryResponse {
	return &CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

// BrandResponse is the public view of a brand.
type BrandResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"nombre"`
}

func toBrandResponse(b *entity.Brand) *BrandResponse {
	return &BrandResponse{ID: b.ID, Name: b.Name}
}

// AddressResponse is a saved address.
type AddressResponse struct {
	ID         uint64 `json:"id"`
	Alias      string `json:"alias"`
	Department string `json:"departamento"`
	Province   string `json:"provincia"`
	District   string `json:"distrito"`
	Street     string `json:"direccion"`
	Reference  string `json:"referencia"`
	PostalCode string `json:"codigoPostal"`
}

func toAddressResponse(a *entity.Address) *AddressResponse {
	return &AddressResponse{
		ID:         a.ID,
		Alias:      a.Alias,
		Department: a.Department,
		Province:   a.Province,
		District:   a.District,
		Street:     a.Street,
		Reference:  a.Reference,
		PostalCode: a.PostalCode,
	}
}

// OrderItemResponse is one purchased line.
type OrderItemResponse struct {
	ID          uint64  `json:"id"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   Money   `json:"precioUnitario"`
	ProductID   *uint64 `json:"productId"`
	ProductName string  `json:"productName"`
	Color       string  `json:"color"`
	Size        string  `json:"talla"`
}

// OrderResponse is the customer and back office view of an order.
type OrderResponse struct {
	ID              uint64              `json:"id"`
	CreatedAt       time.Time           `json:"fechaCreacion"`
	Status          string              `json:"estado"`
	Total           Money               `json:"total"`
	UserEmail       string              `json:"userEmail"`
	Items           []OrderItemResponse `json:"items"`
	TrackingNumber  string              `json:"trackingNumber"`
	CourierName     string              `json:"courierName"`
	PaymentMethod   string              `json:"metodoPago"`
	OperationCode   string              `json:"codOperacion"`
	ProofURL        string              `json:"urlComprobante"`
	ShippingAddress string              `json:"direccionEnvio"`
}

func toOrderResponse(o *entity.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:              o.ID,
		CreatedAt:       o.CreatedAt,
		Status:          string(o.Status),
		Total:           Money(o.Total),
		UserEmail:       o.UserEmail,
		Items:           make([]OrderItemResponse, 0, len(o.Items)),
		TrackingNumber:  o.TrackingNumber,
		CourierName:     o.CourierName,
		PaymentMethod:   string(o.PaymentMethod),
		OperationCode:   o.OperationCode,
		ProofURL:        o.ProofURL,
		ShippingAddress: o.ShippingLabel(),
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          item.ID,
			Quantity:    item.Quantity,
			UnitPrice:   Money(item.UnitPrice),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Color:       item.Color,
			Size:        item.Size,
		})
	}

	return resp
}

// ComplaintResponse is an entry of the complaints book.
type ComplaintResponse struct {
	ID              uint64     `json:"id"`
	Code            string     `json:"codigoReclamacion"`
	CreatedAt       time.Time  `json:"fechaCreacion"`
	FullName        string     `json:"nombreCompleto"`
	Email           string     `json:"emailContacto"`
	Type            string     `json:"tipoReclamo"`
	ProblemDetail   string     `json:"detalleProblema"`
	ConsumerRequest string     `json:"pedidoConsumidor"`
	DNI             string     `json:"dni"`
	Phone           string     `json:"telefono"`
	Address         string     `json:"direccion"`
	GoodType        string     `json:"tipoBien"`
	ClaimedAmount   Money      `json:"montoReclamado"`
	GoodDescription string     `json:"descripcionBien"`
	Resolved        bool       `json:"resuelto"`
	ResolvedAt      *time.Time `json:"fechaResolucion"`
}

func toComplaintResponse(c *entity.Complaint) *ComplaintResponse {
	return &ComplaintResponse{
		ID:              c.ID,
		Code:            c.Code,
		CreatedAt:       c.CreatedAt,
		FullName:        c.FullName,
		Email:           c.Email,
		Type:            string(c.Type),
		ProblemDetail:   c.ProblemDetail,
		ConsumerRequest: c.ConsumerRequest,
		DNI:             c.DNI,
		Phone:           c.Phone,
		Address:         c.Address,
		GoodType:        string(c.GoodType),
		ClaimedAmount:   Money(c.ClaimedAmount),
		GoodDescription: c.GoodDescription,
		Resolved:        c.Resolved,
		ResolvedAt:      c.ResolvedAt,
	}
}
