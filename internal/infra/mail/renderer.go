package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"geekstore/config"
	"geekstore/internal/domain/entity"
	"geekstore/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	defaultBrand   = "ARCHIVE."
	defaultCourier = "Agencia"
	ordersPath     = "/profile/orders"
	confirmPath    = "/auth/confirm-account?token="
)

var templateFuncs = template.FuncMap{
	"money": func(v decimal.Decimal) string {
		return "S/ " + v.StringFixed(2)
	},
	"orDash": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}

		return s
	},
}

// StatusPresentation is how an order status is announced to the customer
type StatusPresentation struct {
	Title   string
	Message string
	Color   string
}

func presentStatus(status entity.OrderStatus) StatusPresentation {
	switch status {
	case entity.OrderStatusShipped:
		return StatusPresentation{"¡Tu pedido está en camino! 🚚", "Tu paquete ha salido de nuestro almacén.", "#2563eb"}
	case entity.OrderStatusDelivered:
		return StatusPresentation{"¡Paquete Entregado! 🎉", "Tu pedido ha sido entregado. ¡Disfruta tu compra!", "#16a34a"}
	case entity.OrderStatusCancelled:
		return StatusPresentation{"Pedido Cancelado ✕", "Tu pedido ha sido cancelado.", "#dc2626"}
	default:
		return StatusPresentation{"Actualización de Pedido", "El estado de tu pedido ha cambiado.", "#000000"}
	}
}

func paymentLabel(method entity.PaymentMethod) string {
	if method == entity.PaymentMethodManual {
		return "Yape / Plin (Validación Manual)"
	}

	return "Tarjeta de Crédito/Débito"
}

type templateData struct {
	Brand            string
	Name             string
	Link             string
	Code             string
	ExpiresInMinutes int
	Year             int
	PaymentLabel     string
	Order            *entity.Order
	Status           StatusPresentation
	ShowTracking     bool
	Courier          string
}

type templateRenderer struct {
	templates   map[entity.MailEventType]*template.Template
	brand       string
	frontendURL string
	recoveryTTL time.Duration
	now         func() time.Time
}

// NewTemplateRenderer parses the embedded templates once
func NewTemplateRenderer(cfg *config.Config) (service.MailRenderer, error) {
	return newTemplateRenderer(cfg)
}

func newTemplateRenderer(cfg *config.Config) (*templateRenderer, error) {
	r := &templateRenderer{
		templates: make(map[entity.MailEventType]*template.Template),
		brand:     defaultBrand,
		now:       time.Now,
	}
	if cfg.Store != nil {
		r.frontendURL = strings.TrimRight(cfg.Store.FrontendURL, "/")
		r.recoveryTTL = cfg.Store.RecoveryCodeTTL
		if cfg.Store.BrandName != "" {
			r.brand = cfg.Store.BrandName
		}
	}
	if r.recoveryTTL <= 0 {
		r.recoveryTTL = 10 * time.Minute
	}

	for _, eventType := range []entity.MailEventType{
		entity.MailEventAccountVerification,
		entity.MailEventRecoveryCode,
		entity.MailEventOrderConfirmation,
		entity.MailEventOrderStatusUpdate,
	} {
		name := string(eventType) + ".html"
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", name)
		}
		r.templates[eventType] = tmpl
	}

	return r, nil
}

// Render builds subject and body for event
func (r *templateRenderer) Render(event *entity.MailEvent) (*service.Mail, error) {
	if event == nil {
		return nil, errors.New("mail event is nil")
	}

	tmpl, ok := r.templates[event.Type]
	if !ok {
		return nil, errors.Errorf("unknown mail event type: %s", event.Type)
	}

	data := templateData{
		Brand: r.brand,
		Name:  event.Name,
		Year:  r.now().Year(),
	}

	var subject string
	switch event.Type {
	case entity.MailEventAccountVerification:
		if event.Token == "" {
			return nil, errors.New("verification mail without token")
		}
		data.Link = r.frontendURL + confirmPath + event.Token
		subject = "Activa tu cuenta | " + r.brand

	case entity.MailEventRecoveryCode:
		if event.Code == "" {
			return nil, errors.New("recovery mail without code")
		}
		data.Code = event.Code
		data.ExpiresInMinutes = int(r.recoveryTTL.Minutes())
		subject = fmt.Sprintf("Código de Recuperación: %s | %s", event.Code, r.brand)

	case entity.MailEventOrderConfirmation:
		if event.Order == nil {
			return nil, errors.New("order mail without order")
		}
		data.Order = event.Order
		data.PaymentLabel = paymentLabel(event.Order.PaymentMethod)
		data.Link = r.frontendURL + ordersPath
		subject = fmt.Sprintf("Confirmación de Compra - Pedido #%d | %s", event.Order.ID, r.brand)

	case entity.MailEventOrderStatusUpdate:
		if event.Order == nil {
			return nil, errors.New("order mail without order")
		}
		data.Order = event.Order
		data.Status = presentStatus(event.Order.Status)
		data.ShowTracking = event.Order.Status == entity.OrderStatusShipped && event.Order.TrackingNumber != ""
		data.Courier = event.Order.CourierName
		if data.Courier == "" {
			data.Courier = defaultCourier
		}
		data.Link = r.frontendURL + ordersPath
		subject = fmt.Sprintf("%s | Orden #%d", data.Status.Title, event.Order.ID)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, errors.Wrapf(err, "render %s", event.Type)
	}

	return &service.Mail{
		To:      event.To,
		Subject: subject,
		HTML:    body.String(),
	}, nil
}
