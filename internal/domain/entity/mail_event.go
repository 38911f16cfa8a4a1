package entity

// MailEventType selects the template used to render a MailEvent.
type MailEventType string

const (
	MailEventAccountVerification MailEventType = "account_verification"
	MailEventRecoveryCode        MailEventType = "recovery_code"
	MailEventOrderConfirmation   MailEventType = "order_confirmation"
	MailEventOrderStatusUpdate   MailEventType = "order_status_update"
)

// MailEvent is a self-contained request to send one email.
// It carries everything the templates need so the consumer never reads the database.
type MailEvent struct {
	RequestID string        `json:"request_id,omitempty"`
	Type      MailEventType `json:"type"`
	To        string        `json:"to"`
	Name      string        `json:"name,omitempty"`
	Token     string        `json:"token,omitempty"`
	Code      string        `json:"code,omitempty"`
	Order     *Order        `json:"order,omitempty"`
}
