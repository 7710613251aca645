package validation

import (
	"invoice-web-app/internal/domain"
)

// AddressPayload is the inbound billFrom object.
type AddressPayload struct {
	Street   string `json:"street" validate:"notblank"`
	City     string `json:"city" validate:"notblank"`
	PostCode string `json:"postCode" validate:"notblank"`
	Country  string `json:"country" validate:"notblank"`
}

// ClientPayload is the inbound billTo object.
type ClientPayload struct {
	ClientName  string `json:"clientName" validate:"notblank"`
	ClientEmail string `json:"clientEmail" validate:"email"`
	Street      string `json:"street" validate:"notblank"`
	City        string `json:"city" validate:"notblank"`
	PostCode    string `json:"postCode" validate:"notblank"`
	Country     string `json:"country" validate:"notblank"`
}

// ItemPayload is one inbound line item. A client-sent total is ignored.
type ItemPayload struct {
	Name     string  `json:"name" validate:"notblank"`
	Quantity float64 `json:"quantity" validate:"gt=0,lte=1000000"`
	Price    float64 `json:"price" validate:"gt=0,lte=1000000000"`
	Total    float64 `json:"total,omitempty"`
}

// InvoicePayload is the body of create, update, and preview requests.
// Derived fields sent by the client are accepted on the wire and dropped.
type InvoicePayload struct {
	InvoiceID          string         `json:"invoiceId,omitempty"`
	BillFrom           AddressPayload `json:"billFrom"`
	BillTo             ClientPayload  `json:"billTo"`
	InvoiceDate        string         `json:"invoiceDate" validate:"isodate"`
	PaymentTerms       int            `json:"paymentTerms" validate:"oneof=1 7 14 30"`
	ProjectDescription string         `json:"projectDescription" validate:"notblank"`
	Items              []ItemPayload  `json:"items" validate:"required,min=1,dive"`
	Status             domain.Status  `json:"status,omitempty" validate:"omitempty,oneof=draft pending paid"`
	PaymentDue         string         `json:"paymentDue,omitempty"`
	TotalAmount        float64        `json:"totalAmount,omitempty"`
}

// StatusPayload is the body of the status-only update.
type StatusPayload struct {
	Status domain.Status `json:"status" validate:"required,oneof=draft pending paid"`
}

// Invoice converts a validated payload into a domain invoice without any
// derived values. Callers must run the normalizer afterwards.
func (p InvoicePayload) Invoice() (domain.Invoice, error) {
	date, err := domain.ParseDate(p.InvoiceDate)
	if err != nil {
		return domain.Invoice{}, err
	}
	items := make([]domain.Item, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, domain.Item{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
	}
	return domain.Invoice{
		BillFrom: domain.Address{
			Street:   p.BillFrom.Street,
			City:     p.BillFrom.City,
			PostCode: p.BillFrom.PostCode,
			Country:  p.BillFrom.Country,
		},
		BillTo: domain.Client{
			ClientName:  p.BillTo.ClientName,
			ClientEmail: p.BillTo.ClientEmail,
			Street:      p.BillTo.Street,
			City:        p.BillTo.City,
			PostCode:    p.BillTo.PostCode,
			Country:     p.BillTo.Country,
		},
		InvoiceDate:        date,
		PaymentTerms:       p.PaymentTerms,
		ProjectDescription: p.ProjectDescription,
		Items:              items,
		Status:             p.Status,
	}, nil
}

// ThemePayload is the body of the theme preference update.
type ThemePayload struct {
	Theme domain.Theme `json:"theme" validate:"required,oneof=light dark"`
}

// ProfileImagePayload is the body of the profile image update. The image is
// kept as text (a data URL or a link) of at most 2 MiB in bytes.
type ProfileImagePayload struct {
	ProfileImage string `json:"profileImage" validate:"maxbytes=2097152"`
}
