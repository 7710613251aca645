package domain

import (
	"regexp"
	"time"
)

// Status is the lifecycle state of an invoice.
type Status string

const (
	StatusDraft   Status = "draft"
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPaid:
		return true
	}
	return false
}

// InvoiceIDPattern is the format of the human-facing invoice code.
var InvoiceIDPattern = regexp.MustCompile(`^#[A-Z]{2}\d{4}$`)

// PaymentTerms lists the allowed payment terms in days.
var PaymentTerms = []int{1, 7, 14, 30}

// Address is the sender side of an invoice.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	PostCode string `json:"postCode"`
	Country  string `json:"country"`
}

// Client is the billed party.
type Client struct {
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	Street      string `json:"street"`
	City        string `json:"city"`
	PostCode    string `json:"postCode"`
	Country     string `json:"country"`
}

// Item is one invoice line. Total is derived from Quantity and Price.
type Item struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

// Invoice is the stored billing record.
type Invoice struct {
	ID                 string    `json:"id"`
	InvoiceID          string    `json:"invoiceId"`
	BillFrom           Address   `json:"billFrom"`
	BillTo             Client    `json:"billTo"`
	InvoiceDate        Date      `json:"invoiceDate"`
	PaymentTerms       int       `json:"paymentTerms"`
	PaymentDue         Date      `json:"paymentDue"`
	ProjectDescription string    `json:"projectDescription"`
	Items              []Item    `json:"items"`
	TotalAmount        float64   `json:"totalAmount"`
	Status             Status    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
