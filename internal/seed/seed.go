package seed

import (
	"context"
	"fmt"

	"invoice-web-app/internal/domain"
	"invoice-web-app/internal/validation"
)

// InvoiceStore is the part of the invoice service the seeder needs.
type InvoiceStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p validation.InvoicePayload) (*domain.Invoice, error)
}

var sender = validation.AddressPayload{
	Street:   "19 Union Terrace",
	City:     "London",
	PostCode: "E1 3EZ",
	Country:  "United Kingdom",
}

// Invoices returns the demo invoices.
func Invoices() []validation.InvoicePayload {
	return []validation.InvoicePayload{
		{
			BillFrom: sender,
			BillTo: validation.ClientPayload{
				ClientName: "Jensen Huang", ClientEmail: "jensenh@mail.com",
				Street: "106 Kendell Street", City: "Sharrington", PostCode: "NR24 5WQ", Country: "United Kingdom",
			},
			InvoiceDate:        "2021-08-18",
			PaymentTerms:       1,
			ProjectDescription: "Re-branding",
			Items:              []validation.ItemPayload{{Name: "Brand Guidelines", Quantity: 1, Price: 1800.90}},
			Status:             domain.StatusPaid,
		},
		{
			BillFrom: sender,
			BillTo: validation.ClientPayload{
				ClientName: "Alex Grim", ClientEmail: "alexgrim@mail.com",
				Street: "84 Church Way", City: "Bradford", PostCode: "BD1 9PB", Country: "United Kingdom",
			},
			InvoiceDate:        "2021-08-21",
			PaymentTerms:       30,
			ProjectDescription: "Graphic Design",
			Items: []validation.ItemPayload{
				{Name: "Banner Design", Quantity: 1, Price: 156.00},
				{Name: "Email Design", Quantity: 2, Price: 200.00},
			},
			Status: domain.StatusPending,
		},
		{
			BillFrom: sender,
			BillTo: validation.ClientPayload{
				ClientName: "Anita Wainwright", ClientEmail: "anita.w@mail.com",
				Street: "63 Warwick Road", City: "Carlisle", PostCode: "CA20 2TG", Country: "United Kingdom",
			},
			InvoiceDate:        "2021-09-12",
			PaymentTerms:       14,
			ProjectDescription: "Logo Re-design",
			Items:              []validation.ItemPayload{{Name: "Logo Re-design", Quantity: 1, Price: 3102.04}},
			Status:             domain.StatusDraft,
		},
	}
}

// Apply creates the demo invoices when the store is empty. It returns the
// number of invoices created.
func Apply(ctx context.Context, store InvoiceStore) (int, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	created := 0
	for _, p := range Invoices() {
		if _, err := store.Create(ctx, p); err != nil {
			return created, fmt.Errorf("create invoice for %q: %w", p.BillTo.ClientName, err)
		}
		created++
	}
	return created, nil
}
