// Package normalize derives the computed fields of an invoice.
//
// All money math is done in decimal and rounded half away from zero to two
// places, so 2 x 50.005 yields 100.01 rather than the float64 artefact.
package normalize

import (
	"strings"

	"github.com/shopspring/decimal"

	"invoice-web-app/internal/domain"
)

// Invoice returns a copy of inv with trimmed strings, a lowercase client
// email, and freshly computed item totals, total amount, and payment due
// date. Applying it to its own output is a no-op.
func Invoice(inv domain.Invoice) domain.Invoice {
	out := inv
	out.InvoiceID = strings.ToUpper(strings.TrimSpace(inv.InvoiceID))
	out.BillFrom = domain.Address{
		Street:   strings.TrimSpace(inv.BillFrom.Street),
		City:     strings.TrimSpace(inv.BillFrom.City),
		PostCode: strings.TrimSpace(inv.BillFrom.PostCode),
		Country:  strings.TrimSpace(inv.BillFrom.Country),
	}
	out.BillTo = domain.Client{
		ClientName:  strings.TrimSpace(inv.BillTo.ClientName),
		ClientEmail: strings.ToLower(strings.TrimSpace(inv.BillTo.ClientEmail)),
		Street:      strings.TrimSpace(inv.BillTo.Street),
		City:        strings.TrimSpace(inv.BillTo.City),
		PostCode:    strings.TrimSpace(inv.BillTo.PostCode),
		Country:     strings.TrimSpace(inv.BillTo.Country),
	}
	out.ProjectDescription = strings.TrimSpace(inv.ProjectDescription)

	items := make([]domain.Item, len(inv.Items))
	sum := decimal.Zero
	for i, item := range inv.Items {
		total := LineTotal(item.Quantity, item.Price)
		sum = sum.Add(total)
		items[i] = domain.Item{
			Name:     strings.TrimSpace(item.Name),
			Quantity: item.Quantity,
			Price:    item.Price,
			Total:    total.InexactFloat64(),
		}
	}
	out.Items = items
	out.TotalAmount = Round2(sum).InexactFloat64()
	out.PaymentDue = PaymentDue(inv.InvoiceDate, inv.PaymentTerms)
	return out
}

// LineTotal is round2(quantity * price).
func LineTotal(quantity, price float64) decimal.Decimal {
	return Round2(decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(price)))
}

// Round2 rounds half away from zero to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PaymentDue is invoiceDate plus terms calendar days. A zero date stays zero.
func PaymentDue(invoiceDate domain.Date, terms int) domain.Date {
	if invoiceDate.IsZero() {
		return domain.Date{}
	}
	return invoiceDate.AddDays(terms)
}
