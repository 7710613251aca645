package render

import (
	"bytes"
	"testing"

	"invoice-web-app/internal/domain"
)

func TestInvoicePDF(t *testing.T) {
	inv := domain.Invoice{
		InvoiceID:          "#RT3080",
		BillFrom:           domain.Address{Street: "19 Union Terrace", City: "London", PostCode: "E1 3EZ", Country: "United Kingdom"},
		BillTo:             domain.Client{ClientName: "Jensen Huang", ClientEmail: "jensenh@mail.com", Street: "106 Kendell Street", City: "Sharrington", PostCode: "NR24 5WQ", Country: "United Kingdom"},
		InvoiceDate:        domain.NewDate(2021, 8, 18),
		PaymentDue:         domain.NewDate(2021, 8, 19),
		ProjectDescription: "Re-branding",
		Items:              []domain.Item{{Name: "Brand Guidelines", Quantity: 1, Price: 1800.9, Total: 1800.9}},
		TotalAmount:        1800.9,
		Status:             domain.StatusPaid,
	}

	var buf bytes.Buffer
	if err := InvoicePDF(&buf, inv); err != nil {
		t.Fatalf("InvoicePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(domain.Invoice{InvoiceID: "#RT3080"}); got != "RT3080.pdf" {
		t.Fatalf("unexpected file name %q", got)
	}
	if got := FileName(domain.Invoice{}); got != "invoice.pdf" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestTrimNumber(t *testing.T) {
	cases := map[float64]string{2: "2", 1.5: "1.5", 0.25: "0.25"}
	for in, want := range cases {
		if got := trimNumber(in); got != want {
			t.Fatalf("trimNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
