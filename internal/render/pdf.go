// Package render produces printable documents for invoices.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"invoice-web-app/internal/domain"
)

// FileName is the attachment name of an invoice PDF: the code without '#'.
func FileName(inv domain.Invoice) string {
	code := strings.TrimPrefix(inv.InvoiceID, "#")
	if code == "" {
		code = "invoice"
	}
	return code + ".pdf"
}

// InvoicePDF writes a one-page A4 summary of inv to w.
func InvoicePDF(w io.Writer, inv domain.Invoice) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Invoice "+inv.InvoiceID, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(120, 10, tr(inv.InvoiceID), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(70, 10, tr(strings.ToUpper(string(inv.Status))), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(inv.ProjectDescription), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	from := inv.BillFrom
	to := inv.BillTo
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 6, "Bill From", "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	left := []string{from.Street, from.City, from.PostCode, from.Country, ""}
	right := []string{to.ClientName, to.ClientEmail, to.Street, to.City + " " + to.PostCode, to.Country}
	for i := range left {
		pdf.CellFormat(95, 5, tr(left[i]), "", 0, "L", false, 0, "")
		pdf.CellFormat(95, 5, tr(right[i]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.CellFormat(95, 6, "Invoice Date: "+inv.InvoiceDate.String(), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, "Payment Due: "+inv.PaymentDue.String(), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 245)
	pdf.CellFormat(90, 8, "Item Name", "B", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "QTY.", "B", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Price", "B", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Total", "B", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, item := range inv.Items {
		pdf.CellFormat(90, 7, tr(item.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, trimNumber(item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, money(item.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, money(item.Total), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(150, 10, "Amount Due", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 10, money(inv.TotalAmount), "T", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render invoice %s: %w", inv.InvoiceID, err)
	}
	return nil
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func trimNumber(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
