package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"invoice-web-app/internal/domain"
	"invoice-web-app/internal/validation"
)

// InvoiceCreator stores a new invoice from a payload.
type InvoiceCreator interface {
	Create(ctx context.Context, p validation.InvoicePayload) (*domain.Invoice, error)
}

// CSVImporter reads invoice CSV exports and creates one invoice per group of
// rows. A row with a client name starts a new invoice; following rows without
// one add line items to it.
type CSVImporter struct {
	reader  *csv.Reader
	creator InvoiceCreator
}

func NewCSVImporter(r io.Reader, creator InvoiceCreator) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{reader: csvr, creator: creator}
}

// Run parses all rows and returns the number of invoices created. The first
// failing invoice aborts the import.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["clientName"]; !ok {
		return 0, errors.New("read headers: clientName column is required")
	}

	var (
		current  *validation.InvoicePayload
		line     = 1
		imported int
	)

	for {
		record, err := i.reader.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		head, item, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("line %d: %w", line, err)
		}

		if head != nil {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = head
		}
		if item != nil {
			if current == nil {
				return imported, fmt.Errorf("line %d: item row before any invoice row", line)
			}
			current.Items = append(current.Items, *item)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, p *validation.InvoicePayload) error {
	if _, err := i.creator.Create(ctx, *p); err != nil {
		return fmt.Errorf("create invoice for %q: %w", p.BillTo.ClientName, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

// parseRow returns the invoice started by the row, if any, and the item it
// carries, if any. Blank rows yield neither.
func parseRow(record []string, index map[string]int) (*validation.InvoicePayload, *validation.ItemPayload, error) {
	var head *validation.InvoicePayload
	if name := pick(record, index, "clientName"); name != "" {
		terms, err := atoi(pick(record, index, "paymentTerms"))
		if err != nil {
			return nil, nil, fmt.Errorf("paymentTerms: %w", err)
		}
		head = &validation.InvoicePayload{
			BillFrom: validation.AddressPayload{
				Street:   pick(record, index, "fromStreet"),
				City:     pick(record, index, "fromCity"),
				PostCode: pick(record, index, "fromPostCode"),
				Country:  pick(record, index, "fromCountry"),
			},
			BillTo: validation.ClientPayload{
				ClientName:  name,
				ClientEmail: pick(record, index, "clientEmail"),
				Street:      pick(record, index, "clientStreet"),
				City:        pick(record, index, "clientCity"),
				PostCode:    pick(record, index, "clientPostCode"),
				Country:     pick(record, index, "clientCountry"),
			},
			InvoiceDate:        pick(record, index, "invoiceDate"),
			PaymentTerms:       terms,
			ProjectDescription: pick(record, index, "projectDescription"),
			Status:             domain.Status(strings.ToLower(pick(record, index, "status"))),
		}
	}

	itemName := pick(record, index, "itemName")
	qtyStr := pick(record, index, "itemQuantity")
	priceStr := pick(record, index, "itemPrice")
	if itemName == "" && qtyStr == "" && priceStr == "" {
		return head, nil, nil
	}
	qty, err := atof(qtyStr)
	if err != nil {
		return nil, nil, fmt.Errorf("itemQuantity: %w", err)
	}
	price, err := atof(priceStr)
	if err != nil {
		return nil, nil, fmt.Errorf("itemPrice: %w", err)
	}
	return head, &validation.ItemPayload{Name: itemName, Quantity: qty, Price: price}, nil
}

func atoi(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func atof(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
