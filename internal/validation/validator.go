// Package validation checks inbound payloads before they become domain values.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"invoice-web-app/internal/domain"
)

// Mode selects the rule set applied to an invoice payload.
type Mode int

const (
	Create Mode = iota
	Update
)

// FieldError is a single violation.
type FieldError struct {
	Field     string `json:"field"`
	FormField string `json:"formField"`
	Message   string `json:"message"`
}

// Errors collects every violation found in one pass.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(e.Fields))
}

func (e *Errors) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, FormField: FormField(field), Message: message})
}

// messages is keyed by the json name of the failing field, or by
// "<name>.<tag>" when one rule of the field needs its own wording.
var messages = map[string]string{
	"street":             "Street is required",
	"city":               "City is required",
	"postCode":           "Post code is required",
	"country":            "Country is required",
	"clientName":         "Client name is required",
	"clientEmail":        "Please provide a valid email",
	"invoiceDate":        "Please provide a valid date",
	"paymentTerms":       "Payment terms must be 1, 7, 14, or 30 days",
	"projectDescription": "Project description is required",
	"items":              "At least one item is required",
	"name":               "Item name is required",
	"quantity":           "Quantity must be greater than 0",
	"quantity.lte":       "Quantity must be at most 1000000",
	"price":              "Price must be greater than 0",
	"price.lte":          "Price must be at most 1000000000",
	"status":             "Status must be pending, paid, or draft",
	"theme":              "Theme must be light or dark",
	"profileImage":       "Profile image must be at most 2 MiB",
}

const invoiceIDMessage = "Invoice ID must look like #AB1234"

// Validator wraps a configured go-playground validator. It is safe for
// concurrent use.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the custom tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	})
	// max counts runes on strings; maxbytes bounds the encoded size.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	return &Validator{v: v}
}

// Invoice validates a create or update payload. The returned error is
// always a *Errors when the payload itself is at fault.
func (val *Validator) Invoice(p InvoicePayload, mode Mode) error {
	errs := &Errors{}
	if mode == Update && p.InvoiceID != "" {
		if !domain.InvoiceIDPattern.MatchString(strings.ToUpper(strings.TrimSpace(p.InvoiceID))) {
			errs.add("invoiceId", invoiceIDMessage)
		}
	}
	if err := val.collect(p, errs); err != nil {
		return err
	}
	if len(errs.Fields) > 0 {
		return errs
	}
	return nil
}

// Status validates the body of a status-only update.
func (val *Validator) Status(p StatusPayload) error {
	return val.Struct(p)
}

// Struct validates any tagged payload of this package.
func (val *Validator) Struct(p any) error {
	errs := &Errors{}
	if err := val.collect(p, errs); err != nil {
		return err
	}
	if len(errs.Fields) > 0 {
		return errs
	}
	return nil
}

func (val *Validator) collect(p any, errs *Errors) error {
	err := val.v.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate payload: %w", err)
	}
	for _, fe := range verrs {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg, ok = messages[fe.Field()]
		}
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		errs.add(path, msg)
	}
	return nil
}

// ValidateID checks that id is a store identifier in canonical form.
func ValidateID(id string) error {
	if len(id) != 36 {
		return domain.ErrMalformedID
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrMalformedID
	}
	return nil
}

// FormField flattens a dotted path into the name the client form uses:
// billFrom.street becomes billFromStreet.
func FormField(path string) string {
	parts := strings.Split(path, ".")
	var b strings.Builder
	for i, part := range parts {
		if i == 0 || part == "" {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
