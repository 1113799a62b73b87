package model

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\+7\d{10}$`)
)

// ValidEmail reports whether s looks like name@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s is a +7 number with ten digits.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// PaymentMethod is how the buyer pays for the order.
type PaymentMethod string

const (
	PaymentNone PaymentMethod = ""
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// Valid reports whether the method is one the shop accepts.
func (p PaymentMethod) Valid() bool {
	return p == PaymentCard || p == PaymentCash
}

// OrderField names an editable field of the draft order.
type OrderField string

const (
	FieldEmail         OrderField = "email"
	FieldPhone         OrderField = "phone"
	FieldAddress       OrderField = "address"
	FieldPaymentMethod OrderField = "paymentMethod"
)

// OrderFields lists every editable field in form order.
func OrderFields() []OrderField {
	return []OrderField{FieldAddress, FieldPaymentMethod, FieldEmail, FieldPhone}
}

// ParseOrderField converts a field name into an OrderField.
func ParseOrderField(name string) (OrderField, bool) {
	for _, f := range OrderFields() {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// IsContact reports whether the field belongs to the contacts step.
func (f OrderField) IsContact() bool {
	return f == FieldEmail || f == FieldPhone
}

// Order is the draft order the buyer fills in across the two checkout steps.
// Items and total are not stored here; they are derived from the basket.
type Order struct {
	Email         string
	Phone         string
	Address       string
	PaymentMethod PaymentMethod
}

// Get returns the current value of a field.
func (o Order) Get(field OrderField) string {
	switch field {
	case FieldEmail:
		return o.Email
	case FieldPhone:
		return o.Phone
	case FieldAddress:
		return o.Address
	case FieldPaymentMethod:
		return string(o.PaymentMethod)
	}
	return ""
}

// Set writes a field value. Unknown fields are rejected.
func (o *Order) Set(field OrderField, value string) error {
	switch field {
	case FieldEmail:
		o.Email = value
	case FieldPhone:
		o.Phone = value
	case FieldAddress:
		o.Address = value
	case FieldPaymentMethod:
		o.PaymentMethod = PaymentMethod(value)
	default:
		return fmt.Errorf("unknown order field %q", field)
	}
	return nil
}

// FormErrors maps order fields to human-readable messages.
// It is rebuilt from scratch on every validation, never patched.
type FormErrors map[OrderField]string

// Clone returns an independent copy.
func (e FormErrors) Clone() FormErrors {
	out := make(FormErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Empty reports whether there are no errors.
func (e FormErrors) Empty() bool {
	return len(e) == 0
}

// Has reports whether any of the given fields has an error.
func (e FormErrors) Has(fields ...OrderField) bool {
	for _, f := range fields {
		if e[f] != "" {
			return true
		}
	}
	return false
}

// Messages joins the messages of the given fields with "; ", in field order.
// A message shared by several fields appears once.
func (e FormErrors) Messages(fields ...OrderField) string {
	var parts []string
	seen := make(map[string]bool)
	for _, f := range fields {
		msg := e[f]
		if msg == "" || seen[msg] {
			continue
		}
		seen[msg] = true
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}

// OrderRequest is the body of POST /order.
type OrderRequest struct {
	Email         string        `json:"email" validate:"required,shop_email"`
	Phone         string        `json:"phone" validate:"required,shop_phone"`
	Address       string        `json:"address" validate:"required"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required,oneof=card cash"`
	Items         []string      `json:"items" validate:"required,min=1,dive,required"`
	Total         Amount        `json:"total"`
}

// OrderResult is the response of a successful POST /order.
type OrderResult struct {
	ID    string `json:"id"`
	Total Amount `json:"total"`
}

// ErrorResponse is the body the API sends with a non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
