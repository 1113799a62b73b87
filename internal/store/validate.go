package store

import "github.com/Iron-Ham/larek/internal/model"

// Messages shown under the checkout forms.
const (
	MsgInvalidEmail    = "Enter a valid email"
	MsgInvalidPhone    = "Enter a phone in +7XXXXXXXXXX format"
	MsgInvalidContacts = "Enter a valid email and a phone in +7XXXXXXXXXX format"
	MsgAddressRequired = "Enter a delivery address"
	MsgPaymentRequired = "Choose a payment method"
)

// Check validates the checkout step that field belongs to and returns a new
// error map. It does not touch any state.
//
// Contact fields are checked together; when both are wrong a single combined
// message is stored under both keys. Delivery fields short-circuit: the
// payment method is only checked once the address is present.
func Check(order model.Order, field model.OrderField) model.FormErrors {
	errs := model.FormErrors{}

	if field.IsContact() {
		emailOK := model.ValidEmail(order.Email)
		phoneOK := model.ValidPhone(order.Phone)
		switch {
		case !emailOK && !phoneOK:
			errs[model.FieldEmail] = MsgInvalidContacts
			errs[model.FieldPhone] = MsgInvalidContacts
		case !emailOK:
			errs[model.FieldEmail] = MsgInvalidEmail
		case !phoneOK:
			errs[model.FieldPhone] = MsgInvalidPhone
		}
		return errs
	}

	switch {
	case order.Address == "":
		errs[model.FieldAddress] = MsgAddressRequired
	case !order.PaymentMethod.Valid():
		errs[model.FieldPaymentMethod] = MsgPaymentRequired
	}
	return errs
}
