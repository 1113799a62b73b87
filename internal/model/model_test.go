package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPrice_JSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantValue string
	}{
		{name: "number", input: `750`, wantValid: true, wantValue: "750"},
		{name: "quoted number", input: `"19.5"`, wantValid: true, wantValue: "19.5"},
		{name: "null", input: `null`, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Price
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			assert.Equal(t, tt.wantValid, p.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantValue, p.Decimal.String())
			}
		})
	}
}

func TestPrice_MarshalProduct(t *testing.T) {
	priced := Product{ID: "p1", Title: "Timer", Price: NewPrice(500)}
	data, err := json.Marshal(priced)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":500`)

	unpriced := Product{ID: "p2", Title: "Priceless", Price: NoPrice()}
	data, err = json.Marshal(unpriced)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":null`)
}

func TestPrice_YAML(t *testing.T) {
	src := `
- id: a
  title: Priced
  price: 1450
- id: b
  title: Unpriced
  price: null
- id: c
  title: Missing
`
	var products []Product
	require.NoError(t, yaml.Unmarshal([]byte(src), &products))
	require.Len(t, products, 3)

	assert.True(t, products[0].Purchasable())
	assert.Equal(t, "1450", products[0].Price.Amount().String())
	assert.False(t, products[1].Purchasable())
	assert.False(t, products[2].Purchasable())
	assert.True(t, products[1].Price.Amount().IsZero())
}

func TestPrice_YAMLRejectsGarbage(t *testing.T) {
	var p struct {
		Price Price `yaml:"price"`
	}
	err := yaml.Unmarshal([]byte("price: lots"), &p)
	assert.Error(t, err)
}

func TestOrder_GetSet(t *testing.T) {
	var o Order
	require.NoError(t, o.Set(FieldAddress, "Main st. 1"))
	require.NoError(t, o.Set(FieldPaymentMethod, "card"))
	require.NoError(t, o.Set(FieldEmail, "a@b.co"))
	require.NoError(t, o.Set(FieldPhone, "+79991234567"))

	assert.Equal(t, "Main st. 1", o.Get(FieldAddress))
	assert.Equal(t, PaymentCard, o.PaymentMethod)
	assert.Equal(t, "a@b.co", o.Get(FieldEmail))
	assert.Equal(t, "+79991234567", o.Get(FieldPhone))

	assert.Error(t, o.Set(OrderField("items"), "x"))
}

func TestParseOrderField(t *testing.T) {
	f, ok := ParseOrderField("paymentMethod")
	assert.True(t, ok)
	assert.Equal(t, FieldPaymentMethod, f)

	_, ok = ParseOrderField("total")
	assert.False(t, ok)
}

func TestFormErrors_Messages(t *testing.T) {
	errs := FormErrors{
		FieldEmail:   "bad contacts",
		FieldPhone:   "bad contacts",
		FieldAddress: "no address",
	}

	assert.Equal(t, "bad contacts", errs.Messages(FieldEmail, FieldPhone))
	assert.Equal(t, "no address", errs.Messages(FieldAddress, FieldPaymentMethod))
	assert.Equal(t, "", FormErrors{}.Messages(FieldEmail))
	assert.True(t, errs.Has(FieldPhone))
	assert.False(t, errs.Has(FieldPaymentMethod))

	clone := errs.Clone()
	clone[FieldAddress] = "changed"
	assert.Equal(t, "no address", errs[FieldAddress])
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PaymentCard.Valid())
	assert.True(t, PaymentCash.Valid())
	assert.False(t, PaymentNone.Valid())
	assert.False(t, PaymentMethod("online").Valid())
}
