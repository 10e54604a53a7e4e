package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "order_id"},
		{"customerName", "customer_name"},
		{"XMLPayload", "xml_payload"},
		{"ID", "id"},
		{"Name", "name"},
		{"ShippingAddressID", "shipping_address_id"},
		{"already_snake", "already_snake"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"Order-Id", "orderid"},
		{"XMLParser", "xmlparser"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	// A field name and its derived column must normalize identically.
	fields := []string{"OrderID", "CustomerName", "PlacedAt", "XMLPayload"}

	for _, f := range fields {
		assert.Equal(t, NormalizeIdent(f), NormalizeIdent(SnakeCase(f)), f)
	}
}
