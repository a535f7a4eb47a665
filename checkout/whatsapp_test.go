package checkout

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda-backend/cart"
)

func TestBuildMessageFormat(t *testing.T) {
	items := []cart.Item{
		{ProductID: "p1", Name: "Remera", Price: "10.00", Size: "M", Color: "Negro", Quantity: 2},
	}
	subtotal := decimal.RequireFromString("20.00")

	message := BuildMessage(items, subtotal)

	expected := "¡Hola! Quiero realizar el siguiente pedido:\n\n" +
		"1. Remera\n" +
		"   - Talle: M\n" +
		"   - Color: Negro\n" +
		"   - Cantidad: 2\n" +
		"   - Precio: $20.00\n\n" +
		"*Total: $20.00*\n\n" +
		"¿Cuál es el costo de envío a mi dirección?"
	assert.Equal(t, expected, message)
}

func TestBuildMessageNumbersItemsInCartOrder(t *testing.T) {
	items := []cart.Item{
		{Name: "Remera", Price: "10.00", Size: "M", Color: "Negro", Quantity: 1},
		{Name: "Pantalón", Price: "45.50", Size: "40", Color: "Azul", Quantity: 2},
	}

	message := BuildMessage(items, decimal.RequireFromString("101.00"))

	assert.Contains(t, message, "1. Remera\n")
	assert.Contains(t, message, "2. Pantalón\n")
	assert.Contains(t, message, "   - Precio: $91.00\n")
	assert.Contains(t, message, "*Total: $101.00*")
	assert.Less(t, strings.Index(message, "1. Remera"), strings.Index(message, "2. Pantalón"))
}

func TestLinkStripsNonDigitsFromPhone(t *testing.T) {
	link, err := Link("+54 9 11 1234-5678", nil, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5491112345678?text="), link)
}

func TestLinkEncodesMessage(t *testing.T) {
	items := []cart.Item{
		{Name: "Remera", Price: "10.00", Size: "M", Color: "Negro", Quantity: 2},
	}

	link, err := Link("5491112345678", items, decimal.RequireFromString("20.00"))
	require.NoError(t, err)

	_, query, found := strings.Cut(link, "?text=")
	require.True(t, found)
	assert.NotContains(t, query, "+", "spaces must stay percent-encoded for wa.me")
	assert.Contains(t, query, "%20")
	assert.Contains(t, query, "Remera")
}

func TestLinkWithoutNumberIsNotConfigured(t *testing.T) {
	_, err := Link("", nil, decimal.Zero)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = Link("sin número", nil, decimal.Zero)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
