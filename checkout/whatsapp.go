// Package checkout turns a cart into a WhatsApp order handoff: a
// human-readable message and a wa.me deep link.
package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"tienda-backend/cart"
)

// ErrNotConfigured means no destination number is set; callers surface this
// as a disabled checkout affordance, not a runtime failure.
var ErrNotConfigured = errors.New("whatsapp number not configured")

var nonDigits = regexp.MustCompile(`\D`)

// BuildMessage renders the order text, items in cart order, 1-based.
func BuildMessage(items []cart.Item, subtotal decimal.Decimal) string {
	var b strings.Builder
	b.WriteString("¡Hola! Quiero realizar el siguiente pedido:\n\n")

	for i, item := range items {
		price, _ := decimal.NewFromString(item.Price)
		lineTotal := price.Mul(decimal.NewFromInt(int64(item.Quantity)))

		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   - Talle: %s\n", item.Size)
		fmt.Fprintf(&b, "   - Color: %s\n", item.Color)
		fmt.Fprintf(&b, "   - Cantidad: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   - Precio: $%s\n\n", lineTotal.StringFixed(2))
	}

	fmt.Fprintf(&b, "*Total: $%s*\n\n", subtotal.StringFixed(2))
	b.WriteString("¿Cuál es el costo de envío a mi dirección?")

	return b.String()
}

// Link builds the wa.me deep link for the given destination number. Every
// non-digit character of the number is stripped first.
func Link(phone string, items []cart.Item, subtotal decimal.Decimal) (string, error) {
	digits := nonDigits.ReplaceAllString(phone, "")
	if digits == "" {
		return "", ErrNotConfigured
	}

	message := BuildMessage(items, subtotal)
	// wa.me keeps '+' literal in the text parameter, so spaces stay
	// percent-encoded.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")

	return "https://wa.me/" + digits + "?text=" + encoded, nil
}
