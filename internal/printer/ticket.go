package printer

import (
	"fmt"
	"strings"
	"time"

	"pdv_backend/internal/models"
)

const (
	header  = "XRBurguer"
	divider = "------------------------"
	// ESC/POS full cut (GS V 0).
	cutCommand = "\x1d\x56\x00"
)

// Document is a formatted ticket ready to be sent to a sink.
type Document struct {
	OrderID       uint
	ControlNumber string
	Body          string
}

// Format renders the fixed-layout kitchen ticket: header with control and
// pager numbers, one block per item with its add-ons and note, the total and
// a cut command.
func Format(order *models.Order, now time.Time) Document {
	var b strings.Builder

	b.WriteString(header + "\n")
	b.WriteString("PEDIDO #" + order.ControlNumber + "\n")
	b.WriteString("Pager: " + order.PagerNumber + "\n")
	b.WriteString(divider + "\n")

	for _, item := range order.Items {
		fmt.Fprintf(&b, "%dx %s\n", item.Quantity, item.ProductName)
		for _, sel := range item.AddOns {
			if sel.Quantity > 1 {
				fmt.Fprintf(&b, "  + %dx %s\n", sel.Quantity, sel.Name)
			} else {
				fmt.Fprintf(&b, "  + %s\n", sel.Name)
			}
		}
		if item.Note != "" {
			fmt.Fprintf(&b, "  Obs: %s\n", item.Note)
		}
		b.WriteString("\n")
	}

	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "Total: R$ %s\n", order.Total.StringFixed(2))
	b.WriteString(now.Format("02/01/2006 15:04:05") + "\n")
	b.WriteString(cutCommand)

	return Document{
		OrderID:       order.ID,
		ControlNumber: order.ControlNumber,
		Body:          b.String(),
	}
}
