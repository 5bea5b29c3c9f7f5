package service

import (
	"fmt"
	"strings"

	"swaad-sutra/internal/domain"
)

const notifyChannel = "whatsapp"

// One builder per status keeps the dispatch policy exhaustive and testable
// per status in isolation. The delivered and cancelled templates leave the
// flat number out; those messages may be forwarded outside the building.
var statusMessages = map[domain.Status]func(o *domain.Order) string{
	domain.StatusNew: func(o *domain.Order) string {
		return fmt.Sprintf("Namaste %s! Order #%d received for flat %s.\n%s\nTotal: ₹%d\nPayment on collection.",
			o.CustomerName, o.ID, o.FlatNumber, itemLines(o), o.TotalAmount)
	},
	domain.StatusCooking: func(o *domain.Order) string {
		return fmt.Sprintf("Order #%d for flat %s is on the stove! 🍳\n%s\nTotal: ₹%d",
			o.ID, o.FlatNumber, itemLines(o), o.TotalAmount)
	},
	domain.StatusReady: func(o *domain.Order) string {
		return fmt.Sprintf("%s, order #%d is ready for collection from flat %s. 🍽️\n%s\nTotal: ₹%d",
			o.CustomerName, o.ID, o.FlatNumber, itemLines(o), o.TotalAmount)
	},
	domain.StatusDelivered: func(o *domain.Order) string {
		return fmt.Sprintf("Order #%d delivered. Thank you, %s!\n%s\nTotal: ₹%d",
			o.ID, o.CustomerName, itemLines(o), o.TotalAmount)
	},
	domain.StatusCancelled: func(o *domain.Order) string {
		return fmt.Sprintf("Order #%d has been cancelled.\nReason: %s\n%s\nTotal: ₹%d",
			o.ID, o.CancelReason, itemLines(o), o.TotalAmount)
	},
}

// Decide maps (order snapshot, new status) to a notification intent, or nil
// when nothing should be sent: no phone on record, an unknown status, or a
// no-op edit. It only decides; it never sends.
func Decide(order *domain.Order, newStatus domain.Status) *domain.NotificationIntent {
	if order.Phone == "" {
		return nil
	}
	if newStatus == order.Status {
		return nil
	}
	build, ok := statusMessages[newStatus]
	if !ok {
		return nil
	}

	snapshot := *order
	snapshot.Status = newStatus
	return &domain.NotificationIntent{
		Channel: notifyChannel,
		Address: order.Phone,
		Body:    build(&snapshot),
		OrderID: order.ID,
		Status:  newStatus,
	}
}

func itemLines(o *domain.Order) string {
	lines := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		line := fmt.Sprintf("- %s × %d", item.Name, item.Qty)
		if item.Unit != "" {
			line += fmt.Sprintf(" (%s)", item.Unit)
		}
		line += fmt.Sprintf(": ₹%d", item.Subtotal())
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
