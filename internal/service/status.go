package service

import (
	"fmt"
	"slices"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransition reports whether an order may move from one status to another
func CanTransition(from, to OrderStatus) bool {
	return slices.Contains(orderTransitions[from], to)
}

// CheckTransition returns ErrInvalidStatusTransition when the move is not allowed
func CheckTransition(from, to OrderStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, from, to)
	}
	return nil
}

// StatusChange describes the side effects of moving an order to a new status
type StatusChange struct {
	PaymentStatus PaymentStatus
	InvoiceStatus InvoiceStatus
	Restock       bool
	SetCancelled  bool
	SetDelivered  bool
}

// PlanStatusChange validates a transition and works out what else changes.
// Cancelling restocks and voids the invoice; a paid order becomes refunded.
// Delivering a cash-on-delivery order settles its invoice.
func PlanStatusChange(tx *Transaction, to OrderStatus) (StatusChange, error) {
	if err := CheckTransition(tx.Status, to); err != nil {
		return StatusChange{}, err
	}

	change := StatusChange{PaymentStatus: tx.PaymentStatus}
	switch to {
	case OrderStatusCancelled:
		change.Restock = true
		change.SetCancelled = true
		change.InvoiceStatus = InvoiceStatusVoid
		if tx.PaymentStatus == PaymentStatusPaid {
			change.PaymentStatus = PaymentStatusRefunded
		}
	case OrderStatusDelivered:
		change.SetDelivered = true
		if tx.PaymentMethod == PaymentMethodCOD {
			change.PaymentStatus = PaymentStatusPaid
			change.InvoiceStatus = InvoiceStatusPaid
		}
	}
	return change, nil
}
