package model

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderFailed    OrderStatus = "FAILED"
)

type OrderDetail struct {
	ID               string     `json:"id"`
	TicketType       TicketType `json:"ticketType"`
	StartStationCode *string    `json:"startStationCode,omitempty"` // P2P only
	EndStationCode   *string    `json:"endStationCode,omitempty"`   // P2P only
	UnitPrice        float64    `json:"unitPrice"`
	BaseTotal        float64    `json:"baseTotal"`
	DiscountTotal    float64    `json:"discountTotal"`
	FinalTotal       float64    `json:"finalTotal"`
}

type Order struct {
	ID                string        `json:"id"`
	StaffID           string        `json:"staffId"`
	CustomerID        *string       `json:"customerId,omitempty"`
	DiscountPackageID *string       `json:"discountPackageId,omitempty"`
	VoucherID         *string       `json:"voucherId,omitempty"`
	BaseTotal         float64       `json:"baseTotal"`
	DiscountTotal     float64       `json:"discountTotal"`
	FinalTotal        float64       `json:"finalTotal"`
	PaymentMethod     string        `json:"paymentMethod"`
	Status            OrderStatus   `json:"status"`
	CreatedAt         time.Time     `json:"createdAt"`
	Details           []OrderDetail `json:"details"`
}

type OrderSummary struct {
	TotalOrders  int     `json:"totalOrders"`
	Pending      int     `json:"pending"`
	Completed    int     `json:"completed"`
	Failed       int     `json:"failed"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// CheckoutItem is one cart row; it expands into one order detail per
// ticket purchased.
type CheckoutItem struct {
	TicketType       TicketType `json:"ticketType" validate:"required,oneof=P2P TIMED"`
	StartStationCode *string    `json:"startStationCode" validate:"omitempty"`
	EndStationCode   *string    `json:"endStationCode" validate:"omitempty"`
	UnitPrice        float64    `json:"unitPrice" validate:"required,gt=0"`
	Quantity         int        `json:"quantity" validate:"required,gt=0"`
}

type CheckoutInput struct {
	CustomerID        *string        `json:"customerId" validate:"omitempty"`
	DiscountPackageID *string        `json:"discountPackageId" validate:"omitempty"`
	VoucherID         *string        `json:"voucherId" validate:"omitempty"`
	PaymentMethod     string         `json:"paymentMethod" validate:"required,oneof=CASH CARD VNPAY"`
	Items             []CheckoutItem `json:"items" validate:"required,min=1,dive"`
}

// CheckoutRequest is the expanded payload sent to the upstream checkout
// endpoint: one detail row per purchased ticket.
type CheckoutRequest struct {
	StaffID           string        `json:"staffId"`
	CustomerID        *string       `json:"customerId,omitempty"`
	DiscountPackageID *string       `json:"discountPackageId,omitempty"`
	VoucherID         *string       `json:"voucherId,omitempty"`
	PaymentMethod     string        `json:"paymentMethod"`
	BaseTotal         float64       `json:"baseTotal"`
	DiscountTotal     float64       `json:"discountTotal"`
	FinalTotal        float64       `json:"finalTotal"`
	Details           []OrderDetail `json:"details"`
}
