package model

import "time"

type VoucherStatus string

const (
	VoucherPreserved VoucherStatus = "PRESERVED"
	VoucherValid     VoucherStatus = "VALID"
	VoucherUsed      VoucherStatus = "USED"
	VoucherExpired   VoucherStatus = "EXPIRED"
	VoucherRevoked   VoucherStatus = "REVOKED"
)

// Voucher status transitions are driven by the backend; the CMS only
// displays and issues/revokes them.
type Voucher struct {
	ID                   string        `json:"id"`
	OwnerID              string        `json:"ownerId"`
	Code                 string        `json:"code"`
	DiscountAmount       float64       `json:"discountAmount"`
	MinTransactionAmount float64       `json:"minTransactionAmount"`
	ValidFrom            time.Time     `json:"validFrom"`
	ValidUntil           time.Time     `json:"validUntil"`
	Status               VoucherStatus `json:"status"`
}

type VoucherSummary struct {
	TotalVouchers int `json:"totalVouchers"`
	Preserved     int `json:"preserved"`
	Valid         int `json:"valid"`
	Used          int `json:"used"`
	Expired       int `json:"expired"`
	Revoked       int `json:"revoked"`
}

type CreateVoucherInput struct {
	OwnerID              string    `json:"ownerId" validate:"required"`
	DiscountAmount       float64   `json:"discountAmount" validate:"required,gt=0"`
	MinTransactionAmount float64   `json:"minTransactionAmount" validate:"gte=0"`
	ValidFrom            time.Time `json:"validFrom" validate:"required"`
	ValidUntil           time.Time `json:"validUntil" validate:"required,gtfield=ValidFrom"`
}

type UpdateVoucherInput struct {
	DiscountAmount       *float64   `json:"discountAmount" validate:"omitempty,gt=0"`
	MinTransactionAmount *float64   `json:"minTransactionAmount" validate:"omitempty,gte=0"`
	ValidUntil           *time.Time `json:"validUntil" validate:"omitempty"`
}
