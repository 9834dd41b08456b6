package model

import "time"

type PackageStatus string

const (
	PackageActive     PackageStatus = "ACTIVE"
	PackageTerminated PackageStatus = "TERMINATED"
)

type DiscountPackage struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	DiscountPercentage float64       `json:"discountPercentage"` // 0..1
	DurationDays       int           `json:"durationDays"`
	Status             PackageStatus `json:"status"`
}

type AssignmentStatus string

const (
	AssignmentActivated AssignmentStatus = "ACTIVATED"
	AssignmentExpired   AssignmentStatus = "EXPIRED"
	AssignmentCancelled AssignmentStatus = "CANCELLED"
)

// AccountDiscountPackage binds one account to one package for an
// activation window.
type AccountDiscountPackage struct {
	ID                string           `json:"id"`
	AccountID         string           `json:"accountId"`
	DiscountPackageID string           `json:"discountPackageId"`
	ActivateDate      time.Time        `json:"activateDate"`
	ValidUntil        time.Time        `json:"validUntil"`
	Status            AssignmentStatus `json:"status"`
	DocumentURL       string           `json:"documentUrl,omitempty"`
}

type SaveDiscountPackageInput struct {
	Name               string  `json:"name" validate:"required"`
	Description        string  `json:"description" validate:"omitempty"`
	DiscountPercentage float64 `json:"discountPercentage" validate:"required,gt=0,lte=1"`
	DurationDays       int     `json:"durationDays" validate:"required,gt=0"`
}

type AssignPackageInput struct {
	AccountID         string `form:"accountId" validate:"required"`
	DiscountPackageID string `form:"discountPackageId" validate:"required"`
}
