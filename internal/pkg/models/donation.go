package models

import (
	"fmt"
	"time"
)

// DonationType classifies the religious intent of a donation
type DonationType string

// Donation types
const (
	TypeZakat   DonationType = "Zakat"
	TypeSadqah  DonationType = "Sadqah"
	TypeFitra   DonationType = "Fitra"
	TypeGeneral DonationType = "General"
)

// Valid reports whether the donation type is one of the known values
func (t DonationType) Valid() bool {
	switch t {
	case TypeZakat, TypeSadqah, TypeFitra, TypeGeneral:
		return true
	}
	return false
}

// DonationCategory classifies where the funds are directed
type DonationCategory string

// Donation categories
const (
	CategoryFood      DonationCategory = "Food"
	CategoryEducation DonationCategory = "Education"
	CategoryMedical   DonationCategory = "Medical"
	CategoryGeneral   DonationCategory = "General"
)

// Valid reports whether the category is one of the known values
func (c DonationCategory) Valid() bool {
	switch c {
	case CategoryFood, CategoryEducation, CategoryMedical, CategoryGeneral:
		return true
	}
	return false
}

// PaymentMethod is how the donor pays
type PaymentMethod string

// Payment methods
const (
	MethodCash   PaymentMethod = "Cash"
	MethodBank   PaymentMethod = "Bank"
	MethodOnline PaymentMethod = "Online"
)

// Valid reports whether the payment method is one of the known values
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodBank, MethodOnline:
		return true
	}
	return false
}

// DonationStatus is the verification state of a donation
type DonationStatus string

// Donation statuses
const (
	StatusPending  DonationStatus = "Pending"
	StatusVerified DonationStatus = "Verified"
)

// Donation represents a single contribution record
type Donation struct {
	ID              string           `json:"_id"`
	TransactionID   string           `json:"transactionId"`
	User            *UserRef         `json:"user,omitempty"`
	Campaign        *CampaignRef     `json:"campaign,omitempty"`
	Amount          float64          `json:"amount"`
	Type            DonationType     `json:"type"`
	Category        DonationCategory `json:"category"`
	PaymentMethod   PaymentMethod    `json:"paymentMethod"`
	Status          DonationStatus   `json:"status"`
	StripePaymentID *string          `json:"stripePaymentId"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// CreateDonationRequest is the payload for POST /donations.
// StripePaymentID must be set for Online payments and nil otherwise.
type CreateDonationRequest struct {
	Amount          float64          `json:"amount" validate:"required,gt=0"`
	Type            DonationType     `json:"type" validate:"required"`
	Category        DonationCategory `json:"category" validate:"required"`
	PaymentMethod   PaymentMethod    `json:"paymentMethod" validate:"required"`
	CampaignID      *string          `json:"campaignId"`
	StripePaymentID *string          `json:"stripePaymentId"`
}

// Validate checks the enum fields and the Online/stripePaymentId invariant
func (r *CreateDonationRequest) Validate() error {
	if !r.Type.Valid() {
		return fmt.Errorf("invalid donation type: %s", r.Type)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("invalid donation category: %s", r.Category)
	}
	if !r.PaymentMethod.Valid() {
		return fmt.Errorf("invalid payment method: %s", r.PaymentMethod)
	}
	if r.PaymentMethod == MethodOnline && (r.StripePaymentID == nil || *r.StripePaymentID == "") {
		return fmt.Errorf("online donations require a payment confirmation id")
	}
	if r.PaymentMethod != MethodOnline && r.StripePaymentID != nil {
		return fmt.Errorf("%s donations must not carry a payment confirmation id", r.PaymentMethod)
	}
	return nil
}

// UpdateDonationStatusRequest is the payload for PUT /donations/:id/status
type UpdateDonationStatusRequest struct {
	Status DonationStatus `json:"status"`
}

// DonationStats is the aggregate returned by GET /donations/stats
type DonationStats struct {
	TotalDonations int     `json:"totalDonations"`
	TotalAmount    float64 `json:"totalAmount"`
	VerifiedAmount float64 `json:"verifiedAmount"`
	PendingAmount  float64 `json:"pendingAmount"`
}

// PaymentIntentRequest asks the server to open a payment intent for an
// Online donation
type PaymentIntentRequest struct {
	Amount float64 `json:"amount"`
}

// PaymentIntentResponse carries the provider client secret used to
// capture the card payment
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
