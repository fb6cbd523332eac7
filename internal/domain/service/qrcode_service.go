package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share links and QR codes for business pages.
type QRCodeService interface {
	// BusinessLink returns the public URL of a business page.
	BusinessLink(businessID uuid.UUID) string

	// GenerateBusinessQR renders a PNG QR code pointing at the business page
	GenerateBusinessQR(businessID uuid.UUID) ([]byte, error)
}
