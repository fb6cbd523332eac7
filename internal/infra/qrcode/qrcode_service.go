package qrcode

import (
	"fmt"
	"strings"

	"redcolabora/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const businessPathPrefix = "/business/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// BusinessLink returns the absolute URL of a business page.
func (s *qrcodeService) BusinessLink(businessID uuid.UUID) string {
	return s.baseURL + businessPathPrefix + businessID.String()
}

// GenerateBusinessQR generates a QR code linking to the business page
func (s *qrcodeService) GenerateBusinessQR(businessID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.BusinessLink(businessID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
