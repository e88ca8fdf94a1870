package qrcode

import (
	"net/url"
	"strings"

	"examadda/config"
	"examadda/internal/domain/entity"
	"examadda/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	portalPath  = "/login/institute/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeServiceFromConfig builds the portal QR service from the qrcode config section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
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

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// PortalURL returns the tenant login page for the slug. The slug is normalized first
// so that any spelling of an institute name lands on the same portal.
func (s *qrcodeService) PortalURL(slug string) string {
	return s.baseURL + portalPath + url.PathEscape(entity.NormalizeSlug(slug))
}

// GeneratePortalQR generates a PNG QR code for an institute login portal
func (s *qrcodeService) GeneratePortalQR(slug string) ([]byte, error) {
	if entity.NormalizeSlug(slug) == "" {
		return nil, errors.New("slug is empty after normalization")
	}

	qrCode, err := qrcode.New(s.PortalURL(slug), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
