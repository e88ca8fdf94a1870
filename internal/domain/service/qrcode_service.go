package service

// QRCodeService renders QR codes pointing at an institute's login portal.
type QRCodeService interface {
	// PortalURL returns the login URL for the institute slug.
	PortalURL(slug string) string

	// GeneratePortalQR returns a PNG encoding PortalURL(slug).
	GeneratePortalQR(slug string) ([]byte, error)
}
