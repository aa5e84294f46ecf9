package service

// QRCodeService generates share QR codes for channel pages.
type QRCodeService interface {
	// GenerateChannelQR returns a PNG image encoding the public URL of the
	// given channel handle.
	GenerateChannelQR(username string) ([]byte, error)
}
