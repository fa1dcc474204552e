package usecase

import "context"

// AssetsUsecase builds downloadable artifacts derived from the settings
// document: the xlsx menu export and the printable storefront QR code.
type AssetsUsecase interface {
	// MenuWorkbook renders the resolved menu catalog as an xlsx workbook
	// and returns the bytes together with a suggested filename.
	MenuWorkbook(ctx context.Context) (data []byte, filename string, err error)

	// SiteQR renders a PNG QR code pointing at the public storefront URL.
	SiteQR() ([]byte, error)
}
