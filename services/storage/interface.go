package storage

import "context"

// StorageService handles hosted media for listings.
type StorageService interface {
	// UploadListingImage uploads an image (base64 data URI) and returns the
	// permanent public URL plus the asset's public id, which callers keep
	// for deletion.
	UploadListingImage(ctx context.Context, image string) (url string, publicID string, err error)
	// DeleteImage removes a previously uploaded image by its public id.
	DeleteImage(ctx context.Context, publicID string) error
}
