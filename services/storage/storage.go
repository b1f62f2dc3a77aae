package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// listingAssetFolder groups all listing imagery under one Cloudinary folder.
const listingAssetFolder = "stayhaven/listings"

// StorageServiceImpl is the Cloudinary-backed implementation of StorageService.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &StorageServiceImpl{cld: cld}
}

// UploadListingImage uploads an image to Cloudinary and returns its secure
// URL and public id.
func (s *StorageServiceImpl) UploadListingImage(ctx context.Context, image string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder: listingAssetFolder,
	})
	if err != nil {
		return "", "", fmt.Errorf("StorageServiceImpl: failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", "", fmt.Errorf("StorageServiceImpl: no URL returned for upload")
	}
	return result.SecureURL, result.PublicID, nil
}

// DeleteImage removes a previously uploaded image by its public id.
func (s *StorageServiceImpl) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete image: %w", err)
	}
	return nil
}
