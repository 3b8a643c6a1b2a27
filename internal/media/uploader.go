package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Uploader struct {
	store    ObjectStore
	maxWidth int
	quality  float32
}

func NewUploader(store ObjectStore, maxWidth int) *Uploader {
	return &Uploader{store: store, maxWidth: maxWidth, quality: DefaultQuality}
}

// UploadProductImage transcodes an upload and stores it under
// products/<productID>/<uuid>.webp.
func (u *Uploader) UploadProductImage(ctx context.Context, productID string, r io.Reader) (string, error) {
	data, err := Transcode(r, u.maxWidth, u.quality)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("products/%s/%s.webp", productID, uuid.NewString())
	url, err := u.store.PutObject(ctx, key, ContentTypeWebP, data)
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	zap.L().Info("product image stored",
		zap.String("product_id", productID),
		zap.String("key", key),
		zap.Int("bytes", len(data)),
	)
	return url, nil
}
