package assets

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

const (
	stagingPrefix = "staging/"
	publicPrefix  = "public/"
)

// MinioHost stores assets in a MinIO bucket. An upload is first registered
// under staging/ and then published by a server-side copy to public/; only the
// public copy is reachable through the returned URL.
type MinioHost struct {
	Client   *minio.Client
	Bucket   string
	Endpoint string
	UseSSL   bool
}

// NewMinioHost creates a MinIO-backed asset host for the given bucket.
func NewMinioHost(client *minio.Client, bucket, endpoint string, useSSL bool) *MinioHost {
	return &MinioHost{
		Client:   client,
		Bucket:   bucket,
		Endpoint: endpoint,
		UseSSL:   useSSL,
	}
}

// Upload registers the binary, publishes it and returns its public URL.
func (h *MinioHost) Upload(ctx context.Context, r io.Reader, size int64, filename, contentType string) (*UploadResult, error) {
	assetID := uuid.New().String() + filepath.Ext(filename)

	_, err := h.Client.PutObject(ctx, h.Bucket, stagingPrefix+assetID, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register upload")
	}

	// Publish: server-side copy of the staged object to the public prefix.
	src := minio.CopySrcOptions{Bucket: h.Bucket, Object: stagingPrefix + assetID}
	dst := minio.CopyDestOptions{Bucket: h.Bucket, Object: publicPrefix + assetID}
	if _, err := h.Client.CopyObject(ctx, dst, src); err != nil {
		// Publishing failed: release the staged copy so nothing is left behind.
		_ = h.Client.RemoveObject(ctx, h.Bucket, stagingPrefix+assetID, minio.RemoveObjectOptions{})
		return nil, errors.Wrap(err, "failed to publish asset")
	}

	return &UploadResult{
		AssetID:     assetID,
		PublicURL:   h.publicURL(assetID),
		ContentType: contentType,
	}, nil
}

// Delete unpublishes the asset and removes the registered copy. An unpublish
// failure is logged and does not block the delete attempt.
func (h *MinioHost) Delete(ctx context.Context, assetID string) error {
	if err := h.Client.RemoveObject(ctx, h.Bucket, publicPrefix+assetID, minio.RemoveObjectOptions{}); err != nil {
		log.Printf("Failed to unpublish asset %s, continuing with delete: %v", assetID, err)
	}
	if err := h.Client.RemoveObject(ctx, h.Bucket, stagingPrefix+assetID, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, "failed to delete asset")
	}
	return nil
}

func (h *MinioHost) publicURL(assetID string) string {
	scheme := "http"
	if h.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s%s", scheme, h.Endpoint, h.Bucket, publicPrefix, assetID)
}
