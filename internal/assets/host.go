package assets

import (
	"context"
	"io"
)

// UploadResult describes a successfully published asset.
type UploadResult struct {
	AssetID     string `json:"asset_id"`
	PublicURL   string `json:"public_url"`
	ContentType string `json:"content_type"`
}

// Host is the remote asset store media binaries are proxied to. Upload runs
// the full register-and-publish lifecycle and returns a stable public URL;
// Delete releases both the published and the registered copy.
type Host interface {
	Upload(ctx context.Context, r io.Reader, size int64, filename, contentType string) (*UploadResult, error)
	Delete(ctx context.Context, assetID string) error
}
