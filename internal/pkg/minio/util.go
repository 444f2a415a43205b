package minio

import (
	"TeleInvest/internal/api/config"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"
	"github.com/minio/minio-go/v7"
)

// ErrUnsupportedImage marks uploads that are not a decodable image.
var ErrUnsupportedImage = errors.New("unsupported image format")

// UploadAvatar normalizes an uploaded image into a square JPEG
// thumbnail and stores it under the given object name. Returns the
// public URL of the stored object.
func UploadAvatar(ctx context.Context, r io.Reader, objectName string, size int) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	thumb := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode avatar thumbnail: %w", err)
	}

	_, err = Client.PutObject(ctx, AvatarBucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	return PublicURL(objectName), nil
}

// PublicURL builds the externally reachable URL for an object.
func PublicURL(objectName string) string {
	cfg := config.Cfg.MinIO
	if cfg.UsePublicLink && cfg.ExternalEndpoint != "" {
		return fmt.Sprintf("https://%s/%s/%s", cfg.ExternalEndpoint, AvatarBucket, objectName)
	}
	scheme := "http"
	if cfg.InternalUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.InternalEndpoint, AvatarBucket, objectName)
}
