package blob

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

type MinioUploader struct {
	client *minio.Client
	cfg    MinioConfig
	logger *zap.Logger
}

func NewMinioUploader(cfg MinioConfig, logger ...*zap.Logger) (*MinioUploader, error) {
	l := zap.L().Named("blob.minio")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("blob.minio")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return &MinioUploader{client: client, cfg: cfg, logger: l}, nil
}

// EnsureBucket creates the configured bucket when it does not exist yet.
func (u *MinioUploader) EnsureBucket(ctx context.Context) error {
	exists, err := u.client.BucketExists(ctx, u.cfg.Bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return u.client.MakeBucket(ctx, u.cfg.Bucket, minio.MakeBucketOptions{})
}

// Upload stores the stream under a salted object name and returns the
// public URL. The salt keeps same-named uploads from clobbering each
// other.
func (u *MinioUploader) Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	objectName := fmt.Sprintf("%s_%s", uuid.New().String(), name)

	_, err := u.client.PutObject(ctx, u.cfg.Bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		u.logger.Error("blob upload failed",
			zap.String("object", objectName),
			zap.Error(err),
		)
		return "", err
	}

	u.logger.Debug("blob uploaded",
		zap.String("object", objectName),
		zap.Int64("size", size),
	)

	return fmt.Sprintf("%s/%s/%s", u.cfg.PublicURL, u.cfg.Bucket, objectName), nil
}
