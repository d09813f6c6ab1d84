package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"womenhub/internal/config"
)

var (
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrTooLarge        = errors.New("image too large")
	ErrEmpty           = errors.New("empty upload")
)

// sniffLen is the number of leading bytes inspected to detect the content type.
const sniffLen = 3072

var allowedImages = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

type Storage interface {
	UploadImage(ctx context.Context, folder string, fileName string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
	GetImageURL(ctx context.Context, objectName string) (string, error)
}

type MinIOClient struct {
	client  *minio.Client
	bucket  string
	region  string
	expiry  time.Duration
	maxSize int64
	now     func() time.Time
}

func newMinIOClient(cfg config.MinIO, maxSize int64) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	expiry := cfg.URLExpiry
	if expiry <= 0 || expiry > 7*24*time.Hour {
		expiry = 7 * 24 * time.Hour
	}

	return &MinIOClient{
		client:  client,
		bucket:  cfg.BucketName,
		region:  cfg.Region,
		expiry:  expiry,
		maxSize: maxSize,
		now:     time.Now,
	}, nil
}

// NewMinIOClient connects to the configured endpoint and creates the bucket
// when it does not exist yet.
func NewMinIOClient(ctx context.Context, cfg config.MinIO, maxSize int64) (*MinIOClient, error) {
	m, err := newMinIOClient(cfg, maxSize)
	if err != nil {
		return nil, err
	}

	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", m.bucket, err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: m.region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", m.bucket, err)
		}
	}

	return m, nil
}

// inspectImage checks size and sniffs the content type. The returned reader
// replays the sniffed bytes followed by the rest of file.
func inspectImage(file io.Reader, size, maxSize int64) (io.Reader, *mimetype.MIME, error) {
	if maxSize > 0 && size > maxSize {
		return nil, nil, fmt.Errorf("%w: %s exceeds %s", ErrTooLarge, humanize.IBytes(uint64(size)), humanize.IBytes(uint64(maxSize)))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("read upload: %w", err)
	}
	if n == 0 {
		return nil, nil, ErrEmpty
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if !allowedImages[mt.String()] {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}

	return io.MultiReader(bytes.NewReader(head), file), mt, nil
}

func objectName(folder string, now time.Time, ext string) string {
	return fmt.Sprintf("%s/%d/%02d/%s%s",
		strings.Trim(folder, "/"),
		now.Year(),
		now.Month(),
		uuid.New().String(),
		ext)
}

// UploadImage stores a jpeg, png or gif under folder and returns the object
// name and a presigned URL for it.
func (m *MinIOClient) UploadImage(ctx context.Context, folder string, fileName string, file io.Reader, size int64) (string, string, error) {
	body, mt, err := inspectImage(file, size, m.maxSize)
	if err != nil {
		return "", "", err
	}

	now := m.now()
	name := objectName(folder, now, mt.Extension())

	_, err = m.client.PutObject(ctx, m.bucket, name, body, size,
		minio.PutObjectOptions{
			ContentType: mt.String(),
			UserMetadata: map[string]string{
				"original-filename": filepath.Base(fileName),
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("upload to minio: %w", err)
	}

	url, err := m.GetImageURL(ctx, name)
	if err != nil {
		if delErr := m.DeleteImage(ctx, name); delErr != nil {
			err = errors.Join(err, delErr)
		}
		return "", "", err
	}

	return name, url, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("delete from minio: %w", err)
	}
	return nil
}

func (m *MinIOClient) GetImageURL(ctx context.Context, objectName string) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, m.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", objectName, err)
	}
	return u.String(), nil
}
