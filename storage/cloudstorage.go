package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/talenthub/backend/config"
)

// CloudStorageClient wraps Google Cloud Storage operations
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.CVBucketName,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// UploadCV uploads CV content under the owning user's prefix and
// returns the public URL
func (c *CloudStorageClient) UploadCV(ctx context.Context, userID string, content []byte, filename string) (string, error) {
	ext := filepath.Ext(filename)
	objectName := fmt.Sprintf("cvs/%s/%d%s", userID, time.Now().Unix(), ext)

	obj := c.client.Bucket(c.bucketName).Object(objectName)

	wc := obj.NewWriter(ctx)
	wc.ContentType = getContentType(ext)

	if _, err := wc.Write(content); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to write content: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName)
	return url, nil
}

// DeleteCV deletes a CV file from Cloud Storage by its public URL
func (c *CloudStorageClient) DeleteCV(ctx context.Context, cvUrl string) error {
	objectName, err := c.objectName(cvUrl)
	if err != nil {
		return err
	}

	if err := c.client.Bucket(c.bucketName).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete CV: %w", err)
	}

	return nil
}

// DownloadCV downloads CV content by its public URL
func (c *CloudStorageClient) DownloadCV(ctx context.Context, cvUrl string) ([]byte, error) {
	objectName, err := c.objectName(cvUrl)
	if err != nil {
		return nil, err
	}

	rc, err := c.client.Bucket(c.bucketName).Object(objectName).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV: %w", err)
	}

	return data, nil
}

func (c *CloudStorageClient) objectName(cvUrl string) (string, error) {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
	if !strings.HasPrefix(cvUrl, prefix) {
		return "", fmt.Errorf("invalid CV URL format")
	}
	return strings.TrimPrefix(cvUrl, prefix), nil
}

func getContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
