package report

import (
	"bytes"
	"context"
	"fmt"

	"qb-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Archive uploads report documents to object storage.
type Archive struct {
	client storage.Client
	bucket string
}

// NewArchive creates an archive over the given storage client.
func NewArchive(client storage.Client, bucket string) *Archive {
	return &Archive{client: client, bucket: bucket}
}

// objectName returns the archive key for a run.
func objectName(runID string) string {
	return "reports/" + runID + ".json"
}

// Store uploads a report document, creating the bucket on first use.
func (a *Archive) Store(ctx context.Context, runID string, document []byte) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create archive bucket: %w", err)
		}
	}

	_, err = a.client.PutObject(ctx, a.bucket, objectName(runID),
		bytes.NewReader(document), int64(len(document)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to archive report %s: %w", runID, err)
	}
	return nil
}

// Fetch downloads an archived report document.
func (a *Archive) Fetch(ctx context.Context, runID string) ([]byte, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, objectName(runID), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch archived report %s: %w", runID, err)
	}
	defer obj.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(obj); err != nil {
		return nil, fmt.Errorf("failed to read archived report %s: %w", runID, err)
	}
	return buf.Bytes(), nil
}
