package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Object struct {
	Key          string
	URL          string
	Size         int64
	LastModified time.Time
}

/*
ListResult is one page of a listing. Cursor is the storage backend's
continuation token, passed through untouched so callers can resume a
truncated listing.
*/
type ListResult struct {
	Folders []string
	Objects []Object
	HasMore bool
	Cursor  string
}

type Lister interface {
	ListFolders(ctx context.Context, limit int32) ([]string, error)
	ListObjects(ctx context.Context, prefix string, limit int32, cursor string) (ListResult, error)
	ReadObject(ctx context.Context, key string) ([]byte, error)
}

type BlobStorageConfig struct {
	Bucket        string
	Client        *s3.Client
	PublicBaseURL string
}

type BlobStorage struct {
	bucket        string
	client        *s3.Client
	publicBaseURL string
}

func NewBlobStorage(config BlobStorageConfig) BlobStorage {
	return BlobStorage{
		bucket:        config.Bucket,
		client:        config.Client,
		publicBaseURL: strings.TrimSuffix(config.PublicBaseURL, "/"),
	}
}

/*
ListFolders returns the top-level folder names in the bucket, trailing
separator included, e.g. "llnm1/". Folders are common prefixes in a
delimited listing.
*/
func (b BlobStorage) ListFolders(ctx context.Context, limit int32) ([]string, error) {
	output, err := b.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:    aws.String(b.bucket),
		Delimiter: aws.String("/"),
		MaxKeys:   aws.Int32(limit),
	})

	if err != nil {
		return nil, fmt.Errorf("error listing folders in bucket '%s': %w", b.bucket, err)
	}

	folders := []string{}

	for _, prefix := range output.CommonPrefixes {
		folders = append(folders, aws.ToString(prefix.Prefix))
	}

	return folders, nil
}

func (b BlobStorage) ListObjects(ctx context.Context, prefix string, limit int32, cursor string) (ListResult, error) {
	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(b.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(limit),
	}

	if cursor != "" {
		input.ContinuationToken = aws.String(cursor)
	}

	output, err := b.client.ListObjectsV2(ctx, input)

	if err != nil {
		return ListResult{}, fmt.Errorf("error listing objects under '%s' in bucket '%s': %w", prefix, b.bucket, err)
	}

	result := ListResult{
		Objects: []Object{},
		HasMore: aws.ToBool(output.IsTruncated),
		Cursor:  aws.ToString(output.NextContinuationToken),
	}

	for _, obj := range output.Contents {
		key := aws.ToString(obj.Key)

		result.Objects = append(result.Objects, Object{
			Key:          key,
			URL:          fmt.Sprintf("%s/%s", b.publicBaseURL, key),
			Size:         aws.ToInt64(obj.Size),
			LastModified: aws.ToTime(obj.LastModified),
		})
	}

	return result, nil
}

func (b BlobStorage) ReadObject(ctx context.Context, key string) ([]byte, error) {
	output, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return nil, fmt.Errorf("error getting object '%s' from bucket '%s': %w", key, b.bucket, err)
	}

	defer output.Body.Close()

	body, err := io.ReadAll(output.Body)

	if err != nil {
		return nil, fmt.Errorf("error reading object '%s': %w", key, err)
	}

	return body, nil
}
