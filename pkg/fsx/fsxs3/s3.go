package fsxs3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3FileSystem implements fsx.FileSystem on top of an S3 bucket
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3FileSystem creates an S3-backed file system rooted at prefix
func NewS3FileSystem(client *s3.Client, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func (fs *S3FileSystem) fullKey(key string) string {
	key = strings.TrimPrefix(key, "/")
	if fs.prefix == "" {
		return key
	}
	return fs.prefix + "/" + key
}

// Put uploads data under key and returns the object URL
func (fs *S3FileSystem) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	fullKey := fs.fullKey(key)

	_, err := fs.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(fs.bucket),
		Key:         aws.String(fullKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", fullKey, err)
	}

	return fmt.Sprintf("s3://%s/%s", fs.bucket, fullKey), nil
}

// Get downloads the object stored under key
func (fs *S3FileSystem) Get(ctx context.Context, key string) ([]byte, error) {
	fullKey := fs.fullKey(key)

	out, err := fs.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(fullKey),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", fullKey, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fullKey, err)
	}

	return data, nil
}

// Delete removes the object stored under key
func (fs *S3FileSystem) Delete(ctx context.Context, key string) error {
	fullKey := fs.fullKey(key)

	_, err := fs.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(fullKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", fullKey, err)
	}

	return nil
}
