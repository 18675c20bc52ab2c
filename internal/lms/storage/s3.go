package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/dothithuanhtlu/lms-sub000/internal/lms/config"
)

// Client wraps the S3 operations the document services need: direct
// uploads, deletes, presigned downloads and a connectivity probe.
type Client struct {
	svc           *s3.S3
	bucket        string
	presignExpiry time.Duration
}

func NewClient(cfg *config.Config) (*Client, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.AWSRegion)}
	if cfg.AWSAccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Client{
		svc:           s3.New(sess),
		bucket:        cfg.S3Bucket,
		presignExpiry: cfg.PresignExpiry,
	}, nil
}

func (c *Client) Upload(ctx context.Context, objectKey, contentType string, data []byte) error {
	_, err := c.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

func (c *Client) Delete(ctx context.Context, objectKey string) error {
	_, err := c.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// PresignDownload returns a time-limited download URL for the object.
func (c *Client) PresignDownload(objectKey string) (string, error) {
	req, _ := c.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(objectKey),
	})

	url, err := req.Presign(c.presignExpiry)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned download URL: %w", err)
	}
	return url, nil
}

// Ping verifies the bucket is reachable with the configured credentials.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.svc.HeadBucketWithContext(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucket),
	})
	if err != nil {
		return fmt.Errorf("storage unreachable: %w", err)
	}
	return nil
}

// Usage reports object count and total size for the usage endpoint.
func (c *Client) Usage(ctx context.Context) (count int64, size int64, err error) {
	err = c.svc.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			count++
			size += aws.Int64Value(obj.Size)
		}
		return true
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list objects: %w", err)
	}
	return count, size, nil
}
