package utils

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3ImageStore archives uploaded images in a bucket and returns their public
// URL (CloudFront when configured).
type S3ImageStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3ImageStore(ctx context.Context, region, bucket, cloudFrontURL string) (*S3ImageStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config for S3: %w", err)
	}
	return &S3ImageStore{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: imageBaseURL(region, bucket, cloudFrontURL),
	}, nil
}

// imageBaseURL prefers the CloudFront distribution over the bucket endpoint.
func imageBaseURL(region, bucket, cloudFrontURL string) string {
	if base := strings.TrimRight(cloudFrontURL, "/"); base != "" {
		return base
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
}

// ImageKey builds a unique object key under prefix.
func ImageKey(prefix string, img *DecodedImage, now time.Time) string {
	return fmt.Sprintf("%s/%d%s", strings.Trim(prefix, "/"), now.UnixNano(), img.Ext)
}

func (s *S3ImageStore) PutImage(ctx context.Context, prefix string, img *DecodedImage) (string, error) {
	key := ImageKey(prefix, img, time.Now())
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(img.Data),
		ContentType: aws.String(img.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}
