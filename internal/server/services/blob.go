package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/config"
)

// BlobStore writes binary objects and returns their public URL.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) (string, error)
}

// S3BlobStore stores objects in an S3-compatible backend (MinIO in
// development). Path-style addressing is used so bucket names need no DNS.
type S3BlobStore struct {
	config *sc.Config
}

func NewS3BlobStore(config *sc.Config) *S3BlobStore {
	return &S3BlobStore{config: config}
}

func (b *S3BlobStore) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(b.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			b.config.S3AccessKey,
			b.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(b.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

func (b *S3BlobStore) Put(ctx context.Context, key string, data []byte) (string, error) {

	client, err := b.getClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := b.config.S3Bucket

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(b.config.S3BaseEndpoint, "/")
	return fmt.Sprintf("%s/%s/%s", base, bucket, key), nil
}
