// Package archive hands out presigned object-storage URLs for journal
// backups. The server never proxies archive bytes: the client uploads its
// serialized journal straight to the bucket with a presigned PUT and fetches
// it back with a presigned GET.
package archive

import (
	"context"
	"fmt"
	"strings"
	"time"

	sc "github.com/dmitrijs2005/daybook/internal/server/config"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignValidity = 15 * time.Minute

type Service struct {
	config *sc.Config
}

func NewService(config *sc.Config) *Service {
	return &Service{config: config}
}

// StorageKey partitions archives by owner and date, with a uuid leaf so
// repeated backups on the same day do not overwrite each other.
func StorageKey(userID int64) string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%d/%v", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

// OwnedBy reports whether key lies under userID's partition of the bucket.
// Download URLs are only presigned for the caller's own keys.
func OwnedBy(key string, userID int64) bool {
	return strings.HasPrefix(key, fmt.Sprintf("users/%d/", userID))
}

func (s *Service) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// GetPresignedPutUrl returns a fresh storage key for userID and a presigned
// PUT URL the client can upload a journal snapshot to.
func (s *Service) GetPresignedPutUrl(ctx context.Context, userID int64) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := StorageKey(userID)

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// GetPresignedGetUrl returns a presigned download URL for a previously
// uploaded archive key.
func (s *Service) GetPresignedGetUrl(ctx context.Context, key string) (string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
