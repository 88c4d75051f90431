package filestore

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// presignExpiry applies to both PUT and GET presigned requests.
const presignExpiry = 15 * time.Minute

// Test seams for the AWS construction points and the raw upload.
var (
	loadDefaultAWSConfig  = awsconfig.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
	newS3PresignClient    = s3.NewPresignClient
	httpDo                = func(req *http.Request) (*http.Response, error) { return http.DefaultClient.Do(req) }
)

// S3Config holds the settings for a direct S3-compatible bucket (MinIO or
// AWS proper).
type S3Config struct {
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
	Bucket       string
}

// S3Store stores private files in an S3-compatible bucket. Uploads go
// through a presigned PUT; downloads are handed out as presigned GET URLs.
type S3Store struct {
	cfg S3Config
}

func NewS3Store(cfg S3Config) *S3Store {
	return &S3Store{cfg: cfg}
}

// storageKey builds a date-partitioned random object key, keeping the
// original file extension so a download filename can be derived later.
func storageKey(filename string) string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%v%s", d.Year(), d.Month(), d.Day(), uuid.New(), filepath.Ext(filename))
}

func (s *S3Store) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
		}
	})

	return newS3PresignClient(client), nil
}

// UploadPrivate presigns a PUT for a fresh storage key and uploads the bytes
// to it. The returned reference is the object key.
func (s *S3Store) UploadPrivate(ctx context.Context, data []byte, filename string) (string, error) {
	presign, err := s.presignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.cfg.Bucket
	key := storageKey(filename)

	req, err := presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign put: %w", err)
	}

	if err := putToPresignedURL(ctx, req.URL, data); err != nil {
		return "", err
	}

	return key, nil
}

// SignedDownloadURL presigns a GET for the stored object.
func (s *S3Store) SignedDownloadURL(ctx context.Context, ref string) (SignedURL, error) {
	presign, err := s.presignClient(ctx)
	if err != nil {
		return SignedURL{}, err
	}

	bucket := s.cfg.Bucket

	req, err := presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &ref,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return SignedURL{}, fmt.Errorf("presign get: %w", err)
	}

	return SignedURL{URL: req.URL, ExpiresAt: time.Now().Add(presignExpiry)}, nil
}

func putToPresignedURL(ctx context.Context, url string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := httpDo(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload failed: %s", resp.Status)
	}
	return nil
}
