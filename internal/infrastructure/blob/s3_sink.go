package blob

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"go-medical-seeder/config"
	domainRepo "go-medical-seeder/internal/domain/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectPutter is the part of *s3.Client the sink needs
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type s3ReportSink struct {
	client objectPutter
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3ReportSink uploads transcripts to an S3-compatible bucket (AWS S3 or MinIO).
// Credentials come from the default AWS chain.
func NewS3ReportSink(ctx context.Context, cfg config.ReportConfig) (domainRepo.ReportSink, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.S3Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3PathStyle {
			o.UsePathStyle = true
		}
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})
	return newS3ReportSink(client, cfg.S3Bucket, cfg.S3Prefix, time.Now), nil
}

func newS3ReportSink(client objectPutter, bucket, prefix string, now func() time.Time) *s3ReportSink {
	return &s3ReportSink{client: client, bucket: bucket, prefix: prefix, now: now}
}

func (s *s3ReportSink) Name() string {
	return "s3://" + s.bucket + "/" + s.prefix
}

// objectKey is unique per run so earlier reports are kept
func (s *s3ReportSink) objectKey() string {
	name := fmt.Sprintf("verification_result_%s.txt", s.now().UTC().Format("20060102T150405Z"))
	return path.Join(s.prefix, name)
}

func (s *s3ReportSink) Save(ctx context.Context, content []byte) error {
	key := s.objectKey()
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload report to s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}
