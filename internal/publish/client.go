package publish

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/daisy/internal/config"
	"github.com/vango-dev/daisy/internal/errors"
)

// ClientOption adjusts how the S3 client is configured.
type ClientOption func(*clientOptions)

type clientOptions struct {
	profile         string
	accessKeyID     string
	secretAccessKey string
}

// WithProfile selects a named profile from the shared AWS config files.
func WithProfile(name string) ClientOption {
	return func(o *clientOptions) {
		o.profile = name
	}
}

// WithStaticCredentials uses a fixed key pair instead of the default
// credential chain. Typical for S3-compatible stores.
func WithStaticCredentials(accessKeyID, secretAccessKey string) ClientOption {
	return func(o *clientOptions) {
		o.accessKeyID = accessKeyID
		o.secretAccessKey = secretAccessKey
	}
}

// NewS3Client builds an S3 client from the publish section of daisy.yaml.
// Endpoint and PathStyle point it at S3-compatible stores such as MinIO.
func NewS3Client(ctx context.Context, cfg config.PublishConfig, opts ...ClientOption) (*s3.Client, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	var loaders []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loaders = append(loaders, awsconfig.WithRegion(cfg.Region))
	}
	if o.profile != "" {
		loaders = append(loaders, awsconfig.WithSharedConfigProfile(o.profile))
	}
	if o.accessKeyID != "" {
		loaders = append(loaders, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.accessKeyID, o.secretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, errors.New("E504").Wrap(err)
	}

	return s3.NewFromConfig(awsCfg, func(so *s3.Options) {
		if cfg.Endpoint != "" {
			so.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		so.UsePathStyle = cfg.PathStyle
	}), nil
}
