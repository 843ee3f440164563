package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"concierge/config"
	"concierge/infras/otel"
	"concierge/shared/constant"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	region            = "auto"
)

// S3 stores public objects in the configured bucket.
type S3 interface {
	UploadObject(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error)
	DeleteObject(ctx context.Context, url string) error
	ObjectKeyFromURL(url string) (objectKey string)
}

type s3Impl struct {
	client *s3.Client
	config *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) UploadObject(ctx context.Context, directory, fileName, contentType string, data []byte) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadObject")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucket := svc.config.External.S3.BucketName
	objectKey := path.Join(directory, fileName)

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucket,
	})

	reader := bytes.NewReader(data)

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(reader.Size()),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to upload object to S3")

		return constant.Empty, fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return publicURL(svc.config.External.S3.PublicDomain, objectKey), nil
}

func (svc *s3Impl) DeleteObject(ctx context.Context, url string) (err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".DeleteObject")
	defer scope.End()
	defer scope.TraceIfError(err)

	objectKey := svc.ObjectKeyFromURL(url)
	if objectKey == constant.Empty {
		return nil
	}

	bucket := svc.config.External.S3.BucketName

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucket,
	})

	_, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("key", objectKey).Msg("failed to delete object from S3")

		return fmt.Errorf("failed to delete object from S3: %w", err)
	}

	return nil
}

// ObjectKeyFromURL returns the key of an object served from the public
// domain or the API endpoint, or empty when url points elsewhere.
func (svc *s3Impl) ObjectKeyFromURL(url string) string {
	return objectKeyFromURL(svc.config.External.S3.PublicDomain, svc.config.External.S3.APIEndpoint, svc.config.External.S3.BucketName, url)
}

func objectKeyFromURL(publicDomain, apiEndpoint, bucket, url string) string {
	if publicDomain != constant.Empty {
		if key, ok := strings.CutPrefix(url, strings.TrimSuffix(publicDomain, "/")+"/"); ok {
			return key
		}
	}

	if apiEndpoint != constant.Empty {
		if key, ok := strings.CutPrefix(url, fmt.Sprintf("%s/%s/", strings.TrimSuffix(apiEndpoint, "/"), bucket)); ok {
			return key
		}
	}

	return constant.Empty
}

func publicURL(publicDomain, objectKey string) string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(publicDomain, "/"), objectKey)
}

func New(config *config.Config, otel otel.Otel) S3 {
	staticProvider := credentials.NewStaticCredentialsProvider(
		config.External.S3.AccessKeyID,
		config.External.S3.SecretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
		awsConfig.WithRegion(region),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.External.S3.APIEndpoint != constant.Empty {
			o.BaseEndpoint = aws.String(config.External.S3.APIEndpoint)
		}
		o.UsePathStyle = true
	})

	return &s3Impl{
		client: client,
		config: config,
		otel:   otel,
	}
}
