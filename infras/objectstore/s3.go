package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"digitalpage/config"
	"digitalpage/infras/otel"
	"digitalpage/shared/constant"
	"digitalpage/shared/failure"
)

const (
	s3UploadDirectory = "orders"

	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
)

type s3Store struct {
	Client *s3.Client
	Config *config.Config
	otel   otel.Otel
}

func newS3Store(cfg *config.Config, otl otel.Otel) Store {
	staticProvider := credentials.NewStaticCredentialsProvider(
		cfg.Storage.S3.AccessKeyID,
		cfg.Storage.S3.SecretAccessKey,
		"",
	)

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Storage.S3.APIEndpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &s3Store{
		Client: s3Client,
		Config: cfg,
		otel:   otl,
	}
}

func (svc *s3Store) Put(ctx context.Context, fileName, contentType string, data []byte) (ref string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := svc.Config.Storage.S3.BucketName

	scope.SetAttribute(otelAttrFileName, fileName)
	scope.SetAttribute(otelAttrBucket, bucketName)

	// Object keys are prefixed with a fresh UUID so two customers uploading
	// the same file name never overwrite each other.
	objectKey := path.Join(s3UploadDirectory, uuid.NewString(), fileName)
	fileReader := bytes.NewReader(data)

	_, err = svc.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(objectKey),
		Body:          fileReader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(fileReader.Size()),
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", svc.Config.Storage.S3.PublicDomain, bucketName, objectKey), nil
}

func (svc *s3Store) Get(ctx context.Context, ref string) (data []byte, contentType string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucketName := svc.Config.Storage.S3.BucketName

	objectKey := svc.objectNameFromRef(bucketName, ref)
	if objectKey == constant.Empty {
		return nil, constant.Empty, failure.NotFound("file not found")
	}

	scope.SetAttribute(otelAttrFileName, objectKey)
	scope.SetAttribute(otelAttrBucket, bucketName)

	out, err := svc.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, constant.Empty, fmt.Errorf("failed to get file from S3: %w", err)
	}

	defer out.Body.Close()

	data, err = io.ReadAll(out.Body)
	if err != nil {
		return nil, constant.Empty, fmt.Errorf("failed to read file body from S3: %w", err)
	}

	if out.ContentType != nil {
		contentType = *out.ContentType
	}

	return data, contentType, nil
}

func (svc *s3Store) objectNameFromRef(bucketName, ref string) string {
	bucketPrefix := svc.Config.Storage.S3.PublicDomain + "/" + bucketName + "/"
	if strings.HasPrefix(ref, bucketPrefix) {
		return strings.TrimPrefix(ref, bucketPrefix)
	}

	bucketURL := fmt.Sprintf("%s/%s/", svc.Config.Storage.S3.APIEndpoint, bucketName)
	if strings.HasPrefix(ref, bucketURL) {
		return strings.TrimPrefix(ref, bucketURL)
	}

	return constant.Empty
}
