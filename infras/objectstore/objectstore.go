package objectstore

//go:generate go run go.uber.org/mock/mockgen -source=./objectstore.go -destination=./mocks/objectstore_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"digitalpage/config"
	"digitalpage/infras/otel"
)

const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Store is the blob gateway for uploaded order files. Put persists the raw
// bytes unchanged and returns a durable reference: an absolute URL for the S3
// backend, a relative path for the local backend. Get resolves a reference
// produced by the same backend back into the original bytes.
type Store interface {
	Put(ctx context.Context, fileName, contentType string, data []byte) (ref string, err error)
	Get(ctx context.Context, ref string) (data []byte, contentType string, err error)
}

// New picks the storage backend from configuration.
func New(config *config.Config, otel otel.Otel) Store {
	switch config.Storage.Backend {
	case BackendS3:
		return newS3Store(config, otel)
	case BackendLocal, "":
		return newLocalStore(config, otel)
	default:
		log.Fatal().Str("backend", config.Storage.Backend).Msg("Unknown storage backend")

		return nil
	}
}
