package objectstore

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"digitalpage/config"
	"digitalpage/infras/otel"
	"digitalpage/shared/constant"
	"digitalpage/shared/failure"
)

const localDirPermission = 0o755

// localStore writes uploads to a directory on disk and hands back paths
// relative to that directory. References never leave the configured root.
type localStore struct {
	dir  string
	otel otel.Otel
}

func newLocalStore(cfg *config.Config, otl otel.Otel) Store {
	dir := cfg.Storage.Local.Dir

	if err := os.MkdirAll(dir, localDirPermission); err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("Failed to create upload directory")
	}

	log.Info().Str("dir", dir).Msg("Local file storage initialized")

	return &localStore{
		dir:  dir,
		otel: otl,
	}
}

func (svc *localStore) Put(ctx context.Context, fileName, _ string, data []byte) (ref string, err error) {
	_, scope := svc.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrFileName, fileName)

	ref = filepath.ToSlash(filepath.Join(uuid.NewString(), filepath.Base(fileName)))
	fullPath := filepath.Join(svc.dir, filepath.FromSlash(ref))

	if err = os.MkdirAll(filepath.Dir(fullPath), localDirPermission); err != nil {
		return constant.Empty, fmt.Errorf("failed to create file directory: %w", err)
	}

	if err = os.WriteFile(fullPath, data, 0o644); err != nil {
		return constant.Empty, fmt.Errorf("failed to write file: %w", err)
	}

	return ref, nil
}

func (svc *localStore) Get(ctx context.Context, ref string) (data []byte, contentType string, err error) {
	_, scope := svc.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrFileName, ref)

	cleaned := filepath.Clean(filepath.FromSlash(ref))
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return nil, constant.Empty, failure.NotFound("file not found")
	}

	data, err = os.ReadFile(filepath.Join(svc.dir, cleaned))
	if os.IsNotExist(err) {
		return nil, constant.Empty, failure.NotFound("file not found")
	}

	if err != nil {
		return nil, constant.Empty, fmt.Errorf("failed to read file: %w", err)
	}

	contentType = mime.TypeByExtension(filepath.Ext(cleaned))
	if contentType == constant.Empty {
		contentType = constant.ContentTypeOctetStream
	}

	return data, contentType, nil
}
