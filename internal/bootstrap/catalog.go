package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"freshmart/internal/catalog"
	"freshmart/internal/config"
	"freshmart/internal/db"
	"freshmart/internal/storage"

	"go.uber.org/zap"
)

var ErrInvalidSource = errors.New("invalid catalog source")

// CatalogSource is an opened catalog backend. Close releases whatever
// connection the backend holds.
type CatalogSource struct {
	catalog.Source
	Close func()
}

func noop() {}

// OpenCatalogSource connects to the backend selected by cfg.CatalogSource.
func OpenCatalogSource(ctx context.Context, cfg config.Config, log *zap.Logger) (CatalogSource, error) {
	log = log.With(zap.String("catalog_source", cfg.CatalogSource))

	switch cfg.CatalogSource {
	case config.SourceFixture:
		log.Info("using embedded catalog")
		return CatalogSource{Source: catalog.FixtureSource{}, Close: noop}, nil

	case config.SourceFile:
		log.Info("reading catalog file", zap.String("path", cfg.CatalogFile))
		return CatalogSource{Source: catalog.FileSource{Path: cfg.CatalogFile}, Close: noop}, nil

	case config.SourcePostgres:
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return CatalogSource{}, err
		}
		log.Info("connected to postgres")
		return CatalogSource{Source: catalog.NewPostgresSource(pool), Close: pool.Close}, nil

	case config.SourceSQLite:
		sqlDB, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return CatalogSource{}, err
		}
		log.Info("opened sqlite", zap.String("path", cfg.SQLitePath))
		return CatalogSource{
			Source: catalog.NewSQLiteSource(sqlDB),
			Close:  func() { _ = sqlDB.Close() },
		}, nil

	case config.SourceS3:
		client, err := OpenStorage(ctx, cfg)
		if err != nil {
			return CatalogSource{}, err
		}
		log.Info("reading catalog object", zap.String("bucket", cfg.S3.Bucket), zap.String("key", cfg.S3.CatalogKey))
		return CatalogSource{Source: catalog.NewS3Source(client, cfg.S3.CatalogKey), Close: noop}, nil
	}

	return CatalogSource{}, fmt.Errorf("%w: %q", ErrInvalidSource, cfg.CatalogSource)
}

func OpenStorage(ctx context.Context, cfg config.Config) (*storage.Client, error) {
	return storage.NewClient(ctx, storage.Config{
		Endpoint:  cfg.S3.Endpoint,
		Region:    cfg.S3.Region,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		Bucket:    cfg.S3.Bucket,
		PublicURL: cfg.S3.PublicURL,
	})
}

// LoadCatalog opens the configured source and loads the catalog service
// from it. The source is closed once the catalog is in memory.
func LoadCatalog(ctx context.Context, cfg config.Config, log *zap.Logger) (*catalog.Service, error) {
	src, err := OpenCatalogSource(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	svc, err := catalog.NewService(ctx, src, cfg.ImageBaseURL)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded", zap.Int("products", svc.Len()))
	return svc, nil
}
