package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mindcare_backend/internal/config"
	"mindcare_backend/internal/util"
	"mindcare_backend/pkg/logger"
	"os"
	"path/filepath"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ExportStore 保存研究导出文件，返回可下载的地址
type ExportStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type localExportStore struct {
	dir string
}

func (s localExportStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	dst := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return "", err
	}
	return "/uploads/" + key, nil
}

type minioExportStore struct {
	client *minio.Client
	bucket string
}

func newMinioExportStore(cfg *config.StorageConfig) (*minioExportStore, error) {
	if cfg.MinioEndpoint == "" || cfg.MinioBucket == "" {
		return nil, errors.New("minio endpoint and bucket are required")
	}
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioExportStore{client: client, bucket: cfg.MinioBucket}, nil
}

func (s *minioExportStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return "/" + s.bucket + "/" + key, nil
}

type ossExportStore struct {
	bucket   *oss.Bucket
	endpoint string
}

func newOSSExportStore(cfg *config.StorageConfig) (*ossExportStore, error) {
	if cfg.OSSEndpoint == "" || cfg.OSSBucket == "" {
		return nil, errors.New("oss endpoint and bucket are required")
	}
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &ossExportStore{bucket: bucket, endpoint: cfg.OSSEndpoint}, nil
}

func (s *ossExportStore) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if err := s.bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType)); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.%s/%s", s.bucket.BucketName, s.endpoint, key), nil
}

// StorageService 研究数据导出的落盘位置，远端不可用时退回本地目录
type StorageService struct {
	Store ExportStore
}

func NewStorageService(cfg *config.Config) *StorageService {
	var (
		store ExportStore
		err   error
	)
	switch cfg.Storage.Type {
	case util.StorageMinio:
		store, err = newMinioExportStore(&cfg.Storage)
	case util.StorageOSS:
		store, err = newOSSExportStore(&cfg.Storage)
	}
	if err != nil {
		logger.Log.Warn("Export storage unavailable, using local storage",
			zap.String("type", cfg.Storage.Type), zap.Error(err))
		store = nil
	}
	if store == nil {
		store = localExportStore{dir: cfg.Storage.LocalPath}
	}
	return &StorageService{Store: store}
}

func (s *StorageService) SaveExport(ctx context.Context, key string, data []byte) (string, error) {
	return s.Store.Put(ctx, key, data, util.MimeJSON)
}
