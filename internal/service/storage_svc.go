package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ==================== 接口定义 ====================

// StorageProvider 存储提供者接口
// 证书与商品图片都通过它落盘，返回公开访问 URL
type StorageProvider interface {
	Upload(ctx context.Context, data []byte, filename string, contentType string) (url string, err error)
	Delete(ctx context.Context, url string) error
}

// ==================== 配置 ====================

// StorageConfig 存储配置
type StorageConfig struct {
	Provider  string // "s3" | "local"
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	BasePath  string // 对象键前缀
	LocalDir  string // local 模式的落盘目录
	LocalURL  string // local 模式的 URL 前缀
}

// ==================== 工厂方法 ====================

// NewStorageProvider 按配置创建存储提供者
func NewStorageProvider(cfg *StorageConfig) (StorageProvider, error) {
	switch cfg.Provider {
	case "s3":
		return NewS3Storage(cfg)
	case "local":
		return NewLocalStorage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage provider: %s", cfg.Provider)
	}
}

// ==================== S3 实现 ====================

// S3Storage S3 存储
type S3Storage struct {
	client   *s3.Client
	bucket   string
	region   string
	basePath string
}

// NewS3Storage 创建 S3 存储
func NewS3Storage(cfg *StorageConfig) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("加载 AWS 配置失败: %w", err)
	}

	return &S3Storage{
		client:   s3.NewFromConfig(awsCfg),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		basePath: strings.Trim(cfg.BasePath, "/"),
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, data []byte, filename string, contentType string) (string, error) {
	key := s.objectKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("S3 上传失败: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func (s *S3Storage) Delete(ctx context.Context, url string) error {
	idx := strings.Index(url, ".amazonaws.com/")
	if idx < 0 {
		return fmt.Errorf("无法从 URL 解析对象键: %s", url)
	}
	key := url[idx+len(".amazonaws.com/"):]

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// objectKey 生成带日期与随机名的对象键，避免覆盖
func (s *S3Storage) objectKey(filename string) string {
	ext := filepath.Ext(filename)
	name := fmt.Sprintf("%s/%s%s",
		time.Now().Format("2006/01/02"),
		uuid.NewString(),
		ext,
	)
	if s.basePath != "" {
		return s.basePath + "/" + name
	}
	return name
}

// ==================== 本地实现 ====================

// LocalStorage 本地磁盘存储（开发环境用）
type LocalStorage struct {
	dir    string
	urlPfx string
}

// NewLocalStorage 创建本地存储
func NewLocalStorage(cfg *StorageConfig) (*LocalStorage, error) {
	dir := cfg.LocalDir
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	return &LocalStorage{
		dir:    dir,
		urlPfx: strings.TrimRight(cfg.LocalURL, "/"),
	}, nil
}

func (l *LocalStorage) Upload(_ context.Context, data []byte, filename string, _ string) (string, error) {
	name := uuid.NewString() + filepath.Ext(filename)
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	return l.urlPfx + "/" + name, nil
}

func (l *LocalStorage) Delete(_ context.Context, url string) error {
	name := filepath.Base(url)
	err := os.Remove(filepath.Join(l.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
