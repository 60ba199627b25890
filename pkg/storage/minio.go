// Package storage 提供了与对象存储服务（如 MinIO）交互的功能。
package storage

import (
	"context"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"ccps-chaser-go/internal/config"
	"ccps-chaser-go/pkg/log"
)

// MinioClient 是一个全局的 MinIO 客户端实例。
var MinioClient *minio.Client

// InitMinIO 初始化 MinIO 客户端。
// PDF 存储桶由采集端创建并写入，这里只读，不负责建桶。
func InitMinIO(cfg config.MinIOConfig) {
	var err error

	MinioClient, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		log.Fatal("初始化 MinIO 客户端失败", err)
	}

	log.Info("MinIO 客户端初始化成功")

	// 启动时探测一次存储桶，缺失只告警：文章元数据不依赖对象存储可用
	ctx := context.Background()
	exists, err := MinioClient.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		log.Warnf("检查 MinIO 存储桶失败: %v", err)
		return
	}
	if !exists {
		log.Warnf("存储桶 '%s' 不存在，PDF 相关接口将返回 404", cfg.BucketName)
	}
}

// PublicURL 根据存储引用拼接对外公开的 PDF 访问地址。
// 优先使用配置的 PublicBaseURL（CDN/反向代理），否则按 Endpoint 推导。
// 纯字符串构造，不发起网络请求。
func PublicURL(cfg config.MinIOConfig, bucket, objectPath string) string {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		base = scheme + "://" + cfg.Endpoint
	}
	u := url.URL{Path: "/" + bucket + "/" + objectPath}
	return base + u.EscapedPath()
}
