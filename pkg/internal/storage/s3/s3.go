// Package s3 处理S3存储操作.
package s3

import (
	"context"
	"fmt"
	"net/url"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yeisme/gamevault/pkg/configs"
	nlog "github.com/yeisme/gamevault/pkg/log"
)

// Client 包装 MinIO 客户端.
type Client struct {
	*minio.Client

	cfg configs.S3Config
}

// thumbnailsBucketPolicy 缩略图 bucket 设置为匿名可读，前端直接用公共 URL 展示.
const thumbnailsBucketPolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"AWS": ["*"]},
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`

// New 初始化 MinIO 客户端，若 bucket 不存在则尝试创建.
// 游戏文件 bucket 保持私有（预签名下载），缩略图 bucket 创建后附加公共读策略.
func New(ctx context.Context, cfg *configs.S3Config) (*Client, error) {
	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL
	// 允许用户传完整 schema endpoint（http:// 或 https://）
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		endpoint = u.Host
		if u.Scheme == "https" {
			useSSL = true
		}
	}

	cli, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	cli.SetAppInfo("gamevault", configs.AppVersion)

	c := &Client{Client: cli, cfg: *cfg}

	if err := c.ensureBucket(ctx, cfg.FilesBucket); err != nil {
		return nil, err
	}

	if err := c.ensureBucket(ctx, cfg.ThumbnailsBucket); err != nil {
		return nil, err
	}

	if err := cli.SetBucketPolicy(ctx, cfg.ThumbnailsBucket,
		fmt.Sprintf(thumbnailsBucketPolicy, cfg.ThumbnailsBucket)); err != nil {
		return nil, fmt.Errorf("set policy for bucket %s: %w", cfg.ThumbnailsBucket, err)
	}

	nlog.Logger().Info().
		Str("endpoint", cfg.Endpoint).
		Str("files_bucket", cfg.FilesBucket).
		Str("thumbnails_bucket", cfg.ThumbnailsBucket).
		Msg("s3 connected")

	return c, nil
}

// ensureBucket 保证 bucket 存在，不存在则创建.
func (c *Client) ensureBucket(ctx context.Context, bkt string) error {
	if bkt == "" {
		return fmt.Errorf("bucket name is empty")
	}

	exists, err := c.BucketExists(ctx, bkt)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bkt, err)
	}

	if !exists {
		if err := c.MakeBucket(ctx, bkt, minio.MakeBucketOptions{Region: c.cfg.Region}); err != nil {
			return fmt.Errorf("create bucket %s: %w", bkt, err)
		}

		nlog.Logger().Info().Str("bucket", bkt).Msg("bucket created")
	}

	return nil
}

// HealthCheck 简单的健康检查，通过列出桶来验证连接.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.ListBuckets(ctx)
	return err
}

// Close 关闭 S3 客户端连接（无实际操作，接口兼容）.
func (c *Client) Close() error {
	return nil
}

func (c *Client) GetConfig() configs.S3Config {
	return c.cfg
}
