package configs

import (
	"fmt"

	"github.com/spf13/viper"
)

// S3Config MinIO S3存储配置.
//
// 游戏资产分两个 bucket 存放：FilesBucket 保存游戏安装包（私有，只能通过
// 预签名 URL 下载），ThumbnailsBucket 保存缩略图（配置为公共读，直接拼接
// 公共 URL 展示）.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Region          string `mapstructure:"region"`
	// FilesBucket 游戏文件 bucket（私有）.
	FilesBucket string `mapstructure:"files_bucket" rule:"required"`
	// ThumbnailsBucket 缩略图 bucket（公共读）.
	ThumbnailsBucket string `mapstructure:"thumbnails_bucket" rule:"required"`
	// PublicBaseURL 缩略图公共访问的基础 URL；为空时回退到 endpoint 拼接.
	// 反向代理或 CDN 场景下配置为对外地址.
	PublicBaseURL string `mapstructure:"public_base_url"`
}

const (
	DefaultS3Endpoint        = "localhost:9000"  // 默认S3端点
	DefaultS3AccessKeyID     = "minioadmin"      // 默认访问密钥ID
	DefaultS3SecretAccessKey = "minioadmin"      // 默认秘密访问密钥
	DefaultS3UseSSL          = false             // 默认是否使用SSL
	DefaultS3Region          = "us-east-1"       // 默认区域
	DefaultFilesBucket       = "game-files"      // 默认游戏文件 bucket
	DefaultThumbnailsBucket  = "game-thumbnails" // 默认缩略图 bucket
)

// GetEndpointURL 获取完整的端点URL.
func (c *S3Config) GetEndpointURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s", scheme, c.Endpoint)
}

// GetPublicBaseURL 返回缩略图公共 URL 的基础地址.
func (c *S3Config) GetPublicBaseURL() string {
	if c.PublicBaseURL != "" {
		return c.PublicBaseURL
	}

	return c.GetEndpointURL()
}

// setDefaults 设置 S3 配置的默认值.
func (c *S3Config) setDefaults(v *viper.Viper) {
	v.SetDefault("s3.endpoint", DefaultS3Endpoint)
	v.SetDefault("s3.access_key_id", DefaultS3AccessKeyID)
	v.SetDefault("s3.secret_access_key", DefaultS3SecretAccessKey)
	v.SetDefault("s3.use_ssl", DefaultS3UseSSL)
	v.SetDefault("s3.region", DefaultS3Region)
	v.SetDefault("s3.files_bucket", DefaultFilesBucket)
	v.SetDefault("s3.thumbnails_bucket", DefaultThumbnailsBucket)
	v.SetDefault("s3.public_base_url", "")
}
