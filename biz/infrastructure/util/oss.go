package util

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"classhub/biz/infrastructure/config"
	"classhub/biz/infrastructure/consts"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

var (
	s3Client *s3.S3
	s3Once   sync.Once
)

func getS3Client() *s3.S3 {
	s3Once.Do(func() {
		c := config.GetConfig()
		sess := session.Must(session.NewSession(&aws.Config{
			Endpoint:         aws.String(c.S3.Endpoint),
			Region:           aws.String(c.S3.Region),
			Credentials:      credentials.NewStaticCredentials(c.S3.AccessKey, c.S3.SecretKey, ""),
			S3ForcePathStyle: aws.Bool(true),
		}))
		s3Client = s3.New(sess)
	})
	return s3Client
}

// NewAvatarKey 生成头像对象键, 同一用户多次上传互不覆盖
func NewAvatarKey(userId, suffix string) string {
	if suffix != "" && !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	return fmt.Sprintf("%s/%s/%s%s", consts.AvatarFolder, userId, uuid.New().String(), suffix)
}

// OwnsAsset 对象键是否属于该用户的头像目录
func OwnsAsset(userId, key string) bool {
	return strings.HasPrefix(key, consts.AvatarFolder+"/"+userId+"/")
}

// PresignPutURL 生成限时的上传链接, 客户端直传
func PresignPutURL(key, contentType string, expire time.Duration) (string, error) {
	req, _ := getS3Client().PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(config.GetConfig().S3.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})
	url, err := req.Presign(expire)
	if err != nil {
		return "", fmt.Errorf("生成上传链接失败: %w", err)
	}
	return url, nil
}

// PublicURL 对象的公开访问地址
func PublicURL(key string) string {
	return strings.TrimRight(config.GetConfig().S3.PublicBaseURL, "/") + "/" + key
}

// DeleteObject 删除对象, 用于清理被替换的头像
func DeleteObject(key string) error {
	_, err := getS3Client().DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(config.GetConfig().S3.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("删除对象失败: %w", err)
	}
	return nil
}
