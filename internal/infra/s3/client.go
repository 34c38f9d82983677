package s3

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/config"
)

// Client wraps the S3 service for the image-upload form controls.
type Client struct {
	region string
	svc    *s3.S3
}

func NewClient(cfg *config.AWSConfig) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		region: cfg.Region,
		svc:    s3.New(sess),
	}, nil
}

// Upload stores the object under folder/<random>-<filename> and returns its
// public URL. Failures surface to the caller as-is; there is no retry.
func (c *Client) Upload(ctx context.Context, src io.Reader, bucket, folder, filename string) (string, error) {
	key := objectKey(folder, filename)

	_, err := c.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   aws.ReadSeekCloser(src),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, c.region, key), nil
}

func objectKey(folder, filename string) string {
	filename = path.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == "/" {
		filename = "upload"
	}
	folder = strings.Trim(folder, "/")
	name := uuid.New().String() + "-" + filename
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
