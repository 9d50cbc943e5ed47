// Package cloudsync mirrors generated documents and payment evidence to an
// S3-compatible bucket (Cloudflare R2). Uploads are best effort; a failed
// sync never fails the request that produced the file.
package cloudsync

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"time"

	appconfig "biller-backend/internal/config"
	"biller-backend/internal/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Uploader struct {
	client     *s3.Client
	bucket     string
	rootFolder string
}

// New builds an uploader from storage config. Missing credentials disable
// sync rather than failing startup, so the tool works fully offline.
func New(cfg *appconfig.Config) *Uploader {
	st := cfg.Storage
	if st.Endpoint == "" || st.AccessKey == "" || st.SecretKey == "" || st.Bucket == "" {
		log.Println("[CloudSync] Storage credentials not set, cloud sync disabled")
		return &Uploader{}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			st.AccessKey,
			st.SecretKey,
			"",
		)),
		awsconfig.WithRegion(st.Region),
	)
	if err != nil {
		log.Printf("[CloudSync] Failed to configure client, cloud sync disabled: %v", err)
		return &Uploader{}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(st.Endpoint)
	})

	return &Uploader{
		client:     client,
		bucket:     st.Bucket,
		rootFolder: st.RootFolder,
	}
}

func (u *Uploader) Enabled() bool {
	return u != nil && u.client != nil
}

// Upload writes one object under <root>/<folder>/<filename>. Re-uploading
// the same name overwrites the previous copy, which is how regenerated
// documents stay current in the bucket.
func (u *Uploader) Upload(ctx context.Context, folder, filename string, body io.Reader) error {
	if !u.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	key := path.Join(u.rootFolder, folder, filename)
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		metrics.CloudSyncFailures.Inc()
		return fmt.Errorf("upload %s: %w", key, err)
	}

	log.Printf("[CloudSync] Uploaded %s", key)
	return nil
}
