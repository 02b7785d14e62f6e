package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gosimple/slug"

	"github.com/homeveda/portal-client/internal/utils"
)

// ObjectGetter is the slice of the S3 API the downloader uses.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Downloader saves design assets and catalog media locally. Links on the
// asset bucket are read through S3; any other link is fetched over HTTP.
type Downloader struct {
	Bucket     string
	Region     string
	UseS3      bool
	S3         ObjectGetter
	HTTPClient *http.Client
}

// DownloaderConfig selects the bucket and how to reach it. Static keys, when
// both are set, replace the default credential chain.
type DownloaderConfig struct {
	Bucket          string
	Region          string
	UseS3           bool
	AccessKeyID     string
	SecretAccessKey string
}

// NewDownloader builds an S3 client when UseS3 is set. Without usable AWS
// config the S3 path is disabled and links are fetched over HTTP.
func NewDownloader(ctx context.Context, dc DownloaderConfig) *Downloader {
	d := &Downloader{
		Bucket:     dc.Bucket,
		Region:     dc.Region,
		UseS3:      dc.UseS3,
		HTTPClient: &http.Client{Timeout: 2 * time.Minute},
	}
	if !dc.UseS3 {
		return d
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(dc.Region)}
	if dc.AccessKeyID != "" && dc.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(dc.AccessKeyID, dc.SecretAccessKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		utils.Logger.WithError(err).Warn("Unable to load AWS config, falling back to HTTP downloads")
		d.UseS3 = false
		return d
	}
	d.S3 = s3.NewFromConfig(cfg)
	return d
}

// ObjectKey extracts the object key when link points into the bucket, for
// both virtual-hosted (bucket.s3.region.amazonaws.com/key) and path-style
// (s3.region.amazonaws.com/bucket/key) URLs.
func (d *Downloader) ObjectKey(link string) (string, bool) {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return "", false
	}
	host := strings.ToLower(u.Host)
	key := strings.TrimPrefix(u.Path, "/")
	switch {
	case strings.HasPrefix(host, strings.ToLower(d.Bucket)+".s3.") && strings.HasSuffix(host, ".amazonaws.com"):
	case strings.HasPrefix(host, "s3.") && strings.HasSuffix(host, ".amazonaws.com") &&
		strings.HasPrefix(key, d.Bucket+"/"):
		key = strings.TrimPrefix(key, d.Bucket+"/")
	default:
		return "", false
	}
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}
	return key, key != ""
}

// FileName is the slugged display name plus the link's extension.
func FileName(name, link string) string {
	ext := ""
	if u, err := url.Parse(link); err == nil {
		ext = strings.ToLower(path.Ext(u.Path))
	}
	base := slug.Make(name)
	if base == "" {
		base = "asset"
	}
	return base + ext
}

// Download writes the asset at link into dir and returns the file path.
func (d *Downloader) Download(ctx context.Context, link, dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	target := filepath.Join(dir, FileName(name, link))

	body, err := d.open(ctx, link)
	if err != nil {
		return "", err
	}
	defer body.Close()

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", target, err)
	}
	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	utils.Logger.WithField("file", target).Info("Asset downloaded")
	return target, nil
}

func (d *Downloader) open(ctx context.Context, link string) (io.ReadCloser, error) {
	if key, ok := d.ObjectKey(link); ok && d.UseS3 && d.S3 != nil {
		obj, err := d.S3.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(d.Bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("could not get %s from S3: %w", key, err)
		}
		return obj.Body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid asset link: %w", err)
	}
	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", link, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, utils.NewAPIError(resp.StatusCode, "")
	}
	return resp.Body, nil
}
