package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	keys []string
	body string
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.keys = append(f.keys, aws.ToString(in.Key))
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestObjectKey(t *testing.T) {
	d := &Downloader{Bucket: "home-veda-storage"}

	key, ok := d.ObjectKey("https://home-veda-storage.s3.ap-south-1.amazonaws.com/designs/Hall%20View.png")
	require.True(t, ok)
	require.Equal(t, "designs/Hall View.png", key)

	key, ok = d.ObjectKey("https://s3.ap-south-1.amazonaws.com/home-veda-storage/catalog/oak.mp4")
	require.True(t, ok)
	require.Equal(t, "catalog/oak.mp4", key)

	_, ok = d.ObjectKey("https://cdn.example.com/oak.png")
	require.False(t, ok)
}

func TestFileName(t *testing.T) {
	require.Equal(t, "living-room-render.png", FileName("Living Room Render", "https://x/y/abc.PNG"))
	require.Equal(t, "asset.pdf", FileName("  ", "https://x/plan.pdf"))
}

func TestDownloadViaS3(t *testing.T) {
	s3c := &fakeS3{body: "design-bytes"}
	d := &Downloader{Bucket: "home-veda-storage", UseS3: true, S3: s3c, HTTPClient: http.DefaultClient}

	path, err := d.Download(context.Background(), "https://home-veda-storage.s3.ap-south-1.amazonaws.com/designs/hall.png", t.TempDir(), "Hall")
	require.NoError(t, err)
	require.Equal(t, []string{"designs/hall.png"}, s3c.keys)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "design-bytes", string(data))
}

func TestDownloadViaHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	d := &Downloader{Bucket: "home-veda-storage", HTTPClient: srv.Client()}
	dir := t.TempDir()

	path, err := d.Download(context.Background(), srv.URL+"/oak.png", dir, "Oak Shelf")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, "oak-shelf.png"))

	_, err = d.Download(context.Background(), srv.URL+"/missing.png", dir, "Missing")
	require.Error(t, err)
}

func TestNewDownloader(t *testing.T) {
	t.Run("HTTPOnly", func(t *testing.T) {
		d := NewDownloader(context.Background(), DownloaderConfig{Bucket: "home-veda-storage", Region: "ap-south-1"})
		require.False(t, d.UseS3)
		require.Nil(t, d.S3)
		require.NotNil(t, d.HTTPClient)
	})

	t.Run("StaticKeys", func(t *testing.T) {
		d := NewDownloader(context.Background(), DownloaderConfig{
			Bucket:          "home-veda-storage",
			Region:          "ap-south-1",
			UseS3:           true,
			AccessKeyID:     "AKIDEXAMPLE",
			SecretAccessKey: "secret",
		})
		require.True(t, d.UseS3)
		require.NotNil(t, d.S3)
	})
}
