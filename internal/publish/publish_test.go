package publish

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/daisy/internal/config"
	"github.com/vango-dev/daisy/internal/errors"
)

type upload struct {
	key, contentType, cacheControl, body string
}

type fakePutter struct {
	mu      sync.Mutex
	uploads map[string]upload
	fail    map[string]bool
}

func newFakePutter(fail ...string) *fakePutter {
	f := &fakePutter{uploads: map[string]upload{}, fail: map[string]bool{}}
	for _, k := range fail {
		f.fail[k] = true
	}
	return f
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	key := aws.ToString(in.Key)
	if f.fail[key] {
		return nil, assert.AnError
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads[key] = upload{
		key:          key,
		contentType:  aws.ToString(in.ContentType),
		cacheControl: aws.ToString(in.CacheControl),
		body:         string(body),
	}
	return &s3.PutObjectOutput{}, nil
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func writeGallery(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string][]byte{
		"index.html":             []byte("<!DOCTYPE html><title>Index</title>"),
		"components/button.html": []byte("<!DOCTYPE html><title>Button</title>"),
		"manifest.json":          []byte(`{"files":[]}`),
		"logo":                   pngHeader,
	}
	for name, data := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
	return dir
}

func TestNewRequiresBucket(t *testing.T) {
	_, err := New(newFakePutter(), zerolog.Nop(), Options{})
	require.Error(t, err)
	assert.Equal(t, "E501", errors.Code(err))

	_, err = New(nil, zerolog.Nop(), Options{Bucket: "b"})
	require.Error(t, err)
	assert.Equal(t, "E504", errors.Code(err))

	_, err = New(nil, zerolog.Nop(), Options{Bucket: "b", DryRun: true})
	assert.NoError(t, err)
}

func TestPublish(t *testing.T) {
	dir := writeGallery(t)
	putter := newFakePutter()
	p, err := New(putter, zerolog.Nop(), Options{
		Bucket:       "gallery",
		Prefix:       "/site/",
		CacheControl: "max-age=60",
	})
	require.NoError(t, err)

	result, err := p.Publish(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Uploaded)
	assert.False(t, result.DryRun)

	keys := make([]string, 0, len(result.Objects))
	for _, o := range result.Objects {
		keys = append(keys, o.Key)
	}
	assert.Equal(t, []string{
		"site/components/button.html",
		"site/index.html",
		"site/logo",
		"site/manifest.json",
	}, keys)

	index := putter.uploads["site/index.html"]
	assert.True(t, strings.HasPrefix(index.contentType, "text/html"), index.contentType)
	assert.Equal(t, "max-age=60", index.cacheControl)
	assert.Equal(t, "<!DOCTYPE html><title>Index</title>", index.body)

	assert.Equal(t, "application/json", putter.uploads["site/manifest.json"].contentType)
	assert.Equal(t, "image/png", putter.uploads["site/logo"].contentType)
	assert.Equal(t, int64(len(pngHeader)), result.Objects[2].Size)
}

func TestPublishDryRun(t *testing.T) {
	dir := writeGallery(t)
	p, err := New(nil, zerolog.Nop(), Options{Bucket: "gallery", DryRun: true})
	require.NoError(t, err)

	result, err := p.Publish(context.Background(), dir)
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 0, result.Uploaded)
	assert.Len(t, result.Objects, 4)
	assert.Equal(t, "components/button.html", result.Objects[0].Key)
}

func TestPublishAggregatesFailures(t *testing.T) {
	dir := writeGallery(t)
	putter := newFakePutter("index.html", "logo")
	p, err := New(putter, zerolog.Nop(), Options{Bucket: "gallery"})
	require.NoError(t, err)

	result, err := p.Publish(context.Background(), dir)
	require.Error(t, err)
	assert.Equal(t, "E502", errors.Code(err))
	require.NotNil(t, result)
	assert.Equal(t, 2, result.Uploaded)
	assert.Len(t, putter.uploads, 2)

	var de *errors.DaisyError
	require.ErrorAs(t, err, &de)
	assert.True(t, strings.HasPrefix(de.Detail, "2 of 4 uploads failed"), de.Detail)
	assert.Contains(t, de.Detail, "index.html")
	assert.Contains(t, de.Detail, "logo")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPublishCancelled(t *testing.T) {
	dir := writeGallery(t)
	putter := newFakePutter()
	p, err := New(putter, zerolog.Nop(), Options{Bucket: "gallery"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Publish(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, putter.uploads)
}

func TestPlanNothingToPublish(t *testing.T) {
	p, err := New(newFakePutter(), zerolog.Nop(), Options{Bucket: "gallery"})
	require.NoError(t, err)

	_, err = p.Plan(filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, "E503", errors.Code(err))

	_, err = p.Plan(t.TempDir())
	assert.Equal(t, "E503", errors.Code(err))
}

func TestKey(t *testing.T) {
	tests := []struct {
		prefix, rel, want string
	}{
		{"", "index.html", "index.html"},
		{"docs", "index.html", "docs/index.html"},
		{"docs/", "components/kbd.html", "docs/components/kbd.html"},
		{"/a/b/", "x.json", "a/b/x.json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Key(tt.prefix, filepath.FromSlash(tt.rel)))
	}
}

func TestContentType(t *testing.T) {
	assert.True(t, strings.HasPrefix(ContentType("a/INDEX.HTML", nil), "text/html"))
	assert.Equal(t, "application/json", ContentType("manifest.json", nil))
	assert.Equal(t, "image/png", ContentType("logo", pngHeader))
	assert.Equal(t, "application/octet-stream", ContentType("LICENSE", []byte("MIT")))
}

func TestNewS3Client(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	t.Setenv("AWS_CONFIG_FILE", empty)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", empty)
	t.Setenv("AWS_PROFILE", "")

	client, err := NewS3Client(context.Background(), config.PublishConfig{
		Region:    "eu-central-1",
		Endpoint:  "http://localhost:9000",
		PathStyle: true,
	}, WithStaticCredentials("key", "secret"))
	require.NoError(t, err)

	opts := client.Options()
	assert.Equal(t, "eu-central-1", opts.Region)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)

	creds, err := opts.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key", creds.AccessKeyID)
}
