package publish

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"

	"github.com/vango-dev/daisy/internal/errors"
	"github.com/vango-dev/daisy/internal/logging"
)

// ObjectPutter is the part of the S3 API a Publisher needs.
// *s3.Client satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Options configures a Publisher.
type Options struct {
	Bucket string

	// Prefix is prepended to every object key.
	Prefix string

	// CacheControl is sent with every object when set.
	CacheControl string

	// DryRun lists the objects without uploading.
	DryRun bool
}

// Object is one file scheduled for upload.
type Object struct {
	Key         string
	Path        string
	ContentType string
	Size        int64
}

// Result describes a publish run.
type Result struct {
	Objects  []Object
	Uploaded int
	Bytes    int64
	Duration time.Duration
	DryRun   bool
}

// Publisher uploads a built gallery to a bucket.
type Publisher struct {
	client  ObjectPutter
	options Options
	log     zerolog.Logger
	tracer  trace.Tracer
}

// New creates a publisher. The bucket is required; client may be nil for
// dry runs.
func New(client ObjectPutter, log zerolog.Logger, options Options) (*Publisher, error) {
	if options.Bucket == "" {
		return nil, errors.New("E501")
	}
	if client == nil && !options.DryRun {
		return nil, errors.New("E504").WithDetail("no S3 client")
	}
	return &Publisher{
		client:  client,
		options: options,
		log:     logging.Component(log, "publish"),
		tracer:  otel.Tracer("daisy/publish"),
	}, nil
}

// Plan lists the objects a publish of dir would upload, sorted by key.
func (p *Publisher) Plan(dir string) ([]Object, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		e := errors.New("E503").WithDetail(dir + " is not a directory")
		if err != nil {
			e.Wrap(err)
		}
		return nil, e
	}

	var objects []Object
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		objects = append(objects, Object{
			Key:         Key(p.options.Prefix, rel),
			Path:        path,
			ContentType: ContentType(path, nil),
			Size:        fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, errors.New("E503").WithDetail("walk " + dir).Wrap(err)
	}
	if len(objects) == 0 {
		return nil, errors.New("E503").WithDetail(dir + " is empty")
	}

	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

// Publish uploads every file under dir. Individual failures do not stop
// the run; they are reported together once every file has been tried.
func (p *Publisher) Publish(ctx context.Context, dir string) (*Result, error) {
	ctx, span := p.tracer.Start(ctx, "publish",
		trace.WithAttributes(
			attribute.String("daisy.bucket", p.options.Bucket),
			attribute.String("daisy.prefix", p.options.Prefix),
			attribute.Bool("daisy.dry_run", p.options.DryRun),
		),
	)
	defer span.End()

	start := time.Now()
	objects, err := p.Plan(dir)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	result := &Result{Objects: objects, DryRun: p.options.DryRun}
	if p.options.DryRun {
		for _, obj := range objects {
			p.log.Info().Str("key", obj.Key).Str("content_type", obj.ContentType).Int64("size", obj.Size).Msg("would upload")
		}
		result.Duration = time.Since(start)
		return result, nil
	}

	var errs error
	for i := range objects {
		if err := ctx.Err(); err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		obj := &objects[i]
		if err := p.upload(ctx, obj); err != nil {
			p.log.Warn().Err(err).Str("key", obj.Key).Msg("upload failed")
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", obj.Key, err))
			continue
		}
		result.Uploaded++
		result.Bytes += obj.Size
		p.log.Debug().Str("key", obj.Key).Int64("size", obj.Size).Msg("uploaded")
	}
	result.Duration = time.Since(start)

	span.SetAttributes(attribute.Int("daisy.uploaded", result.Uploaded))
	if errs != nil {
		failed := multierr.Errors(errs)
		span.SetStatus(codes.Error, "upload failed")
		messages := make([]string, len(failed))
		for i, e := range failed {
			messages[i] = e.Error()
		}
		return result, errors.New("E502").
			WithDetail(fmt.Sprintf("%d of %d uploads failed: %s", len(failed), len(objects), strings.Join(messages, "; "))).
			Wrap(errs)
	}

	p.log.Info().
		Str("bucket", p.options.Bucket).
		Int("objects", result.Uploaded).
		Int64("bytes", result.Bytes).
		Dur("duration", result.Duration).
		Msg("published")
	return result, nil
}

func (p *Publisher) upload(ctx context.Context, obj *Object) error {
	data, err := os.ReadFile(obj.Path)
	if err != nil {
		return err
	}
	if obj.ContentType == "application/octet-stream" {
		obj.ContentType = ContentType(obj.Path, data)
	}

	in := &s3.PutObjectInput{
		Bucket:        aws.String(p.options.Bucket),
		Key:           aws.String(obj.Key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(obj.ContentType),
	}
	if p.options.CacheControl != "" {
		in.CacheControl = aws.String(p.options.CacheControl)
	}

	_, err = p.client.PutObject(ctx, in)
	return err
}

// Key joins prefix and a slash-separated relative path into an object key.
func Key(prefix, rel string) string {
	rel = filepath.ToSlash(rel)
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return rel
	}
	return prefix + "/" + rel
}

// ContentType picks a MIME type from the file extension, then from the
// content itself when head is provided.
func ContentType(path string, head []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); t != "" {
		return t
	}
	if len(head) > 0 {
		if kind, err := filetype.Match(head); err == nil && kind != filetype.Unknown {
			return kind.MIME.Value
		}
	}
	return "application/octet-stream"
}
