package site

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"

	"github.com/vango-dev/daisy/internal/catalog"
	"github.com/vango-dev/daisy/internal/config"
	"github.com/vango-dev/daisy/internal/errors"
	"github.com/vango-dev/daisy/internal/logging"
	"github.com/vango-dev/daisy/pkg/daisy"
	"github.com/vango-dev/daisy/pkg/render"
	"github.com/vango-dev/daisy/pkg/vdom"
)

const tracerName = "github.com/vango-dev/daisy/internal/site"

// ManifestFile is the manifest record of one written file.
type ManifestFile struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// Manifest describes one gallery build. It is written as manifest.json.
type Manifest struct {
	BuildID     string         `json:"build_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Theme       string         `json:"theme"`
	Files       []ManifestFile `json:"files"`
}

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// OutDir is the gallery root.
	OutDir string

	// Manifest lists every written page.
	Manifest Manifest
}

// Options configures the builder. Zero fields fall back to daisy.yaml.
type Options struct {
	OutDir  string
	Workers int
	Theme   string
	Pretty  bool

	// Clean removes the output directory before building.
	Clean bool

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Builder renders the catalog into a static gallery.
type Builder struct {
	config  *config.Config
	catalog *catalog.Catalog
	options Options
	log     zerolog.Logger
	tracer  trace.Tracer

	// now is replaced in tests.
	now func() time.Time
}

// New creates a new builder.
func New(cfg *config.Config, cat *catalog.Catalog, log zerolog.Logger, options Options) *Builder {
	if options.OutDir == "" {
		options.OutDir = cfg.OutputPath()
	}
	if options.Workers <= 0 {
		options.Workers = cfg.Build.Workers
	}
	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	}
	if options.Theme == "" {
		options.Theme = cfg.Site.Theme
	}
	if !options.Pretty && cfg.Build.Pretty {
		options.Pretty = true
	}

	return &Builder{
		config:  cfg,
		catalog: cat,
		options: options,
		log:     logging.Component(log, "site"),
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
	}
}

// page is one unit of work for the render pool.
type page struct {
	path  string
	title string
	build func(opts PageOptions) (*vdom.VNode, error)
	depth int
}

// Build renders every page concurrently and writes manifest.json.
// Pages that fail do not stop the others; their errors are combined in
// the returned E303 error.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := b.now()

	ctx, span := b.tracer.Start(ctx, "site.Build")
	defer span.End()

	if _, ok := daisy.ParseThemeName(b.options.Theme); !ok {
		return nil, errors.New("E105").WithDetail(fmt.Sprintf("%q is not a built-in theme", b.options.Theme))
	}

	if b.options.Clean {
		b.progress("Cleaning output directory...")
		if err := os.RemoveAll(b.options.OutDir); err != nil {
			return nil, errors.New("E302").Wrap(err)
		}
	}
	if err := os.MkdirAll(filepath.Join(b.options.OutDir, "components"), 0o755); err != nil {
		return nil, errors.New("E302").Wrap(err)
	}

	pages := b.pages()
	span.SetAttributes(attribute.Int("pages", len(pages)), attribute.Int("workers", b.options.Workers))
	b.progress(fmt.Sprintf("Rendering %d pages with %d workers...", len(pages), b.options.Workers))

	files, err := b.renderAll(ctx, pages)
	if ctxErr := ctx.Err(); ctxErr != nil {
		span.SetStatus(codes.Error, ctxErr.Error())
		return nil, ctxErr
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pages failed")
		return nil, errors.New("E303").
			WithDetail(fmt.Sprintf("%d of %d pages failed", len(multierr.Errors(err)), len(pages))).
			Wrap(err)
	}

	manifest := Manifest{
		BuildID:     uuid.NewString(),
		GeneratedAt: start.UTC(),
		Theme:       b.options.Theme,
		Files:       files,
	}

	b.progress("Writing manifest...")
	if err := b.writeManifest(manifest); err != nil {
		return nil, errors.New("E302").Wrap(err)
	}

	result := &Result{
		Duration: b.now().Sub(start),
		OutDir:   b.options.OutDir,
		Manifest: manifest,
	}
	b.log.Info().
		Str("build_id", manifest.BuildID).
		Int("pages", len(files)).
		Dur("duration", result.Duration).
		Msg("gallery built")
	return result, nil
}

func (b *Builder) pages() []page {
	pages := []page{{
		path:  "index.html",
		build: func(opts PageOptions) (*vdom.VNode, error) { return IndexPage(b.catalog, opts), nil },
	}}
	for _, e := range b.catalog.List() {
		name := e.Name
		pages = append(pages, page{
			path:  PagePath(name),
			title: e.Title,
			depth: 1,
			build: func(opts PageOptions) (*vdom.VNode, error) {
				return ComponentPage(b.catalog, name, opts)
			},
		})
	}
	return pages
}

// renderAll feeds pages to a bounded pool of workers.
func (b *Builder) renderAll(ctx context.Context, pages []page) ([]ManifestFile, error) {
	jobs := make(chan page)

	var (
		mu    sync.Mutex
		errs  error
		files []ManifestFile
		wg    sync.WaitGroup
	)

	workers := b.options.Workers
	if workers > len(pages) {
		workers = len(pages)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				file, err := b.renderPage(ctx, p)
				mu.Lock()
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("%s: %w", p.path, err))
				} else {
					files = append(files, file)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, p := range pages {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- p:
		}
	}
	close(jobs)
	wg.Wait()

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, errs
}

func (b *Builder) renderPage(ctx context.Context, p page) (ManifestFile, error) {
	_, span := b.tracer.Start(ctx, "site.renderPage", trace.WithAttributes(attribute.String("page", p.path)))
	defer span.End()

	opts := PageOptions{
		Site:  b.config.Site,
		Theme: b.options.Theme,
		Links: StaticLinks(p.depth),
		Year:  b.now().Year(),
	}

	body, err := p.build(opts)
	if err != nil {
		span.RecordError(err)
		return ManifestFile{}, err
	}

	var buf bytes.Buffer
	r := render.NewRenderer(render.RendererConfig{Pretty: b.options.Pretty})
	if err := r.RenderPage(&buf, Document(opts, p.title, body)); err != nil {
		span.RecordError(err)
		return ManifestFile{}, errors.New("E301").Wrap(err)
	}

	target := filepath.Join(b.options.OutDir, filepath.FromSlash(p.path))
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		span.RecordError(err)
		return ManifestFile{}, errors.New("E302").Wrap(err)
	}

	sum := sha256.Sum256(buf.Bytes())
	b.log.Debug().Str("page", p.path).Int("bytes", buf.Len()).Msg("page written")
	return ManifestFile{
		Path:   p.path,
		Size:   int64(buf.Len()),
		SHA256: hex.EncodeToString(sum[:]),
	}, nil
}

// writeManifest writes manifest.json.
func (b *Builder) writeManifest(m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(b.options.OutDir, "manifest.json"), data, 0o644)
}

// progress reports build progress.
func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}

// ReadManifest loads manifest.json from a built gallery.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// HashFile returns the SHA256 hash of a file.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Clean removes the build output directory.
func (b *Builder) Clean() error {
	return os.RemoveAll(b.options.OutDir)
}
