package catalog

import (
	_ "embed"
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/daisy/internal/errors"
	"github.com/vango-dev/daisy/pkg/vdom"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// knownCategories are the categories accepted in catalog.yaml.
var knownCategories = []string{"actions", "data-display", "data-input", "feedback", "layout", "mockup", "navigation"}

// Manifest is the parsed form of catalog.yaml.
type Manifest struct {
	Version    int      `yaml:"version" validate:"eq=1"`
	Components []*Entry `yaml:"components" validate:"min=1,dive,required"`
}

// Entry describes one component family.
type Entry struct {
	Name        string `yaml:"name" validate:"required,ident"`
	Title       string `yaml:"title,omitempty"`
	Category    string `yaml:"category" validate:"required,category"`
	Description string `yaml:"description" validate:"required"`

	// Parts lists the exported functions of the family.
	Parts []string `yaml:"parts" validate:"min=1,dive,required"`

	Demos []DemoInfo `yaml:"demos" validate:"min=1,dive"`
}

// DemoInfo describes one named example of a component.
type DemoInfo struct {
	Name        string `yaml:"name" validate:"required,ident"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Demo returns the demo named name, if the entry has one.
func (e *Entry) Demo(name string) (DemoInfo, bool) {
	for _, d := range e.Demos {
		if d.Name == name {
			return d, true
		}
	}
	return DemoInfo{}, false
}

// Catalog is a validated, immutable set of entries with their demos.
type Catalog struct {
	entries []*Entry
	byName  map[string]*Entry
	demos   map[string]Demo
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embeddedCatalog, builtinDemos)
}

// Parse builds a catalog from manifest data and a demo registry keyed by
// "component/demo".
func Parse(data []byte, demos map[string]Demo) (*Catalog, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.New("E201").WithDetail(err.Error()).Wrap(err)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	if err := checkDemos(&m, demos); err != nil {
		return nil, err
	}

	c := &Catalog{
		entries: m.Components,
		byName:  make(map[string]*Entry, len(m.Components)),
		demos:   demos,
	}
	for _, e := range c.entries {
		if e.Title == "" {
			e.Title = titleFromName(e.Name)
		}
		for i := range e.Demos {
			if e.Demos[i].Title == "" {
				e.Demos[i].Title = titleFromName(e.Demos[i].Name)
			}
		}
		c.byName[e.Name] = e
	}
	sort.Slice(c.entries, func(i, j int) bool {
		return c.entries[i].Name < c.entries[j].Name
	})
	return c, nil
}

// List returns every entry sorted by name.
func (c *Catalog) List() []*Entry {
	out := make([]*Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get returns the entry named name.
func (c *Catalog) Get(name string) (*Entry, error) {
	e, ok := c.byName[name]
	if !ok {
		return nil, errors.New("E202").
			WithDetail(fmt.Sprintf("No component named %q in the catalog", name))
	}
	return e, nil
}

// Categories returns the distinct categories in use, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	sort.Strings(out)
	return out
}

// InCategory returns the entries of one category, sorted by name.
func (c *Catalog) InCategory(category string) []*Entry {
	var out []*Entry
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Search returns entries whose name, title, category, description or parts
// contain query, ignoring case. An empty query matches everything.
func (c *Catalog) Search(query string) []*Entry {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return c.List()
	}

	var out []*Entry
	for _, e := range c.entries {
		fields := append([]string{e.Name, e.Title, e.Category, e.Description}, e.Parts...)
		for _, f := range fields {
			if strings.Contains(fold.String(f), q) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// RenderDemo builds the node tree of one demo.
func (c *Catalog) RenderDemo(name, demo string) (*vdom.VNode, error) {
	e, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	if _, ok := e.Demo(demo); !ok {
		names := make([]string, 0, len(e.Demos))
		for _, d := range e.Demos {
			names = append(names, d.Name)
		}
		return nil, errors.New("E203").
			WithDetail(fmt.Sprintf("Component %q has no demo %q (available: %s)", name, demo, strings.Join(names, ", ")))
	}
	return c.demos[demoKey(name, demo)](), nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identRegex = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		})
		_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
			return identRegex.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			for _, c := range knownCategories {
				if c == s {
					return true
				}
			}
			return false
		})
		validateInst = v
	})
	return validateInst
}

// validate checks field rules and name uniqueness, reporting every
// problem at once.
func (m *Manifest) validate() error {
	var errs error

	if err := validatorInstance().Struct(m); err != nil {
		var ves validator.ValidationErrors
		if stderrors.As(err, &ves) {
			for _, fe := range ves {
				errs = multierr.Append(errs, fmt.Errorf("%s: failed %q validation (value %v)",
					strings.TrimPrefix(fe.Namespace(), "Manifest."), fe.Tag(), fe.Value()))
			}
		} else {
			errs = multierr.Append(errs, err)
		}
	}

	seen := make(map[string]bool)
	for _, e := range m.Components {
		if e == nil {
			continue
		}
		if seen[e.Name] {
			errs = multierr.Append(errs, fmt.Errorf("duplicate component %q", e.Name))
		}
		seen[e.Name] = true

		demos := make(map[string]bool)
		for _, d := range e.Demos {
			if demos[d.Name] {
				errs = multierr.Append(errs, fmt.Errorf("%s: duplicate demo %q", e.Name, d.Name))
			}
			demos[d.Name] = true
		}
	}

	if errs == nil {
		return nil
	}
	return errors.New("E201").WithDetail(joinErrors(errs)).Wrap(errs)
}

// checkDemos requires a one-to-one match between catalog demos and
// demo functions.
func checkDemos(m *Manifest, demos map[string]Demo) error {
	var errs error
	listed := make(map[string]bool)

	for _, e := range m.Components {
		for _, d := range e.Demos {
			key := demoKey(e.Name, d.Name)
			listed[key] = true
			if fn, ok := demos[key]; !ok || fn == nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: no demo function", key))
			}
		}
	}

	keys := make([]string, 0, len(demos))
	for key := range demos {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !listed[key] {
			errs = multierr.Append(errs, fmt.Errorf("%s: demo function has no catalog entry", key))
		}
	}

	if errs == nil {
		return nil
	}
	return errors.New("E204").WithDetail(joinErrors(errs)).Wrap(errs)
}

func joinErrors(err error) string {
	parts := multierr.Errors(err)
	msgs := make([]string, 0, len(parts))
	for _, e := range parts {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// titleFromName turns "input-group" into "Input Group".
func titleFromName(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}
