package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/daisy/internal/errors"
	"github.com/vango-dev/daisy/pkg/daisy"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

// validatorInstance returns the shared validator with daisy's custom tags.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report YAML key names rather than Go field names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, ok := daisy.ParseThemeName(fl.Field().String())
			return ok
		})

		validateInst = v
	})
	return validateInst
}

// convertValidationError turns the first validator failure into a
// DaisyError pointing at the offending key when source is available.
func convertValidationError(err error, path string, source []byte) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return errors.New("E102").Wrap(err)
	}

	fe := ves[0]
	keys := yamlPath(fe)
	field := strings.Join(keys, ".")

	var de *errors.DaisyError
	if fe.Tag() == "theme" {
		de = errors.New("E105").
			WithDetail(fmt.Sprintf("%s: %q is not a built-in theme", field, fe.Value()))
	} else {
		de = errors.New("E102").
			WithDetail(fmt.Sprintf("%s %s", field, describe(fe)))
	}

	if path != "" && len(source) > 0 {
		if line, col := findKey(source, keys); line > 0 {
			de.WithLocation(path, line, col)
		}
	}
	return de.Wrap(err)
}

// yamlPath converts a validator namespace ("Config.site.theme") into
// YAML keys, dropping the root type and slice indexes.
func yamlPath(fe validator.FieldError) []string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if idx := strings.IndexByte(p, '['); idx >= 0 {
			parts[i] = p[:idx]
		}
	}
	return parts
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "url":
		return "must be a URL"
	}
	return "failed validation for tag '" + fe.Tag() + "'"
}

// findKey returns the line and column of the value at keys in a YAML
// document, or 0, 0 when it cannot be located.
func findKey(source []byte, keys []string) (int, int) {
	var doc yaml.Node
	if err := yaml.Unmarshal(source, &doc); err != nil || len(doc.Content) == 0 {
		return 0, 0
	}
	node := doc.Content[0]
	line, col := 0, 0
	for _, key := range keys {
		if node.Kind != yaml.MappingNode {
			break
		}
		found := false
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				node = node.Content[i+1]
				line, col = node.Line, node.Column
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return line, col
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
