// Package validate rejects out-of-range input records before they reach the
// feature normalizer.
package validate

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexanderramin/educare/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrInvalidRange is matched by every *RangeError.
var ErrInvalidRange = errors.New("invalid range")

// Violation is one field that broke its declared bounds.
type Violation struct {
	Field   string
	Message string
}

// RangeError lists every violation found in a record.
type RangeError struct {
	Schema     domain.Schema
	Violations []Violation
}

func (e *RangeError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return fmt.Sprintf("invalid %s record: %s", e.Schema, strings.Join(parts, "; "))
}

func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// schemaCache caches compiled schemas by domain.Schema.
var schemaCache sync.Map // map[domain.Schema]*jsonschema.Schema

var printer = message.NewPrinter(language.English)

// Academic validates an academic record.
func Academic(rec *domain.AcademicRecord) error {
	return Record(rec)
}

// Learner validates a language-learner record.
func Learner(rec *domain.LearnerRecord) error {
	return Record(rec)
}

// Record validates raw against the bounds of its schema. It returns nil or a
// *RangeError; any other error means the schema itself could not be used.
func Record(raw domain.RawInput) error {
	if raw == nil {
		return fmt.Errorf("validate: nil record")
	}
	compiled, err := compiledSchema(raw.Schema())
	if err != nil {
		return err
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("validate: marshal %s record: %w", raw.Schema(), err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("validate: parse %s record: %w", raw.Schema(), err)
	}

	err = compiled.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("validate: %w", err)
	}

	rangeErr := &RangeError{Schema: raw.Schema()}
	collect(ve, &rangeErr.Violations)
	sort.SliceStable(rangeErr.Violations, func(i, j int) bool {
		return rangeErr.Violations[i].Field < rangeErr.Violations[j].Field
	})
	return rangeErr
}

// collect flattens the leaf causes of a validation error.
func collect(ve *jsonschema.ValidationError, out *[]Violation) {
	if len(ve.Causes) == 0 {
		field := strings.Join(ve.InstanceLocation, ".")
		if field == "" {
			field = "record"
		}
		*out = append(*out, Violation{
			Field:   field,
			Message: ve.ErrorKind.LocalizedString(printer),
		})
		return
	}
	for _, c := range ve.Causes {
		collect(c, out)
	}
}

func compiledSchema(schema domain.Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema); ok {
		return cached.(*jsonschema.Schema), nil
	}

	name := string(schema) + ".json"
	data, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("validate: no schema for %q: %w", schema, err)
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("validate: parse schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := "schema://educare/" + name
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("validate: add schema %s: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("validate: compile schema %s: %w", name, err)
	}

	schemaCache.Store(schema, compiled)
	return compiled, nil
}

// Options returns the allowed values of an enumerated field, in declaration
// order. Fields without an enum yield nil.
func Options(schema domain.Schema, field string) []string {
	data, err := schemaFS.ReadFile("schemas/" + string(schema) + ".json")
	if err != nil {
		return nil
	}
	var doc struct {
		Properties map[string]struct {
			Enum []string `json:"enum"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return doc.Properties[field].Enum
}
