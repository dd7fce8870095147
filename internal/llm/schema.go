package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a JSON Schema document the model must answer with. It compiles
// on first use and is safe for concurrent checks.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// NewSchema builds a Schema. name is kebab-case and doubles as the
// structured output name sent to OpenAI-compatible APIs.
func NewSchema(name, description string, def map[string]any) *Schema {
	return &Schema{Name: name, Description: description, Definition: def}
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		doc, err := toJSONValue(s.Definition)
		if err != nil {
			s.err = err
			return
		}
		url := "mem://" + s.Name + ".json"
		c := jsonschema.NewCompiler()
		if err := c.AddResource(url, doc); err != nil {
			s.err = err
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}

// Check reports an *ErrInvalidResponse unless raw is a JSON document that
// satisfies s.
func (s *Schema) Check(raw json.RawMessage) error {
	invalid := func(format string, args ...any) error {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf(format, args...)}
	}
	sch, err := s.compile()
	if err != nil {
		return invalid("schema %s: %w", s.Name, err)
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid("not JSON: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return invalid("%s: %w", s.Name, err)
	}
	return nil
}

// toJSONValue round-trips v so that numbers have the json.Number form the
// validator expects.
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(b))
}

// extractJSON strips the markdown fence some models wrap around a JSON
// answer even when asked not to.
func extractJSON(text string) json.RawMessage {
	t := strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(t, "```"); ok {
		rest = strings.TrimPrefix(rest, "json")
		if body, ok := strings.CutSuffix(strings.TrimSpace(rest), "```"); ok {
			t = strings.TrimSpace(body)
		}
	}
	return json.RawMessage(t)
}
