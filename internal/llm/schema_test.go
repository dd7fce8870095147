package llm

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const explanationJSON = `{"explanation":"ls lists a directory; cd changes into it.","tip":"Run pwd to see where you are.","suggested_command":"cd documents"}`

func explanationSchema() *Schema {
	return NewSchema("test-explanation", "Why a shell command missed", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation":       map[string]any{"type": "string", "minLength": 1},
			"tip":               map[string]any{"type": "string"},
			"suggested_command": map[string]any{"type": "string"},
		},
		"required":             []any{"explanation", "tip", "suggested_command"},
		"additionalProperties": false,
	})
}

func TestSchema_Check(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"complete", explanationJSON, true},
		{"empty suggestion", `{"explanation":"x","tip":"y","suggested_command":""}`, true},
		{"missing suggestion", `{"explanation":"x","tip":"y"}`, false},
		{"empty explanation", `{"explanation":"","tip":"y","suggested_command":""}`, false},
		{"wrong type", `{"explanation":"x","tip":3,"suggested_command":""}`, false},
		{"extra property", `{"explanation":"x","tip":"y","suggested_command":"","mood":"sad"}`, false},
		{"malformed", `{not json}`, false},
		{"empty", ``, false},
	}

	schema := explanationSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Check(json.RawMessage(tt.raw))
			if tt.valid {
				require.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			require.True(t, errors.As(err, &inv), "got %T (%v)", err, err)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestSchema_BadDefinition(t *testing.T) {
	bad := NewSchema("test-bad", "", map[string]any{"type": 42})
	err := bad.Check(json.RawMessage(`{}`))
	var inv *ErrInvalidResponse
	require.True(t, errors.As(err, &inv), "got %T (%v)", err, err)
	assert.Contains(t, err.Error(), "test-bad")
}

func TestSchema_ConcurrentChecks(t *testing.T) {
	schema := explanationSchema()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, schema.Check(json.RawMessage(explanationJSON)))
		}()
	}
	wg.Wait()
}

func TestExtractJSON(t *testing.T) {
	tests := map[string]string{
		explanationJSON:                         explanationJSON,
		"  " + explanationJSON + "\n":           explanationJSON,
		"```json\n" + explanationJSON + "\n```": explanationJSON,
		"```\n" + explanationJSON + "\n```":     explanationJSON,
		"```json\n" + explanationJSON:           "```json\n" + explanationJSON,
	}
	for in, want := range tests {
		assert.Equal(t, want, string(extractJSON(in)), "%q", in)
	}
}
