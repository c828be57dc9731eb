package validation

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const levelSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"level": {"type": "integer", "minimum": 1},
			"experience": {"type": "integer", "minimum": 1}
		},
		"required": ["level", "experience"]
	}
}`

func testSchemas() fstest.MapFS {
	return fstest.MapFS{
		"level.schema.json":  {Data: []byte(levelSchema)},
		"broken.schema.json": {Data: []byte(`{"type": `)},
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(testSchemas())

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid data",
			data: `[{"level": 1, "experience": 15}, {"level": 2, "experience": 30}]`,
		},
		{
			name: "empty list",
			data: `[]`,
		},
		{
			name:      "missing required field",
			data:      `[{"level": 1}]`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "wrong type for field",
			data:      `[{"level": "one", "experience": 15}]`,
			wantError: true,
			errorMsg:  "/0/level",
		},
		{
			name:      "constraint violation",
			data:      `[{"level": 1, "experience": 0}]`,
			wantError: true,
			errorMsg:  "/0/experience",
		},
		{
			name:      "invalid JSON",
			data:      `[{"level": }]`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "level.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_SchemaErrors(t *testing.T) {
	v := NewSchemaValidator(testSchemas())

	err := v.ValidateBytes([]byte(`[]`), "missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")

	err = v.ValidateBytes([]byte(`[]`), "broken.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_ConcurrentUse(t *testing.T) {
	v := NewSchemaValidator(testSchemas())

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = v.ValidateBytes([]byte(`[{"level": 1, "experience": 2}]`), "level.schema.json")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
