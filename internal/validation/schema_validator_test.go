package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"quantity": {"type": "integer", "minimum": 0},
		"tags": {"type": "array", "items": {"type": "string"}}
	},
	"required": ["name", "quantity"],
	"additionalProperties": false
}`

func newTestValidator(t *testing.T) SchemaValidator {
	t.Helper()
	v := NewSchemaValidator()
	require.NoError(t, v.Register("stack.schema.json", []byte(testSchema)))
	return v
}

func TestSchemaValidator_Register(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		err := NewSchemaValidator().Register("bad.schema.json", []byte(`{"type": `))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "parse schema JSON")
	})

	t.Run("invalid schema", func(t *testing.T) {
		err := NewSchemaValidator().Register("bad.schema.json", []byte(`{"type": 12}`))
		assert.Error(t, err)
	})

	t.Run("registering twice is a no-op", func(t *testing.T) {
		v := newTestValidator(t)
		assert.NoError(t, v.Register("stack.schema.json", []byte(`not even json`)))
	})
}

func TestSchemaValidator_ValidateJSON(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid", data: `{"name": "corn", "quantity": 3}`},
		{name: "valid with optional", data: `{"name": "corn", "quantity": 0, "tags": ["seed"]}`},
		{name: "missing required", data: `{"name": "corn"}`, wantError: true, errorMsg: "required"},
		{name: "wrong type", data: `{"name": "corn", "quantity": "three"}`, wantError: true, errorMsg: "/quantity"},
		{name: "constraint violation", data: `{"name": "corn", "quantity": -1}`, wantError: true, errorMsg: "minimum"},
		{name: "unknown property", data: `{"name": "corn", "quantity": 1, "color": "red"}`, wantError: true, errorMsg: "additionalProperties"},
		{name: "invalid JSON", data: `{"name": }`, wantError: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateJSON("stack.schema.json", []byte(tt.data))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.errorMsg != "" {
				assert.Contains(t, err.Error(), tt.errorMsg)
			}
		})
	}
}

func TestSchemaValidator_ValidateYAML(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid", data: "name: corn\nquantity: 3\n"},
		{name: "flow style", data: "{ name: potato, quantity: 6, tags: [seed, tuber] }"},
		{name: "wrong type", data: "name: corn\nquantity: lots\n", wantError: true, errorMsg: "/quantity"},
		{name: "fractional integer", data: "name: corn\nquantity: 1.5\n", wantError: true, errorMsg: "/quantity"},
		{name: "invalid YAML", data: "name: [unterminated", wantError: true, errorMsg: "parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateYAML("stack.schema.json", []byte(tt.data))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	err := NewSchemaValidator().ValidateJSON("missing.schema.json", []byte(`{}`))
	assert.ErrorIs(t, err, ErrSchemaNotRegistered)
}
