package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAMLSyntax_MissingFile(t *testing.T) {
	assert.NoError(t, ValidateYAMLSyntax(filepath.Join(t.TempDir(), "missing.yml")))
}

func TestValidateYAMLSyntax_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	assert.NoError(t, ValidateYAMLSyntax(path))
}

func TestValidateYAMLSyntax_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("author: Ada\ndeps:\n  - numpy\n"), 0o644))

	assert.NoError(t, ValidateYAMLSyntax(path))
}

func TestValidateYAMLSyntax_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("author: [unclosed\n"), 0o644))

	err := ValidateYAMLSyntax(path)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, path, validationErr.FilePath)
}

func TestValidateYAMLSyntaxFromBytes(t *testing.T) {
	assert.NoError(t, ValidateYAMLSyntaxFromBytes([]byte("key: value\n"), "test.yml"))
	assert.Error(t, ValidateYAMLSyntaxFromBytes([]byte("key: [bad\n"), "test.yml"))
	assert.NoError(t, ValidateYAMLSyntaxFromBytes(nil, "test.yml"))
}

func TestValidateConfigValues(t *testing.T) {
	valid := &Configuration{License: "MIT", VenvTimeout: 600}
	assert.NoError(t, ValidateConfigValues(valid, "config"))

	// Empty license allowed (omitempty), resolved by defaults
	assert.NoError(t, ValidateConfigValues(&Configuration{}, "config"))
}

func TestValidateConfigValues_BadLicense(t *testing.T) {
	err := ValidateConfigValues(&Configuration{License: "WTFPL"}, "config")
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "license", validationErr.Field)
	assert.Contains(t, validationErr.Message, "must be one of")
}

func TestValidateConfigValues_TimeoutRange(t *testing.T) {
	err := ValidateConfigValues(&Configuration{VenvTimeout: -1}, "config")
	assert.Error(t, err)

	err = ValidateConfigValues(&Configuration{VenvTimeout: 999999}, "config")
	assert.Error(t, err)
}

func TestValidateConfigValues_EmptyDepEntry(t *testing.T) {
	err := ValidateConfigValues(&Configuration{Deps: []string{"numpy", "  "}}, "config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deps")
}

func TestValidationError_Error(t *testing.T) {
	withLine := &ValidationError{FilePath: "c.yml", Line: 3, Column: 7, Message: "bad"}
	assert.Equal(t, "c.yml:3:7: bad", withLine.Error())

	withField := &ValidationError{FilePath: "c.yml", Field: "license", Message: "bad"}
	assert.Equal(t, "c.yml: field 'license': bad", withField.Error())

	plain := &ValidationError{FilePath: "c.yml", Message: "bad"}
	assert.Equal(t, "c.yml: bad", plain.Error())
}

func TestExtractLineColumn(t *testing.T) {
	line, col := extractLineColumn("yaml: line 5: could not find expected ':'")
	assert.Equal(t, 5, line)
	assert.Equal(t, 1, col)

	line, _ = extractLineColumn("some other error")
	assert.Equal(t, 0, line)
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "venv_timeout", toSnakeCase("VenvTimeout"))
	assert.Equal(t, "license", toSnakeCase("License"))
}
