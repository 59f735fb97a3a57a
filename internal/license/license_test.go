package license

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	var ids []string
	for _, info := range Supported() {
		ids = append(ids, info.ID)
	}

	assert.Equal(t, []string{"MIT", "Apache-2.0", "GPL-3.0", "BSD-3-Clause", "None"}, ids)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("MIT"))
	assert.True(t, IsSupported("None"))
	assert.False(t, IsSupported("WTFPL"))
	assert.False(t, IsSupported(""))
}

func TestRender_MIT(t *testing.T) {
	out, err := Render("MIT", 2026, "Ada Lovelace")
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "MIT License")
	assert.Contains(t, content, "Copyright (c) 2026 Ada Lovelace")
}

func TestRender_AllTexts(t *testing.T) {
	for _, id := range []string{"MIT", "Apache-2.0", "GPL-3.0", "BSD-3-Clause"} {
		out, err := Render(id, 2026, "Ada Lovelace")
		require.NoError(t, err, "license %s should render", id)
		assert.Contains(t, string(out), "2026")
		assert.Contains(t, string(out), "Ada Lovelace")
	}
}

func TestRender_EmptyAuthorPlaceholder(t *testing.T) {
	out, err := Render("MIT", 2026, "")
	require.NoError(t, err)
	assert.Contains(t, string(out), "Your Name")
}

func TestRender_None(t *testing.T) {
	_, err := Render("None", 2026, "Ada Lovelace")
	assert.Error(t, err, "None has no license text")
}

func TestRender_Unsupported(t *testing.T) {
	_, err := Render("WTFPL", 2026, "Ada Lovelace")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported license")
}
