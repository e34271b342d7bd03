package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Lion cub.jpg", "Lion_cub.jpg"},
		{"Löwe (Panthera leo).jpg", "Lwe_Panthera_leo.jpg"},
		{"plain-name_01.png", "plain-name_01.png"},
		{"weird/..\\name?.jpeg", "weird..name.jpeg"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sanitizeFilename(c.in), "sanitizeFilename(%q)", c.in)
	}
}

func TestKeywordFilter(t *testing.T) {
	f := newKeywordFilter(
		[]string{"lion", "tiger"},
		[]string{"skeleton", "map"},
		[]string{".svg", ".tif"},
	)

	assert.True(t, f.keep("File:Lion resting.jpg", "Lion_resting.jpg"))
	assert.True(t, f.keep("File:Bengal TIGER.jpg", "Bengal_TIGER.jpg"))

	// Excluded keywords win even when an include matches.
	assert.False(t, f.keep("File:Lion skeleton.jpg", "Lion_skeleton.jpg"))
	// Extension check runs on the filename.
	assert.False(t, f.keep("File:Lion drawing.svg", "Lion_drawing.svg"))
	assert.False(t, f.keep("File:Tiger scan.tif", "Tiger_scan.TIF"))
	// No include keyword matched.
	assert.False(t, f.keep("File:Zebra herd.jpg", "Zebra_herd.jpg"))
}

func TestKeywordFilter_EmptyIncludeKeepsAll(t *testing.T) {
	f := newKeywordFilter(nil, []string{"diagram"}, nil)

	assert.True(t, f.keep("File:Anything.jpg", "Anything.jpg"))
	assert.False(t, f.keep("File:Range diagram.jpg", "Range_diagram.jpg"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList("a, b ,c"))
	assert.Equal(t, []string{"one"}, splitList("one"))
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , ,"))
}

func TestResolveConfig_FlagsOnly(t *testing.T) {
	cfg, err := resolveConfig("", "Cats,Dogs", "/tmp/pics", 25, "cat", "skull", ".svg")
	require.NoError(t, err)

	assert.Equal(t, []string{"Cats", "Dogs"}, cfg.Categories)
	assert.Equal(t, "/tmp/pics", cfg.Out)
	assert.Equal(t, 25, cfg.Limit)
	assert.Equal(t, []string{"cat"}, cfg.Include)
	assert.Equal(t, []string{"skull"}, cfg.Exclude)
	assert.Equal(t, []string{".svg"}, cfg.ExcludeExt)
}

func TestResolveConfig_FileWithFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrape.yaml")
	data := `categories: [Lions, Tigers]
include: [lion]
exclude: [skeleton]
exclude_ext: [".svg"]
limit: 10
out: assets/animals
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	// Empty flags leave the file values alone.
	cfg, err := resolveConfig(path, "", "", 0, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Lions", "Tigers"}, cfg.Categories)
	assert.Equal(t, "assets/animals", cfg.Out)
	assert.Equal(t, 10, cfg.Limit)

	// Non-empty flags override per field.
	cfg, err = resolveConfig(path, "Bears", "elsewhere", 5, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bears"}, cfg.Categories)
	assert.Equal(t, "elsewhere", cfg.Out)
	assert.Equal(t, 5, cfg.Limit)
	assert.Equal(t, []string{"lion"}, cfg.Include, "untouched fields survive")
}

func TestResolveConfig_LimitPrecedence(t *testing.T) {
	// Nothing sets a limit: the built-in default applies.
	cfg, err := resolveConfig("", "Cats", "out", 0, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, defaultLimit, cfg.Limit)

	path := filepath.Join(t.TempDir(), "scrape.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limit: 10\n"), 0o644))

	// An unset flag must not clobber the file's limit.
	cfg, err = resolveConfig(path, "", "", 0, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Limit)

	// An explicit flag beats the file.
	cfg, err = resolveConfig(path, "", "", 3, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Limit)
}

func TestResolveConfig_BadFile(t *testing.T) {
	_, err := resolveConfig("/no/such/config.yaml", "", "", 0, "", "", "")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [unclosed"), 0o644))
	_, err = resolveConfig(path, "", "", 0, "", "", "")
	assert.Error(t, err)
}
