// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package arbor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTreeOptions_AppliesDebugCheckAndNameIndex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tree.toml")
	contents := `
debug_check = true
enable_name_index = true
name_index_size = 32
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	opts, err := LoadTreeOptions(path)
	require.NoError(t, err)
	require.Len(t, opts, 2)

	tr := NewTree(opts...)
	assert.True(t, tr.debugCheck)
	assert.NotNil(t, tr.nameIndex)
}

func TestLoadTreeOptions_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadTreeOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
