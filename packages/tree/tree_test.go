package tree_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repo-radar/packages/tree"
	"repo-radar/types"
)

func TestBuildAndRender(t *testing.T) {
	entries := []types.TreeEntry{
		{Path: "src/a.py", Kind: types.File},
		{Path: "src/b/c.py", Kind: types.File},
	}

	rendered := tree.Build(entries).Render()

	expected := "Root\n" +
		"└── src/\n" +
		"    ├── b/\n" +
		"    │   └── c.py\n" +
		"    └── a.py\n"
	assert.Equal(t, expected, rendered)
}

func TestRenderDirectoriesBeforeFiles(t *testing.T) {
	entries := []types.TreeEntry{
		{Path: "zebra.txt", Kind: types.File},
		{Path: "alpha.txt", Kind: types.File},
		{Path: "docs", Kind: types.Directory},
		{Path: "cmd", Kind: types.Directory},
	}

	rendered := tree.Build(entries).Render()

	expected := "Root\n" +
		"├── cmd/\n" +
		"├── docs/\n" +
		"├── alpha.txt\n" +
		"└── zebra.txt\n"
	assert.Equal(t, expected, rendered)
}

func TestRenderPermutationInvariant(t *testing.T) {
	orders := [][]types.TreeEntry{
		{
			{Path: "src", Kind: types.Directory},
			{Path: "src/a.py", Kind: types.File},
			{Path: "src/b", Kind: types.Directory},
			{Path: "src/b/c.py", Kind: types.File},
			{Path: "README.md", Kind: types.File},
		},
		{
			{Path: "src/b/c.py", Kind: types.File},
			{Path: "README.md", Kind: types.File},
			{Path: "src/a.py", Kind: types.File},
			{Path: "src/b", Kind: types.Directory},
			{Path: "src", Kind: types.Directory},
		},
		{
			{Path: "README.md", Kind: types.File},
			{Path: "src/b", Kind: types.Directory},
			{Path: "src/b/c.py", Kind: types.File},
			{Path: "src", Kind: types.Directory},
			{Path: "src/a.py", Kind: types.File},
		},
	}

	first := tree.Build(orders[0]).Render()
	for _, entries := range orders[1:] {
		assert.Equal(t, first, tree.Build(entries).Render())
	}
}

func TestRenderExplicitEmptyDirectory(t *testing.T) {
	entries := []types.TreeEntry{
		{Path: "empty/", Kind: types.Directory},
	}

	rendered := tree.Build(entries).Render()

	assert.Equal(t, "Root\n└── empty/\n", rendered)
}

func TestRenderEmptyTree(t *testing.T) {
	assert.Equal(t, "Root\n", tree.Build(nil).Render())
	assert.Equal(t, "Root\n", tree.Build([]types.TreeEntry{}).Render())
}

func TestBuildMaterializesImpliedAncestors(t *testing.T) {
	entries := []types.TreeEntry{
		{Path: "deep/nested/file.txt", Kind: types.File},
	}

	rendered := tree.Build(entries).Render()

	expected := "Root\n" +
		"└── deep/\n" +
		"    └── nested/\n" +
		"        └── file.txt\n"
	assert.Equal(t, expected, rendered)
}

func TestBuildDirectoryWinsOverFile(t *testing.T) {
	tests := []struct {
		name    string
		entries []types.TreeEntry
	}{
		{
			name: "file entry before deeper path",
			entries: []types.TreeEntry{
				{Path: "a", Kind: types.File},
				{Path: "a/b.txt", Kind: types.File},
			},
		},
		{
			name: "file entry after deeper path",
			entries: []types.TreeEntry{
				{Path: "a/b.txt", Kind: types.File},
				{Path: "a", Kind: types.File},
			},
		},
		{
			name: "explicit directory entry after file entry",
			entries: []types.TreeEntry{
				{Path: "a", Kind: types.File},
				{Path: "a", Kind: types.Directory},
				{Path: "a/b.txt", Kind: types.File},
			},
		},
	}

	expected := "Root\n" +
		"└── a/\n" +
		"    └── b.txt\n"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, expected, tree.Build(tt.entries).Render())
		})
	}
}

func TestMarshalJSONShape(t *testing.T) {
	entries := []types.TreeEntry{
		{Path: "src/a.py", Kind: types.File},
		{Path: "src/b/c.py", Kind: types.File},
	}

	data, err := json.Marshal(tree.Build(entries))
	require.NoError(t, err)

	assert.JSONEq(t, `{"src":{"a.py":null,"b":{"c.py":null}}}`, string(data))
}

func TestMarshalJSONEmptyRoot(t *testing.T) {
	data, err := json.Marshal(tree.Build(nil))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
