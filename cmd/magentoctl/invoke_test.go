package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyParams(t *testing.T) {
	params := map[string]interface{}{"id": "from-file"}

	err := applyParams(params, []string{
		"id=abc",
		"quantity=2",
		`address={"city":"Basel"}`,
		"cartEntryIds=[\"1\",\"2\"]",
		"code=a=b",
	})
	require.NoError(t, err)

	assert.Equal(t, "abc", params["id"])
	assert.Equal(t, "2", params["quantity"])
	assert.Equal(t, map[string]interface{}{"city": "Basel"}, params["address"])
	assert.Equal(t, []interface{}{"1", "2"}, params["cartEntryIds"])
	assert.Equal(t, "a=b", params["code"])
}

func TestApplyParamsRejectsMissingKey(t *testing.T) {
	assert.Error(t, applyParams(map[string]interface{}{}, []string{"novalue"}))
	assert.Error(t, applyParams(map[string]interface{}{}, []string{"=value"}))
}

func TestLoadParams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "args.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"id":"abc","quantity":2}`), 0o600))

	params, err := loadParams(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", params["id"])
	assert.Equal(t, float64(2), params["quantity"])

	require.NoError(t, os.WriteFile(path, []byte(`[1]`), 0o600))
	_, err = loadParams(path)
	assert.Error(t, err)

	params, err = loadParams("")
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 19)
	assert.Contains(t, out.String(), "getCart")
	assert.Contains(t, out.String(), "/carts/{id}")
}
