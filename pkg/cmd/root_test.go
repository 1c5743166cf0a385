package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotenv(t *testing.T) {
	assert.NoError(t, loadDotenv(""))
	assert.NoError(t, loadDotenv(filepath.Join(t.TempDir(), "missing.env")))

	dotenvFile := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, os.WriteFile(dotenvFile, []byte("RBTREE_TEST_DOTENV=loaded\n"), 0o600))
	defer os.Unsetenv("RBTREE_TEST_DOTENV")

	require.NoError(t, loadDotenv(dotenvFile))
	assert.Equal(t, "loaded", os.Getenv("RBTREE_TEST_DOTENV"))
}

func TestVersionCmd(t *testing.T) {
	var buf bytes.Buffer
	VersionCmd.SetOut(&buf)
	defer VersionCmd.SetOut(nil)

	VersionCmd.Run(VersionCmd, nil)
	assert.Regexp(t, `^v\d+\.\d+\.\d+`, buf.String())
}
