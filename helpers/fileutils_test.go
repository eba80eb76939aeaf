package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "octocat", "hello-world.txt")

	require.NoError(t, SaveFile(path, []byte("Repository: octocat/hello-world")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Repository: octocat/hello-world", string(data))
}

func TestSaveFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	require.NoError(t, SaveFile(path, []byte("first")))
	require.NoError(t, SaveFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func BenchmarkSaveFile(b *testing.B) {
	path := filepath.Join(b.TempDir(), "src", "file.txt")
	content := []byte("Repository: octocat/hello-world\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SaveFile(path, content)
	}
}
