package report

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lootsmuggler/logictools/enum"
)

func smallRun(t *testing.T, n int) *enum.Result {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	res, err := enum.Run(context.Background(), enum.N(n), enum.MaxOps(1), enum.Logger(log))
	require.NoError(t, err)
	return res
}

func TestWriteText(t *testing.T) {
	res := smallRun(t, 1)
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, res))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, res.Generated, "one line per generated formula")
	assert.Equal(t, "p1", lines[0], "listing starts with the first discovered table's formulas")
	for _, line := range lines {
		assert.NotEmpty(t, line)
	}
}

func TestWriteTextFile(t *testing.T) {
	res := smallRun(t, 2)
	dir := t.TempDir()
	path, err := WriteTextFile(dir, res)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, TextFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, res.Generated, strings.Count(string(data), "\n"))
}

func TestWriteHTML(t *testing.T) {
	res := smallRun(t, 1)
	dir := t.TempDir()
	paths, err := WriteHTML(dir, res)
	require.NoError(t, err)
	require.Len(t, paths, 1, "4 tables fit on one page")

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<h3>Truth table 0</h3>")
	assert.Contains(t, html, "<h3>Truth table 3</h3>")
	assert.Contains(t, html, "<li>p1</li>")
	assert.Contains(t, html, "<li>~p1</li>")
	assert.Contains(t, html, "<th>p1</th>")
	assert.Contains(t, html, "<td>T</td>")
	assert.Contains(t, html, "Minimum formula (1 binary operators)")
}

func TestNumPages(t *testing.T) {
	tests := []struct {
		tables, pages int
	}{
		{0, 0},
		{1, 1},
		{255, 1},
		{256, 1},
		{257, 2},
		{4096, 16},
	}
	for _, test := range tests {
		if got := numPages(test.tables); got != test.pages {
			t.Errorf("invalid page count for %d tables: wanted %d, got %d", test.tables, test.pages, got)
		}
	}
}

func TestEnsureOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureOutputDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	require.NoError(t, EnsureOutputDir(dir), "idempotent on an existing directory")
}
