package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/zitie/internal/poem"
	"github.com/f3rmion/zitie/internal/store"
)

const dengGuanQueLou = `poems:
  - title: 登鹳雀楼
    author:
      name: 王之涣
      dynasty: 唐
    content: |
      白日依山尽，黄河入海流。
      欲穷千里目，更上一层楼。
    translation: 夕阳依傍着西山慢慢地沉没，滔滔黄河朝着东海汹涌奔流。
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// The commands share cobra and viper globals, so the whole workflow runs in
// one test, in order.
func TestWorkflow(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	poemFile := filepath.Join(t.TempDir(), "poems.yaml")
	require.NoError(t, os.WriteFile(poemFile, []byte(dengGuanQueLou), 0644))

	out, _, err := execute(t, "--config", dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized!")
	assert.FileExists(t, filepath.Join(dir, "sheet.yaml"))
	assert.FileExists(t, filepath.Join(dir, "poems.db"))

	_, _, err = execute(t, "--config", dir, "init")
	assert.Error(t, err, "init refuses to overwrite without --force")

	out, _, err = execute(t, "--config", dir, "import", "--fill-pinyin", poemFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 poems")

	out, _, err = execute(t, "--config", dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "静夜思")
	assert.Contains(t, out, "登鹳雀楼")
	assert.Contains(t, out, "唐·王之涣")

	out, _, err = execute(t, "--config", dir, "print", "--id", "2", "--format", "text", "--py")
	require.NoError(t, err)
	assert.Contains(t, out, "鹳")
	assert.Contains(t, out, "dēng", "pinyin was filled on import")
	assert.Contains(t, out, "译文")

	_, stderr, err := execute(t, "--config", dir, "print", "--id", "99", "--format", "text")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, stderr, poem.Placeholder)

	_, _, err = execute(t, "--config", dir, "print", "--id", "1", "--format", "pdf")
	assert.Error(t, err)

	png := filepath.Join(t.TempDir(), "sheet.png")
	out, _, err = execute(t, "--config", dir, "print", "-f", poemFile, "--id", "0", "--format", "png", "--out", png)
	require.NoError(t, err)
	assert.Contains(t, out, "Saved "+png)
	assert.FileExists(t, png)

	out, _, err = execute(t, "--config", dir, "remove", "--id", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed poem 2")

	_, _, err = execute(t, "--config", dir, "remove", "--id", "2")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecordFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poems.yaml")
	require.NoError(t, poem.SaveFile(path, []poem.Record{
		{ID: 7, Title: "春晓", Author: poem.Author{Name: "孟浩然"}, Content: "春眠不觉晓，处处闻啼鸟。"},
		{ID: 8, Title: "相思", Author: poem.Author{Name: "王维"}, Content: "红豆生南国，春来发几枝。"},
	}))

	rec, err := recordFromFile(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "春晓", rec.Title)

	rec, err = recordFromFile(path, 8)
	require.NoError(t, err)
	assert.Equal(t, "相思", rec.Title)

	_, err = recordFromFile(path, 9)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReportMissing(t *testing.T) {
	var buf bytes.Buffer
	reportMissing(&buf, assert.AnError)
	assert.Empty(t, buf.String())

	reportMissing(&buf, store.ErrNotFound)
	assert.Contains(t, buf.String(), poem.Placeholder)
}
