package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/zitie/internal/grid"
	"github.com/f3rmion/zitie/internal/poem"
	"github.com/f3rmion/zitie/internal/render"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Grid: grid.Default(),
		Record: poem.Record{
			ID:            1,
			Title:         "静夜思",
			TitlePinYin:   "jìng yè sī",
			Author:        poem.Author{Name: "李白", Dynasty: "唐", NamePinYin: "lǐ bái"},
			Content:       "床前明月光，疑是地上霜。\n举头望明月，低头思故乡。",
			ContentPinYin: "chuáng qián míng yuè guāng.yí shì dì shàng shuāng.jǔ tóu wàng míng yuè.dī tóu sī gù xiāng",
			Translation:   "明亮的月光洒在窗户纸上，好像地上泛起了一层霜。",
		},
		Options: poem.DefaultOptions(),
		Image:   render.Image{Width: 240, Height: 100},
		OutPath: filepath.Join(t.TempDir(), "sheet.png"),
	}
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func ready(t *testing.T, cfg Config) Model {
	t.Helper()
	m, _ := update(t, New(cfg), tea.WindowSizeMsg{Width: 120, Height: 60})
	return m
}

func TestViewBeforeWindowSize(t *testing.T) {
	assert.Equal(t, "Loading...", New(testConfig(t)).View())
}

func TestTogglePinyinKeepsCells(t *testing.T) {
	m := ready(t, testConfig(t))
	before := m.Layout()

	m, _ = update(t, m, keyPress('p'))
	assert.True(t, m.Options().PY)

	after := m.Layout()
	require.Len(t, after.Lines, len(before.Lines))
	for i := range before.Lines {
		assert.Equal(t, before.Lines[i].Cells, after.Lines[i].Cells)
		if after.Lines[i].Phonetic != nil {
			assert.True(t, after.Lines[i].Phonetic.Visible)
			assert.False(t, before.Lines[i].Phonetic.Visible)
		}
	}
	assert.Contains(t, m.View(), "jìng")
}

func TestToggleTranslation(t *testing.T) {
	m := ready(t, testConfig(t))
	require.NotEmpty(t, m.Layout().TranslationLines())

	m, _ = update(t, m, keyPress('t'))
	assert.False(t, m.Options().Translation)
	assert.Empty(t, m.Layout().TranslationLines())

	m, _ = update(t, m, keyPress('t'))
	assert.Len(t, m.Layout().TranslationLines(), 3)
}

func TestToggleBorder(t *testing.T) {
	m := ready(t, testConfig(t))
	require.True(t, m.Layout().Border)

	m, _ = update(t, m, keyPress('b'))
	assert.False(t, m.Options().Border)
	assert.False(t, m.Layout().Border)
}

func TestAdvisoryShownWithPinyin(t *testing.T) {
	m := ready(t, testConfig(t))
	assert.NotContains(t, m.View(), grid.AdvisoryRegulatedVerse)

	m, _ = update(t, m, keyPress('p'))
	assert.Contains(t, m.View(), grid.AdvisoryRegulatedVerse)
}

func TestCopy(t *testing.T) {
	m := ready(t, testConfig(t))
	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m, cmd := update(t, m, keyPress('c'))
	assert.NotNil(t, cmd)
	assert.True(t, m.copied)
	assert.Equal(t, render.Text(m.Layout()), copied)

	m, _ = update(t, m, clearCopiedMsg{})
	assert.False(t, m.copied)
}

func TestCopyFailure(t *testing.T) {
	m := ready(t, testConfig(t))
	m.copy = func(string) error { return errors.New("no clipboard") }

	m, cmd := update(t, m, keyPress('c'))
	assert.Nil(t, cmd)
	assert.False(t, m.copied)
	assert.Contains(t, m.status, "no clipboard")
}

func TestPrint(t *testing.T) {
	cfg := testConfig(t)
	m := ready(t, cfg)

	m, cmd := update(t, m, keyPress('w'))
	require.NotNil(t, cmd)

	msg := cmd()
	printed, ok := msg.(printedMsg)
	require.True(t, ok)
	require.NoError(t, printed.err)

	info, err := os.Stat(cfg.OutPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	m, _ = update(t, m, printed)
	assert.Equal(t, "Saved "+cfg.OutPath, m.status)
}

func TestPrintFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutPath = filepath.Join(t.TempDir(), "missing", "sheet.png")
	m := ready(t, cfg)

	_, cmd := update(t, m, keyPress('w'))
	require.NotNil(t, cmd)
	printed := cmd().(printedMsg)
	assert.Error(t, printed.err)
}

func TestPrintFailureRemovesPartialFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Image = render.Image{Width: 10} // too narrow for 12 columns
	m := ready(t, cfg)

	m, cmd := update(t, m, keyPress('w'))
	require.NotNil(t, cmd)
	printed := cmd().(printedMsg)
	require.Error(t, printed.err)
	assert.NoFileExists(t, cfg.OutPath)

	m, _ = update(t, m, printed)
	assert.Contains(t, m.status, "Print failed")
}

func TestPlaceholderForEmptyPoem(t *testing.T) {
	cfg := testConfig(t)
	cfg.Record = poem.Record{}
	m := ready(t, cfg)

	assert.ErrorIs(t, m.err, grid.ErrNoContent)
	assert.Contains(t, m.View(), poem.Placeholder)

	_, cmd := update(t, m, keyPress('w'))
	assert.Nil(t, cmd, "nothing to print")
}

func TestQuit(t *testing.T) {
	m := ready(t, testConfig(t))
	_, cmd := update(t, m, keyPress('q'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
