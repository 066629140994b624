package poem

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorLine(t *testing.T) {
	tests := []struct {
		name   string
		author Author
		want   string
	}{
		{"dynasty and name", Author{Name: "李白", Dynasty: "唐"}, "唐·李白"},
		{"no dynasty", Author{Name: "佚名"}, "佚名"},
		{"blank dynasty", Author{Name: "王维", Dynasty: "  "}, "王维"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Record{Author: tt.author}.AuthorLine())
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.Translation)
	assert.False(t, opts.PY)
	assert.True(t, opts.Border)
}

func TestLocaleOrDefault(t *testing.T) {
	assert.Equal(t, DefaultLocale, Record{}.LocaleOrDefault())
	assert.Equal(t, "zh-Hant", Record{Locale: "zh-Hant"}.LocaleOrDefault())
}

func TestParseYAMLCollection(t *testing.T) {
	data := []byte(`
poems:
  - id: 1
    title: 静夜思
    title_pinyin: jìng yè sī
    author:
      name: 李白
      dynasty: 唐
      name_pinyin: lǐ bái
    content: |
      床前明月光，疑是地上霜。
      举头望明月，低头思故乡。
    translation: 明亮的月光洒在窗户纸上。
  - id: 2
    title: 春晓
    author:
      name: 孟浩然
    content: 春眠不觉晓，处处闻啼鸟。
`)

	poems, err := Parse(data, ".yaml")
	require.NoError(t, err)
	require.Len(t, poems, 2)

	assert.Equal(t, int64(1), poems[0].ID)
	assert.Equal(t, "静夜思", poems[0].Title)
	assert.Equal(t, "唐·李白", poems[0].AuthorLine())
	assert.Equal(t, "lǐ bái", poems[0].Author.NamePinYin)
	assert.True(t, poems[0].HasTranslation())
	assert.False(t, poems[1].HasTranslation())
}

func TestParseJSONSingleRecord(t *testing.T) {
	data := []byte(`{"id": 7, "title": "登鹳雀楼", "author": {"name": "王之涣", "dynasty": "唐"},
		"content": "白日依山尽，黄河入海流。", "contentPinYin": "bái rì yī shān jìn.huáng hé rù hǎi liú"}`)

	poems, err := Parse(data, ".JSON")
	require.NoError(t, err)
	require.Len(t, poems, 1)
	assert.Equal(t, int64(7), poems[0].ID)
	assert.Equal(t, "bái rì yī shān jìn.huáng hé rù hǎi liú", poems[0].ContentPinYin)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse([]byte("foo: bar\n"), ".yaml")
	require.Error(t, err)
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poems.yaml")
	in := []Record{{ID: 3, Title: "江雪", Author: Author{Name: "柳宗元", Dynasty: "唐"}, Content: "千山鸟飞绝，万径人踪灭。"}}

	require.NoError(t, SaveFile(path, in))

	out, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
