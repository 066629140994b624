package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/zitie/internal/config"
	"github.com/f3rmion/zitie/internal/grid"
	"github.com/f3rmion/zitie/internal/pinyin"
	"github.com/f3rmion/zitie/internal/poem"
	"github.com/f3rmion/zitie/internal/render"
	"github.com/f3rmion/zitie/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loadSheet loads sheet.yaml from the config directory, or the defaults.
func loadSheet() (*config.Sheet, error) {
	sheet, err := config.LoadSheetDir(getConfigDir())
	if err != nil {
		return nil, err
	}
	return sheet, nil
}

// displayOptions resolves the sheet toggles. Flags and ZITIE_* variables
// override the values from sheet.yaml.
func displayOptions(sheet *config.Sheet) poem.Options {
	viper.SetDefault("translation", sheet.Options.Translation)
	viper.SetDefault("py", sheet.Options.PY)
	viper.SetDefault("border", sheet.Options.Border)

	return poem.Options{
		Translation: viper.GetBool("translation"),
		PY:          viper.GetBool("py"),
		Border:      viper.GetBool("border"),
	}
}

func openStore(ctx context.Context, sheet *config.Sheet) (*store.Store, error) {
	path := sheet.StorePath(getConfigDir())
	if verbose() {
		fmt.Fprintf(os.Stderr, "Using poem store %s\n", path)
	}
	return store.Open(ctx, path)
}

// addPoemFlags registers the flags that select a poem.
func addPoemFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("id", 0, "poem id in the catalogue")
	cmd.Flags().String("lang", "", "poem locale (default from sheet.yaml)")
	cmd.Flags().StringP("file", "f", "", "read the poem from a YAML/JSON file instead of the catalogue")
	cmd.Flags().Bool("fill-pinyin", false, "derive missing pinyin from the characters")
}

// loadRecord returns the poem selected by --file or --id/--lang.
func loadRecord(cmd *cobra.Command, sheet *config.Sheet) (poem.Record, error) {
	id, _ := cmd.Flags().GetInt64("id")
	lang, _ := cmd.Flags().GetString("lang")
	file, _ := cmd.Flags().GetString("file")
	fill, _ := cmd.Flags().GetBool("fill-pinyin")

	if lang == "" {
		lang = sheet.Locale
	}

	var rec poem.Record
	var err error
	if file != "" {
		rec, err = recordFromFile(file, id)
	} else {
		rec, err = recordFromStore(cmd.Context(), sheet, id, lang)
	}
	if err != nil {
		return poem.Record{}, err
	}

	if fill && pinyin.Missing(rec) {
		rec = pinyin.NewParser(sheet.PinyinStyle).Fill(rec)
	}
	return rec, nil
}

// recordFromFile returns the poem with the given id from path, or the first
// poem when id is zero.
func recordFromFile(path string, id int64) (poem.Record, error) {
	poems, err := poem.LoadFile(path)
	if err != nil {
		return poem.Record{}, err
	}
	if id == 0 {
		return poems[0], nil
	}
	for _, p := range poems {
		if p.ID == id {
			return p, nil
		}
	}
	return poem.Record{}, fmt.Errorf("%w: id %d in %s", store.ErrNotFound, id, path)
}

func recordFromStore(ctx context.Context, sheet *config.Sheet, id int64, lang string) (poem.Record, error) {
	if id == 0 {
		return poem.Record{}, fmt.Errorf("%w: no poem selected (use --id or --file)", store.ErrNotFound)
	}

	st, err := openStore(ctx, sheet)
	if err != nil {
		return poem.Record{}, err
	}
	defer st.Close()

	return st.Get(ctx, id, lang)
}

// reportMissing prints the selection placeholder for errors that mean there
// is no poem to lay out.
func reportMissing(w io.Writer, err error) {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, grid.ErrNoContent) {
		fmt.Fprintln(w, poem.Placeholder)
	}
}

// newImage returns the PNG renderer for the sheet's page and fonts.
func newImage(w io.Writer, sheet *config.Sheet) render.Image {
	preferred := append([]string{sheet.Page.Font}, sheet.Page.FontPaths...)
	glyphs, path := render.FindFont(preferred...)
	if path == "" {
		fmt.Fprintln(w, "Warning: no CJK font found, characters will not be drawn (set page.font in sheet.yaml)")
	} else if verbose() {
		fmt.Fprintf(w, "Using font %s\n", path)
	}

	latin := glyphs
	if sheet.Page.PinyinFont != "" {
		src, _, err := render.LoadFont(sheet.Page.PinyinFont)
		if err != nil {
			fmt.Fprintf(w, "Warning: could not load pinyin font %s: %v\n", sheet.Page.PinyinFont, err)
		} else {
			latin = src
		}
	}

	return render.Image{
		Width:  sheet.Page.Width,
		Height: sheet.Page.Height,
		Margin: sheet.Page.Margin,
		Glyphs: glyphs,
		Latin:  latin,
	}
}
