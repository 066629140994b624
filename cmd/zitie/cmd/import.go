package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/zitie/internal/pinyin"
	"github.com/f3rmion/zitie/internal/poem"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import poems into the catalogue",
	Long: `Import poems from YAML or JSON files into the catalogue.

A file holds either a single poem or a list under "poems:". Poems without an
id are numbered after the largest id in the catalogue. A poem with the same
id and locale as a stored one replaces it.

Example:
  zitie import poems.yaml
  zitie import --fill-pinyin --locale zh-Hant tang300.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().Bool("fill-pinyin", false, "derive missing pinyin from the characters")
	importCmd.Flags().String("locale", "", "locale for poems that do not name one (default from sheet.yaml)")
}

func runImport(cmd *cobra.Command, args []string) error {
	fill, _ := cmd.Flags().GetBool("fill-pinyin")
	locale, _ := cmd.Flags().GetString("locale")

	sheet, err := loadSheet()
	if err != nil {
		return err
	}
	if locale == "" {
		locale = sheet.Locale
	}

	st, err := openStore(cmd.Context(), sheet)
	if err != nil {
		return err
	}
	defer st.Close()

	parser := pinyin.NewParser(sheet.PinyinStyle)
	imported := 0
	for _, path := range args {
		poems, err := poem.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", path, err)
			continue
		}

		for _, rec := range poems {
			if rec.Locale == "" {
				rec.Locale = locale
			}
			if rec.ID == 0 {
				if rec.ID, err = st.NextID(cmd.Context()); err != nil {
					return err
				}
			}
			if fill && pinyin.Missing(rec) {
				rec = parser.Fill(rec)
			}
			if err := st.Put(cmd.Context(), rec); err != nil {
				return err
			}
			imported++
			if verbose() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d %s %s\n", rec.ID, rec.Title, rec.AuthorLine())
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d poems\n", imported)
	return nil
}
