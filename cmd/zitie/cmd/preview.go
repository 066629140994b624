package cmd

import (
	"fmt"

	"github.com/f3rmion/zitie/internal/tui"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:     "preview",
	Aliases: []string{"ui"},
	Short:   "Preview a practice sheet interactively",
	Long: `Open an interactive preview of a practice sheet.

Controls:
  t       Toggle the translation
  p       Toggle pinyin
  b       Toggle cell borders
  w       Print the sheet as PNG to --out
  c       Copy the plain-text sheet to the clipboard
  ↑/↓     Scroll
  q       Quit`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	addPoemFlags(previewCmd)
	previewCmd.Flags().StringP("out", "o", "", "PNG file written by the print key (default zitie-<id>.png)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	sheet, err := loadSheet()
	if err != nil {
		return err
	}

	rec, err := loadRecord(cmd, sheet)
	if err != nil {
		reportMissing(cmd.ErrOrStderr(), err)
		return err
	}
	if out == "" {
		out = fmt.Sprintf("zitie-%d.png", rec.ID)
	}

	return tui.Run(tui.Config{
		Grid:    sheet.Grid(),
		Record:  rec,
		Options: displayOptions(sheet),
		Image:   newImage(cmd.ErrOrStderr(), sheet),
		OutPath: out,
	})
}
