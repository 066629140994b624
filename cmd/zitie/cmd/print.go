package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/f3rmion/zitie/internal/clipboard"
	"github.com/f3rmion/zitie/internal/render"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print a practice sheet",
	Long: `Lay out a poem and print the practice sheet.

Formats:
  terminal  Boxed grid for the terminal (default)
  text      Plain text grid
  png       PNG page, written to --out (default zitie-<id>.png)

Example:
  zitie print --id 1
  zitie print --id 1 --py --format png --out jingyesi.png
  zitie print -f poems.yaml --fill-pinyin --format text --copy`,
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
	addPoemFlags(printCmd)
	printCmd.Flags().String("format", "terminal", "output format: terminal, text or png")
	printCmd.Flags().StringP("out", "o", "", "write to this file instead of stdout")
	printCmd.Flags().Bool("copy", false, "also copy the plain-text sheet to the clipboard")
}

func runPrint(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	copyText, _ := cmd.Flags().GetBool("copy")

	sheet, err := loadSheet()
	if err != nil {
		return err
	}

	rec, err := loadRecord(cmd, sheet)
	if err != nil {
		reportMissing(cmd.ErrOrStderr(), err)
		return err
	}

	opts := displayOptions(sheet)
	layout, err := sheet.Grid().Compose(rec, opts)
	if err != nil {
		reportMissing(cmd.ErrOrStderr(), err)
		return fmt.Errorf("laying out %q: %w", rec.Title, err)
	}
	if opts.PY && layout.Advisory != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Note: %s\n", layout.Advisory)
	}

	var buf bytes.Buffer
	switch format {
	case "terminal":
		buf.WriteString(render.Terminal(layout, render.DefaultTheme()))
		buf.WriteString("\n")
	case "text":
		buf.WriteString(render.Text(layout))
	case "png":
		if out == "" {
			out = fmt.Sprintf("zitie-%d.png", rec.ID)
		}
		if err := newImage(cmd.ErrOrStderr(), sheet).WritePNG(&buf, layout); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want terminal, text or png)", format)
	}

	if copyText {
		if err := clipboard.Write(render.Text(layout)); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not copy to clipboard: %v\n", err)
		} else if verbose() {
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied sheet to clipboard")
		}
	}

	if out == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", out)
	return nil
}
