package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Remove a poem from the catalogue",
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().Int64("id", 0, "poem id")
	removeCmd.Flags().String("lang", "", "poem locale (default from sheet.yaml)")
	removeCmd.MarkFlagRequired("id")
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt64("id")
	lang, _ := cmd.Flags().GetString("lang")

	sheet, err := loadSheet()
	if err != nil {
		return err
	}
	if lang == "" {
		lang = sheet.Locale
	}

	st, err := openStore(cmd.Context(), sheet)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(cmd.Context(), id, lang); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed poem %d (%s)\n", id, lang)
	return nil
}
