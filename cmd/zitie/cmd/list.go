package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the poems in the catalogue",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("lang", "", "only list poems of this locale")
}

func runList(cmd *cobra.Command, args []string) error {
	lang, _ := cmd.Flags().GetString("lang")

	sheet, err := loadSheet()
	if err != nil {
		return err
	}

	st, err := openStore(cmd.Context(), sheet)
	if err != nil {
		return err
	}
	defer st.Close()

	poems, err := st.List(cmd.Context(), lang)
	if err != nil {
		return err
	}
	if len(poems) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No poems yet. Add some with 'zitie import <file>'.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "LOCALE", "TITLE", "AUTHOR").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, p := range poems {
		t.Row(strconv.FormatInt(p.ID, 10), p.Locale, p.Title, p.Author)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.String())
	return nil
}
