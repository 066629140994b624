package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/zitie/internal/config"
	"github.com/f3rmion/zitie/internal/poem"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize zitie configuration",
	Long: `Initialize zitie in your config directory.

This creates:
  - sheet.yaml  (grid columns, default toggles, header, page and fonts)
  - poems.db    (poem catalogue, seeded with 静夜思 as poem 1)

Edit sheet.yaml to change the defaults, then add poems with 'zitie import'.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

// samplePoem seeds a fresh catalogue.
var samplePoem = poem.Record{
	ID:          1,
	Locale:      poem.DefaultLocale,
	Title:       "静夜思",
	TitlePinYin: "jìng yè sī",
	Author:      poem.Author{Name: "李白", Dynasty: "唐", NamePinYin: "lǐ bái"},
	Content:     "床前明月光，疑是地上霜。\n举头望明月，低头思故乡。",
	ContentPinYin: "chuáng qián míng yuè guāng ，.yí shì dì shàng shuāng 。." +
		"jǔ tóu wàng míng yuè ，.dī tóu sī gù xiāng 。",
	Translation: "明亮的月光洒在窗户纸上，好像地上泛起了一层霜。我禁不住抬起头来，看那天窗外空中的一轮明月，不由得低头沉思，想起远方的家乡。",
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	sheetPath := filepath.Join(configDir, config.SheetFile)

	// Check if config already exists
	if _, err := os.Stat(sheetPath); err == nil && !force {
		return fmt.Errorf("config already exists: %s\nUse --force to overwrite", sheetPath)
	}

	if err := config.EnsureDir(configDir); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initializing zitie configuration in %s\n\n", configDir)

	sheet := config.DefaultSheet()
	if err := config.SaveSheet(sheetPath, sheet); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Created %s\n", config.SheetFile)

	st, err := openStore(cmd.Context(), sheet)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Put(cmd.Context(), samplePoem); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  Created %s with %s\n", config.StoreFile, samplePoem.Title)

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration initialized!")
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Next steps:")
	fmt.Fprintln(cmd.OutOrStdout(), "  1. Run 'zitie print --id 1' to print the sample sheet")
	fmt.Fprintln(cmd.OutOrStdout(), "  2. Run 'zitie import poems.yaml --fill-pinyin' to add your own poems")
	fmt.Fprintln(cmd.OutOrStdout(), "  3. Run 'zitie preview --id 1' to toggle pinyin and borders interactively")

	return nil
}
