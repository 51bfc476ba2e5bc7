package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/lintreport/internal/browse"
	"github.com/dkoosis/lintreport/internal/config"
	"github.com/dkoosis/lintreport/pkg/reportjson"
	"github.com/dkoosis/lintreport/pkg/termreport"
)

func newBrowseCmd() *cobra.Command {
	var themeName string

	cmd := &cobra.Command{
		Use:   "browse report.json",
		Short: "Explore a report interactively in the terminal",
		Long: `browse opens a report document in a two-pane terminal view: modules on
the left, their diagnostics on the right. The document must come from a
file because the terminal itself is needed for interaction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return errors.New("browse needs an interactive terminal")
			}
			doc, err := reportjson.ReadFile(args[0])
			if err != nil {
				return err
			}
			theme := termreport.ThemeByName(themeName)
			if os.Getenv("NO_COLOR") != "" {
				theme = termreport.MonoTheme()
			}
			return browse.Run(doc, theme)
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme: default, soft or mono")
	return cmd
}
