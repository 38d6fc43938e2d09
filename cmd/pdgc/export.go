package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdgc/internal/application/orchestrators"
)

func exportCmd() *cobra.Command {
	var (
		out   string
		clean bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static files",
		Long: `Renders index.html and the fingerprinted assets into a directory
that any static file host can serve.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := setup(true)
			if err != nil {
				return err
			}
			res, err := orchestrators.ExecuteExportSite(cmd.Context(),
				orchestrators.ExportSiteInput{OutDir: out, Clean: clean},
				orchestrators.ExportSiteDeps{Site: s},
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d files (%d bytes) to %s\n", res.Files, res.Bytes, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().BoolVar(&clean, "clean", false, "remove the output directory first")

	return cmd
}
