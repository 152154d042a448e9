package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rolfe.dev/internal/config"
	"rolfe.dev/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		applyFlags(cmd, cfg)

		res, err := export.Run(export.Options{
			OutputDir:    exportOut,
			StaticDir:    cfg.StaticDir,
			StaticPrefix: cfg.StaticPrefix,
			SiteTitle:    cfg.SiteTitle,
			Portfolio:    cfg.Portfolio,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", res.Files, exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "dist", "output directory")
	exportCmd.Flags().String("static", "", "static asset directory (overrides STATIC_DIR)")
	rootCmd.AddCommand(exportCmd)
}
