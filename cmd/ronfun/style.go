package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/XuRonTing/ron-fun/pkg/logger"
	"github.com/XuRonTing/ron-fun/pkg/stylepipeline"
)

func newStyleCmd() *cobra.Command {
	var file, out string

	cmd := &cobra.Command{
		Use:   "style",
		Short: "Inspect the postcss-px-to-viewport options",
	}
	cmd.PersistentFlags().StringVarP(&file, "file", "f", "", "Load from a YAML file instead of the built-in options")

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the plugin options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadStyle(file)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), cfg.Options())
		},
	})

	postcss := &cobra.Command{
		Use:   "postcss",
		Short: "Write a postcss.config.js holding the plugin options",
		Long: `Write a postcss.config.js module for the frontend build.

The include option is emitted as a RegExp literal, the only form the plugin
applies.

Example:
  ronfun style postcss --out web/postcss.config.js`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadStyle(file)
			if err != nil {
				return err
			}
			module, err := cfg.PostCSS()
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out, module)
		},
	}
	postcss.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.AddCommand(postcss)

	var initOut string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the plugin options as a YAML file",
		Long: `Write the plugin options as a YAML document that --file accepts, as a
starting point for overriding the built-in options.

Example:
  ronfun style init --out stylepipeline.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadStyle(file)
			if err != nil {
				return err
			}
			if err := cfg.Save(initOut); err != nil {
				return err
			}
			logger.Info("wrote configuration", zap.String("path", initOut))
			return nil
		},
	}
	initCmd.Flags().StringVarP(&initOut, "out", "o", "", "Output file")
	_ = initCmd.MarkFlagRequired("out")
	cmd.AddCommand(initCmd)

	return cmd
}

func loadStyle(file string) (stylepipeline.Config, error) {
	if file == "" {
		return stylepipeline.Load()
	}
	return stylepipeline.LoadFile(file)
}
