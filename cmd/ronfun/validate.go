package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/XuRonTing/ron-fun/pkg/environment"
	"github.com/XuRonTing/ron-fun/pkg/logger"
)

func newValidateCmd(v *viper.Viper) *cobra.Command {
	var analyticsFile, styleFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load both configurations and report problems",
		Long: `Load the analytics configuration and the style pipeline options, built-in
or from the given files, and report every failure. Exits non-zero if either fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := environment.FromViper(v)
			out := cmd.OutOrStdout()
			var errs []error

			if _, err := loadAnalytics(analyticsFile, env); err != nil {
				fmt.Fprintf(out, "analytics: %v\n", err)
				errs = append(errs, err)
			} else {
				fmt.Fprintln(out, "analytics: ok")
			}

			if _, err := loadStyle(styleFile); err != nil {
				fmt.Fprintf(out, "stylepipeline: %v\n", err)
				errs = append(errs, err)
			} else {
				fmt.Fprintln(out, "stylepipeline: ok")
			}

			if len(errs) > 0 {
				logger.Error("configuration invalid", zap.Int("failures", len(errs)))
				return fmt.Errorf("validation failed: %w", errors.Join(errs...))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&analyticsFile, "analytics", "", "Analytics YAML file (default built-in)")
	cmd.Flags().StringVar(&styleFile, "style", "", "Style pipeline YAML file (default built-in)")

	return cmd
}
