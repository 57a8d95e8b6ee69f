package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/XuRonTing/ron-fun/pkg/environment"
	"github.com/XuRonTing/ron-fun/pkg/logger"
)

const (
	keyLogLevel  = "log_level"
	keyLogFormat = "log_format"
	keyMetrics   = "metrics"
)

// newRootCmd builds the command tree. Flags are bound through v so every
// setting can also come from RONFUN_* environment variables.
func newRootCmd(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   "ronfun",
		Short: "ronfun - analytics and style pipeline configuration for ron-fun",
		Long: `ronfun validates and exports the configuration consumed by the ron-fun
frontend build: the analytics SDK settings and the postcss-px-to-viewport options.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{
				Level:       v.GetString(keyLogLevel),
				Encoding:    v.GetString(keyLogFormat),
				Development: !environment.FromViper(v).IsProduction(),
			})
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			_ = logger.Sync()
			if !v.GetBool(keyMetrics) {
				return nil
			}
			return dumpMetrics(cmd.ErrOrStderr(), prometheus.DefaultGatherer)
		},
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-format", "console", "Log encoding (json, console)")
	flags.String("env", "", "Deployment environment; defaults to $RONFUN_ENV, then $NODE_ENV, then development")
	flags.Bool("metrics", false, "Dump Prometheus metrics to stderr after the command")

	v.SetEnvPrefix("RONFUN")
	environment.Bind(v)
	_ = v.BindPFlag(environment.Key, flags.Lookup("env"))
	_ = v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(keyLogFormat, flags.Lookup("log-format"))
	_ = v.BindPFlag(keyMetrics, flags.Lookup("metrics"))
	_ = v.BindEnv(keyLogLevel)
	_ = v.BindEnv(keyLogFormat)
	_ = v.BindEnv(keyMetrics)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ronfun v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})
	root.AddCommand(newAnalyticsCmd(v))
	root.AddCommand(newStyleCmd())
	root.AddCommand(newValidateCmd(v))

	return root
}

func writeJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// writeOutput writes data to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // G306: build config read by the JS toolchain
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("wrote configuration", zap.String("path", path))
	return nil
}

func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
