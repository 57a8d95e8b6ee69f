package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/XuRonTing/ron-fun/pkg/analytics"
	"github.com/XuRonTing/ron-fun/pkg/environment"
)

func newAnalyticsCmd(v *viper.Viper) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Inspect the analytics SDK configuration",
	}
	cmd.PersistentFlags().StringVarP(&file, "file", "f", "", "Load from a YAML file instead of the built-in configuration")

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the analytics configuration as the SDK initializer receives it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAnalytics(file, environment.FromViper(v))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), cfg)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "event NAME",
		Short: "Print the wire name of a symbolic event such as BUTTON_CLICK",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAnalytics(file, environment.FromViper(v))
			if err != nil {
				return err
			}
			name := analytics.Event(strings.ToUpper(args[0]))
			wire, ok := cfg.Events.Wire(name)
			if !ok {
				return fmt.Errorf("unknown event %q (known: %s)", args[0], joinEvents(cfg.Events.Names()))
			}
			fmt.Fprintln(cmd.OutOrStdout(), wire)
			return nil
		},
	})

	return cmd
}

func loadAnalytics(file string, env environment.Environment) (analytics.Config, error) {
	if file == "" {
		return analytics.Load(env)
	}
	return analytics.LoadFile(file, env)
}

func joinEvents(events []analytics.Event) string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}
