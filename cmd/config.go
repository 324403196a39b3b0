package cmd

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/spf13/cobra"

	"github.com/siebrand/dataknead/config"
	"github.com/siebrand/dataknead/instance"
)

func Config() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "inspect and change settings",
	}

	cfg.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := config.Snapshot()
			l := list.NewWriter()
			l.SetOutputMirror(os.Stdout)
			l.SetStyle(list.StyleConnectedLight)
			for _, k := range slices.Sorted(maps.Keys(snap)) {
				l.AppendItem(fmt.Sprintf("%s: %v", k, snap[k]))
			}
			l.Render()
			return nil
		},
	})
	cfg.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "set and persist a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Set(args[0], args[1]); err != nil {
				return err
			}
			return config.Save()
		},
	})
	cfg.AddCommand(&cobra.Command{
		Use:   "unset <key>",
		Short: "restore a setting to its default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Unset(args[0]); err != nil {
				return err
			}
			return config.Save()
		},
	})

	for _, fn := range cfgCmdBuilders {
		cfg.AddCommand(fn())
	}

	return cfg
}

var cfgCmdBuilders []func() *cobra.Command

// AddConfigCommandBuilder lets wrappers hang their own subcommands off of
// "config".
func AddConfigCommandBuilder(fns ...func() *cobra.Command) {
	instance.CheckCanCustomize()
	cfgCmdBuilders = append(cfgCmdBuilders, fns...)
}

func init() {
	instance.AddCommandBuilders(Config)
}
