package cmd

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/siebrand/dataknead/instance"
	"github.com/siebrand/dataknead/loader"
)

func init() {
	instance.AddCommands(&cobra.Command{
		Use:   "formats",
		Short: "list the supported formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := table.NewWriter()
			tw.SetStyle(table.StyleLight)
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Format", "Extensions"})
			for _, l := range loader.Enabled() {
				tw.AppendRow(table.Row{l.Name(), formatExtensions(l)})
			}
			tw.Render()
			return nil
		},
	})
}

// formatExtensions lists a loader's extensions, each with its gzip-wrapped
// variant since ForPath resolves those transparently.
func formatExtensions(l loader.Loader) string {
	var exts []string
	for _, e := range l.Extensions() {
		exts = append(exts, e, e+".gz")
	}
	return strings.Join(exts, ", ")
}
