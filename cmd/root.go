package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/siebrand/dataknead/instance"
)

func Root() *cobra.Command {
	var longDesc strings.Builder
	fmt.Fprintf(&longDesc, "%s version %s\n", instance.AppName(), instance.Version())
	fmt.Fprint(&longDesc, "Convert data between formats, picked by file extension.\n")
	fmt.Fprintf(&longDesc, "Use \"-\" for stdin or stdout, with --from or --to naming the format.\n")

	opts := &convertOptions{}
	root := &cobra.Command{
		Use:           instance.AppName() + " <input> <output>",
		Short:         "convert data between formats",
		Long:          longDesc.String(),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       instance.Version(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args[0], args[1])
		},
	}
	fl := root.Flags()
	fl.StringVar(&opts.From, "from", "", "input format tag, overriding the input extension")
	fl.StringVar(&opts.To, "to", "", "output format tag, overriding the output extension")
	fl.StringVarP(&opts.Query, "query", "q", "", "dot path to extract before writing, e.g. items.0.name")
	fl.IntVar(&opts.Indent, "indent", 0, "output indentation width, for formats that indent")

	root.AddCommand(instance.Commands()...)
	return root
}
