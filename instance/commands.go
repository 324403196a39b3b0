package instance

import (
	"github.com/spf13/cobra"

	"github.com/siebrand/dataknead/internal"
)

var commandBuilders []func() *cobra.Command

// AddCommands registers top level commands to be attached to the Root command
// during app startup. Only valid before Main().
func AddCommands(cmds ...*cobra.Command) {
	internal.CheckCanCustomize()
	for _, c := range cmds {
		commandBuilders = append(commandBuilders, func() *cobra.Command { return c })
	}
}

// AddCommandBuilders is like AddCommands for commands that cannot be
// constructed until startup, e.g. because they depend on loaded config.
func AddCommandBuilders(fns ...func() *cobra.Command) {
	internal.CheckCanCustomize()
	commandBuilders = append(commandBuilders, fns...)
}

// Commands builds the registered commands. Called from Root() after lockdown.
func Commands() []*cobra.Command {
	internal.CheckLockedDown()
	ret := make([]*cobra.Command, 0, len(commandBuilders))
	for _, fn := range commandBuilders {
		ret = append(ret, fn())
	}
	return ret
}
