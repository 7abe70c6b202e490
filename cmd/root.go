package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is injected by Execute and shared by all commands.
var logger *zap.Logger

// RootCmd is the base command. Called without a subcommand it runs a dump
// with the resolved configuration.
var RootCmd = &cobra.Command{
	Use:   "codedump [paths...]",
	Short: "codedump combines source files into a single text artifact",
	Long: `codedump concatenates the contents of selected source files into one
output file, prefixing each with a relative path header, for feeding into
text-consuming tools such as AI assistants.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runDump,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it with the
// provided logger.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}
