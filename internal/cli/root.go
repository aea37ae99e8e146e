// Package cli provides the pluck command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zoobzio/pluck"
)

const rootLongDescription = `pluck reads and writes values in structured documents by dotted path.

Path segments may themselves contain the delimiter: in {"a.b": {"c": 1}}
the path a.b.c resolves to 1. Supported formats are json, yaml, toml,
msgpack and bson, chosen from the file extension unless --format is set.

Flags can also be set through PLUCK_* environment variables or a
.pluck.yaml file in the working directory.`

// app holds the state shared by subcommands of one root command.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
	engine *pluck.Engine
}

// NewRootCmd builds the pluck command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:          "pluck",
		Short:        "Read and write values in structured documents",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	a.configureRootFlags(cmd)
	cmd.AddCommand(a.getCmd(), a.setCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(delimiterFlagName, pluck.DefaultDelimiter, "path segment delimiter")
	a.bindFlagToConfig(flags.Lookup(delimiterFlagName), delimiterFlagName)

	flags.StringP(formatFlagName, "f", defaultFormat, "document format (auto, json, yaml, toml, msgpack, bson)")
	a.bindFlagToConfig(flags.Lookup(formatFlagName), formatFlagName)

	flags.String(configFlagName, "", "config file (default ./.pluck.yaml)")
	a.bindFlagToConfig(flags.Lookup(configFlagName), configFlagName)

	flags.String(logFileFlagName, "", "write logs to a rotated file instead of stderr")
	a.bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolP(verboseFlagName, "v", false, "log at debug level")
	a.bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func (a *app) bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(a.v.BindPFlag(key, flag))
}
