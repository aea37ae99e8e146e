package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrPathNotFound indicates a path with no value and no --default.
var ErrPathNotFound = errors.New("path not found")

const getLongDescription = `Print the value at each PATH in FILE.

With one PATH only the value is printed. With several, each line is
PATH=VALUE. Maps and lists are printed as JSON.`

// missing marks paths that resolved to nothing.
type missing struct{}

func (a *app) getCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get FILE PATH...",
		Short: "Print values at dotted paths",
		Long:  getLongDescription,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGet(cmd, args[0], args[1:])
		},
	}

	cmd.Flags().String(defaultFlagName, "", "value printed for paths that do not resolve")
	a.bindFlagToConfig(cmd.Flags().Lookup(defaultFlagName), defaultFlagName)

	return cmd
}

func (a *app) runGet(cmd *cobra.Command, path string, paths []string) error {
	doc, err := a.load(path, false)
	if err != nil {
		return err
	}

	values := doc.capsule.GetMany(paths, missing{})
	out := cmd.OutOrStdout()

	for _, p := range paths {
		var text string
		if _, absent := values[p].(missing); absent {
			if !a.v.IsSet(defaultFlagName) {
				return fmt.Errorf("%w: %s", ErrPathNotFound, p)
			}
			text = a.v.GetString(defaultFlagName)
		} else if text, err = render(values[p]); err != nil {
			return fmt.Errorf("rendering %s: %w", p, err)
		}

		if len(paths) == 1 {
			fmt.Fprintln(out, text)
		} else {
			fmt.Fprintf(out, "%s=%s\n", p, text)
		}
	}
	return nil
}
