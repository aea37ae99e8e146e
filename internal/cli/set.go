package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ErrNotWritable indicates a path whose parent is missing or read-only.
var ErrNotWritable = errors.New("path not writable")

const setLongDescription = `Write VALUE at PATH in FILE.

VALUE is read as YAML, so 42, true, [1, 2] and {a: 1} keep their types.
Use --raw to store it as a plain string. With --parents, missing parent
maps are created, and a missing FILE starts as an empty document.`

func (a *app) setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set FILE PATH VALUE",
		Short: "Write a value at a dotted path",
		Long:  setLongDescription,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool(rawFlagName)
			parents, _ := cmd.Flags().GetBool(parentsFlagName)
			return a.runSet(args[0], args[1], args[2], raw, parents)
		},
	}

	cmd.Flags().Bool(rawFlagName, false, "store VALUE as a string")
	cmd.Flags().BoolP(parentsFlagName, "p", false, "create missing parent maps")

	return cmd
}

func (a *app) runSet(path, name, text string, raw, parents bool) error {
	doc, err := a.load(path, parents)
	if err != nil {
		return err
	}

	var value any = text
	if !raw {
		value = parseValue(text)
	}

	if parents {
		a.createParents(doc, name)
	}
	if err := doc.capsule.SetPath(name, value); err != nil {
		return fmt.Errorf("%w: %s", ErrNotWritable, name)
	}

	a.logger.Info("value written", "path", path, "name", name)
	return a.save(doc)
}

// createParents adds an empty map for every missing prefix of name.
// Nothing is created when name or its parent already resolves, so an
// existing dotted key is overwritten rather than shadowed.
func (a *app) createParents(doc *document, name string) {
	delim := a.engine.Delimiter()
	i := strings.LastIndex(name, delim)
	if i <= 0 || doc.capsule.Get(name, nil) != nil || doc.capsule.Get(name[:i], nil) != nil {
		return
	}
	segments := strings.Split(name, delim)

	for i := 1; i < len(segments); i++ {
		prefix := strings.Join(segments[:i], delim)
		if doc.capsule.Get(prefix, nil) != nil {
			continue
		}
		if err := doc.capsule.SetPath(prefix, map[string]any{}); err != nil {
			a.logger.Debug("parent not created", "name", prefix, "error", err)
			return
		}
	}
}
