package catalog

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// Match returns the commands matching the text typed so far.
// An exact match wins over prefix matches, a container command is
// followed by its subcommands.
func (c *Catalog) Match(text string) []Command {
	segments := strings.SplitN(Canonical(strings.TrimSpace(text)), " ", 3)
	if segments[0] == "" {
		return []Command{}
	}

	if len(segments) > 1 {
		full := segments[0] + " " + segments[1]
		if cmd, ok := c.Lookup(full); ok {
			return []Command{cmd}
		}

		if subs := c.prefixed(full); len(subs) > 0 {
			return subs
		}
	}

	if cmd, ok := c.Lookup(segments[0]); ok {
		return append([]Command{cmd}, c.Subcommands(segments[0])...)
	}

	return c.prefixed(segments[0])
}

func (c *Catalog) prefixed(prefix string) []Command {
	var matched = make([]Command, 0)
	for _, name := range c.order {
		if strings.HasPrefix(name, prefix) {
			matched = append(matched, c.commands[name])
		}
	}

	return matched
}

// Help finds the command a full command line refers to, e.g. "client setname foo"
// resolves to CLIENT SETNAME and "set k v" to SET
func (c *Catalog) Help(line string) (Command, bool) {
	segments := strings.Fields(line)
	if len(segments) == 0 {
		return Command{}, false
	}

	if len(segments) > 1 {
		if cmd, ok := c.Lookup(segments[0] + " " + segments[1]); ok {
			return cmd, true
		}
	}

	return c.Lookup(segments[0])
}

// Search returns the commands whose identifier matches a glob pattern, e.g. "CLIENT *"
func (c *Catalog) Search(pattern string) ([]Command, error) {
	g, err := glob.Compile(Canonical(strings.TrimSpace(pattern)))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern %q", pattern)
	}

	matched := make([]Command, 0)
	for _, name := range c.order {
		if g.Match(name) {
			matched = append(matched, c.commands[name])
		}
	}

	return matched, nil
}
