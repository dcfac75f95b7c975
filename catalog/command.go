package catalog

import (
	"strings"
)

// Argument types used by the command grammar.
const (
	ArgKey       = "key"
	ArgString    = "string"
	ArgInteger   = "integer"
	ArgDouble    = "double"
	ArgPattern   = "pattern"
	ArgUnixTime  = "unix-time"
	ArgPureToken = "pure-token"
	ArgOneOf     = "oneof"
	ArgBlock     = "block"
)

// Argument is a node of a command's argument grammar
type Argument struct {
	Name      string     `yaml:"name" json:"name"`
	Type      string     `yaml:"type" json:"type"`
	Token     string     `yaml:"token,omitempty" json:"token,omitempty"`
	Optional  bool       `yaml:"optional,omitempty" json:"optional,omitempty"`
	Multiple  bool       `yaml:"multiple,omitempty" json:"multiple,omitempty"`
	Since     string     `yaml:"since,omitempty" json:"since,omitempty"`
	Arguments []Argument `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

// HistoryEntry is a behavior change of a command in a given version
type HistoryEntry struct {
	Version string `yaml:"version" json:"version"`
	Note    string `yaml:"note" json:"note"`
}

// Command is the metadata record of a command or a "PARENT CHILD" subcommand.
//
// Records are shared by every reader of a Catalog and must be treated as read-only.
type Command struct {
	Name            string         `yaml:"name" json:"name"`
	Summary         string         `yaml:"summary" json:"summary"`
	Since           string         `yaml:"since" json:"since"`
	CompatSince     string         `yaml:"compat_since,omitempty" json:"compatSince,omitempty"`
	Group           string         `yaml:"group" json:"group"`
	Complexity      string         `yaml:"complexity,omitempty" json:"complexity,omitempty"`
	Arity           int            `yaml:"arity" json:"arity"`
	ACLCategories   []string       `yaml:"acl_categories,omitempty" json:"aclCategories,omitempty"`
	CommandFlags    []string       `yaml:"command_flags,omitempty" json:"commandFlags,omitempty"`
	Arguments       []Argument     `yaml:"arguments,omitempty" json:"arguments,omitempty"`
	History         []HistoryEntry `yaml:"history,omitempty" json:"history,omitempty"`
	DeprecatedSince string         `yaml:"deprecated_since,omitempty" json:"deprecatedSince,omitempty"`
	ReplacedBy      string         `yaml:"replaced_by,omitempty" json:"replacedBy,omitempty"`
}

// Canonical returns the lookup key of a command identifier
func Canonical(name string) string {
	return strings.ToUpper(name)
}

// Supported reports whether the compatible server implements the command.
// Only the presence of the marker matters, its value is informational.
func (c Command) Supported() bool {
	return c.CompatSince != ""
}

// Deprecated reports whether the command has been deprecated upstream
func (c Command) Deprecated() bool {
	return c.DeprecatedSince != ""
}

// IsSubcommand reports whether the identifier has the "PARENT CHILD" form
func (c Command) IsSubcommand() bool {
	return strings.Contains(c.Name, " ")
}

// Parent returns the container command of a subcommand, or the name itself
func (c Command) Parent() string {
	return strings.SplitN(c.Name, " ", 2)[0]
}

// Syntax renders the argument grammar as a one line usage string,
// e.g. "key value [NX|XX]".
func (c Command) Syntax() string {
	parts := make([]string, 0, len(c.Arguments))
	for _, arg := range c.Arguments {
		parts = append(parts, arg.Render())
	}

	return strings.Join(parts, " ")
}

// Render renders a single argument and its children
func (a Argument) Render() string {
	var body string
	switch a.Type {
	case ArgPureToken:
		body = a.Token
	case ArgOneOf:
		body = a.join("|")
	case ArgBlock:
		body = a.join(" ")
	default:
		body = a.Name
	}

	if a.Multiple {
		body = body + " [" + body + " ...]"
	}

	if a.Token != "" && a.Type != ArgPureToken {
		body = a.Token + " " + body
	}

	if a.Optional {
		body = "[" + body + "]"
	}

	return body
}

func (a Argument) join(sep string) string {
	parts := make([]string, len(a.Arguments))
	for i, child := range a.Arguments {
		parts[i] = child.Render()
	}

	return strings.Join(parts, sep)
}
