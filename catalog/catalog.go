package catalog

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyName is returned when a record has no identifier
	ErrEmptyName = errors.New("command name is empty")
	// ErrDuplicateCommand is returned when two records share a canonical identifier
	ErrDuplicateCommand = errors.New("duplicate command")
)

//go:embed commands.yaml
var catalogData []byte

var defaultCatalog *Catalog
var defaultOnce sync.Once

// Catalog is an immutable mapping from canonical command identifiers to their records.
// A Catalog is safe for concurrent use.
type Catalog struct {
	commands map[string]Command
	order    []string
	compare  Comparator
}

// Option customizes a Catalog during construction
type Option func(c *Catalog)

// WithComparator sets the policy used by FilterByVersion
func WithComparator(cmp Comparator) Option {
	return func(c *Catalog) {
		if cmp != nil {
			c.compare = cmp
		}
	}
}

type catalogFile struct {
	Commands []Command `yaml:"commands"`
}

// New builds a catalog from records, keeping their order for iteration
func New(commands []Command, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		commands: make(map[string]Command, len(commands)),
		order:    make([]string, 0, len(commands)),
		compare:  LexicalComparator,
	}

	for _, opt := range opts {
		opt(c)
	}

	for i, cmd := range commands {
		name := Canonical(strings.TrimSpace(cmd.Name))
		if name == "" {
			return nil, errors.Wrapf(ErrEmptyName, "record #%d", i)
		}

		if _, ok := c.commands[name]; ok {
			return nil, errors.Wrap(ErrDuplicateCommand, name)
		}

		cmd.Name = name
		c.commands[name] = cmd
		c.order = append(c.order, name)
	}

	return c, nil
}

// Load decodes a yaml catalog document
func Load(data []byte, opts ...Option) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}

	return New(file.Commands, opts...)
}

// Default returns the catalog shipped with the binary, loading it on first use
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(catalogData)
		if err != nil {
			panic(errors.Wrap(err, "embedded catalog is invalid"))
		}

		defaultCatalog = c
	})

	return defaultCatalog
}

// WithComparator returns a catalog sharing the same records but filtering
// versions with another comparator
func (c *Catalog) WithComparator(cmp Comparator) *Catalog {
	if cmp == nil {
		cmp = LexicalComparator
	}

	return &Catalog{
		commands: c.commands,
		order:    c.order,
		compare:  cmp,
	}
}

// Lookup finds the record of a command, the name is matched case-insensitively
func (c *Catalog) Lookup(name string) (Command, bool) {
	cmd, ok := c.commands[Canonical(name)]
	return cmd, ok
}

// Entries returns all records in catalog order
func (c *Catalog) Entries() []Command {
	entries := make([]Command, len(c.order))
	for i, name := range c.order {
		entries[i] = c.commands[name]
	}

	return entries
}

// Names returns all canonical identifiers in catalog order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)

	return names
}

// Len returns the number of records
func (c *Catalog) Len() int {
	return len(c.order)
}

// Subcommands returns the "PARENT CHILD" records of a container command
func (c *Catalog) Subcommands(parent string) []Command {
	prefix := Canonical(parent) + " "

	subs := make([]Command, 0)
	for _, name := range c.order {
		if strings.HasPrefix(name, prefix) {
			subs = append(subs, c.commands[name])
		}
	}

	return subs
}
