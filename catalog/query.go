package catalog

import (
	"regexp"
	"strings"
)

// Compatibility states of an Annotation
const (
	Supported   = "Supported"
	Unsupported = "Unsupported"
)

var cmdstatRegexp = regexp.MustCompile(`cmdstat_([^:]+):`)

// Annotation pairs a command name with its version compatibility
type Annotation struct {
	Name           string `json:"name" yaml:"name"`
	MinVersion     string `json:"minVersion" yaml:"min_version"`
	CompatDetected string `json:"compatDetected" yaml:"compat_detected"`
}

// ParseExecutedCommandNames extracts the command names of every "cmdstat_<name>:" marker
// in an INFO commandstats report, in order of occurrence. Duplicates are kept.
func ParseExecutedCommandNames(stats string) []string {
	matches := cmdstatRegexp.FindAllStringSubmatch(stats, -1)

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}

	return names
}

// NormalizeStatName converts the "parent|child" form used by commandstats
// for subcommands into a catalog identifier
func NormalizeStatName(name string) string {
	return Canonical(strings.Replace(name, "|", " ", 1))
}

// Unique removes duplicated names, keeping the first occurrence
func Unique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	res := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}

		seen[n] = struct{}{}
		res = append(res, n)
	}

	return res
}

// AnnotateWithVersions resolves every name against the catalog. The result has one
// annotation per input name in input order, unknown names are reported as Unsupported.
func (c *Catalog) AnnotateWithVersions(names []string) []Annotation {
	annotations := make([]Annotation, len(names))
	for i, name := range names {
		annotations[i] = c.Annotate(name)
	}

	return annotations
}

// Annotate resolves a single command name
func (c *Catalog) Annotate(name string) Annotation {
	cmd, ok := c.Lookup(name)
	if !ok {
		return Annotation{Name: name, MinVersion: Unsupported, CompatDetected: Unsupported}
	}

	compat := Unsupported
	if cmd.Supported() {
		compat = Supported
	}

	return Annotation{Name: name, MinVersion: cmd.Since, CompatDetected: compat}
}

// FilterByVersion returns the identifiers of the commands introduced at or before threshold,
// according to the catalog's comparator
func (c *Catalog) FilterByVersion(threshold string) []string {
	names := make([]string, 0)
	for _, name := range c.order {
		if c.compare(c.commands[name].Since, threshold) <= 0 {
			names = append(names, name)
		}
	}

	return names
}

// DistinctVersions returns every distinct "since" value in first-seen order
func (c *Catalog) DistinctVersions() []string {
	seen := make(map[string]struct{})
	versions := make([]string, 0)
	for _, name := range c.order {
		since := c.commands[name].Since
		if _, ok := seen[since]; ok {
			continue
		}

		seen[since] = struct{}{}
		versions = append(versions, since)
	}

	return versions
}

// Comparator returns the version policy of the catalog
func (c *Catalog) Comparator() Comparator {
	return c.compare
}

// AnnotateWithVersions annotates names against the default catalog
func AnnotateWithVersions(names []string) []Annotation {
	return Default().AnnotateWithVersions(names)
}

// FilterByVersion filters the default catalog
func FilterByVersion(threshold string) []string {
	return Default().FilterByVersion(threshold)
}

// DistinctVersions lists the versions of the default catalog
func DistinctVersions() []string {
	return Default().DistinctVersions()
}
