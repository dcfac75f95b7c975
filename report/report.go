// Package report renders catalog query results for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mylxsw/redis-compat/catalog"
	"github.com/mylxsw/redis-compat/config"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	supportedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	unsupportedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true)
)

// Renderer writes results in the configured output format
type Renderer struct {
	w      io.Writer
	format string
}

// New creates a renderer, format is one of the config.Output* values
func New(w io.Writer, format string) *Renderer {
	return &Renderer{w: w, format: strings.ToLower(format)}
}

// Annotations writes a compatibility table
func (r *Renderer) Annotations(annotations []catalog.Annotation) error {
	if r.format != config.OutputTable {
		return r.encode(annotations)
	}

	rows := make([][]string, len(annotations))
	for i, a := range annotations {
		rows[i] = []string{a.Name, a.MinVersion, a.CompatDetected}
	}

	supported := 0
	for _, a := range annotations {
		if a.CompatDetected == catalog.Supported {
			supported++
		}
	}

	r.table([]string{"COMMAND", "SINCE", "COMPAT"}, rows, 2)
	_, err := fmt.Fprintln(r.w, hintStyle.Render(fmt.Sprintf("%d/%d commands supported", supported, len(annotations))))
	return err
}

// Names writes a list of identifiers or versions, one per line
func (r *Renderer) Names(names []string) error {
	if r.format != config.OutputTable {
		return r.encode(names)
	}

	for _, n := range names {
		if _, err := fmt.Fprintln(r.w, n); err != nil {
			return err
		}
	}

	return nil
}

// Commands writes a summary table of catalog records
func (r *Renderer) Commands(commands []catalog.Command) error {
	if r.format != config.OutputTable {
		return r.encode(commands)
	}

	rows := make([][]string, len(commands))
	for i, c := range commands {
		compat := catalog.Unsupported
		if c.Supported() {
			compat = catalog.Supported
		}
		rows[i] = []string{c.Name, c.Since, compat, c.Summary}
	}

	r.table([]string{"COMMAND", "SINCE", "COMPAT", "SUMMARY"}, rows, 2)
	return nil
}

// Command writes the full record of one command
func (r *Renderer) Command(c catalog.Command) error {
	if r.format != config.OutputTable {
		return r.encode(c)
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(c.Name + " " + c.Syntax()))
	sb.WriteString("\n")
	sb.WriteString(c.Summary)
	sb.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", label)))
		sb.WriteString(" ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	field("Since:", c.Since)
	if c.Supported() {
		field("Compat:", supportedStyle.Render(catalog.Supported+" since "+c.CompatSince))
	} else {
		field("Compat:", unsupportedStyle.Render(catalog.Unsupported))
	}
	field("Group:", c.Group)
	field("Complexity:", c.Complexity)
	field("Arity:", fmt.Sprintf("%d", c.Arity))
	field("ACL:", strings.Join(c.ACLCategories, " "))
	field("Flags:", strings.Join(c.CommandFlags, " "))
	if c.Deprecated() {
		field("Deprecated:", fmt.Sprintf("since %s, use %s", c.DeprecatedSince, c.ReplacedBy))
	}

	if len(c.History) > 0 {
		sb.WriteString(labelStyle.Render("History:"))
		sb.WriteString("\n")
		for _, h := range c.History {
			sb.WriteString(fmt.Sprintf("  • %-8s %s\n", h.Version, h.Note))
		}
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}

func (r *Renderer) encode(v interface{}) error {
	switch r.format {
	case config.OutputJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encode json")
	case config.OutputYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	}

	return errors.Errorf("unknown output format %q", r.format)
}

// table writes left aligned columns, the column at colorIndex is colored by compatibility
func (r *Renderer) table(header []string, rows [][]string, colorIndex int) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string, style func(i int, s string) string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			padded := cell
			if i < len(cells)-1 {
				padded = fmt.Sprintf("%-*s", widths[i], cell)
			}
			parts[i] = style(i, padded)
		}
		fmt.Fprintln(r.w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	line(header, func(_ int, s string) string { return headerStyle.Render(s) })
	for _, row := range rows {
		line(row, func(i int, s string) string {
			if i != colorIndex {
				return s
			}
			if strings.TrimSpace(s) == catalog.Supported {
				return supportedStyle.Render(s)
			}
			return unsupportedStyle.Render(s)
		})
	}
}
