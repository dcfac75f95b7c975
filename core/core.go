package core

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell"
)

type KeyBindings map[string][]tcell.Key

var keyBindings = KeyBindings{
	"search":         {tcell.KeyF2, tcell.KeyCtrlS},
	"commands":       {tcell.KeyF3, tcell.KeyCtrlK},
	"detail":         {tcell.KeyF6, tcell.KeyCtrlY},
	"usage":          {tcell.KeyF7, tcell.KeyCtrlU},
	"versions":       {tcell.KeyF8, tcell.KeyCtrlV},
	"output":         {tcell.KeyF9, tcell.KeyCtrlO},
	"command":        {tcell.KeyF1, tcell.KeyCtrlN},
	"command_focus":  {tcell.KeyF4, tcell.KeyCtrlF},
	"command_result": {tcell.KeyF5, tcell.KeyCtrlR},
	"quit":           {tcell.KeyEsc, tcell.KeyCtrlQ},
	"switch_focus":   {tcell.KeyTab},
}

func NewKeyBinding() KeyBindings {
	return keyBindings
}

func (kb KeyBindings) SearchKey(k tcell.Key) string {
	for name, bind := range kb {
		for _, b := range bind {
			if b == k {
				return name
			}
		}
	}

	return ""
}

func (kb KeyBindings) KeyID(key string) string {
	return key
}

func (kb KeyBindings) Keys(key string) []tcell.Key {
	return kb[key]
}

func (kb KeyBindings) Name(key string) string {
	keyNames := make([]string, 0)
	for _, k := range kb[key] {
		keyNames = append(keyNames, tcell.KeyNames[k])
	}

	return strings.Join(keyNames, ", ")
}

type OutputMessage struct {
	Color   tcell.Color
	Message string
}

// NewLogger creates the logger of the command line interface
func NewLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "redis-compat",
	})

	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}
