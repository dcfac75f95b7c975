package tui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gdamore/tcell"
	"github.com/mylxsw/go-toolkit/collection"
	"github.com/mylxsw/redis-compat/api"
	"github.com/mylxsw/redis-compat/catalog"
	"github.com/mylxsw/redis-compat/config"
	"github.com/mylxsw/redis-compat/core"
	"github.com/rivo/tview"
)

type primitiveKey struct {
	Primitive tview.Primitive
	Key       string
}

// CompatTUI is the interactive command catalog explorer
type CompatTUI struct {
	metaPanel           *tview.TextView
	detailPanel         *tview.TextView
	outputPanel         *tview.List
	commandListPanel    *tview.List
	summaryPanel        *tview.TextView
	searchPanel         *tview.InputField
	usagePanel          *tview.Table
	versionsPanel       *tview.Flex
	versionListPanel    *tview.List
	versionCmdsPanel    *tview.List
	helpPanel           *tview.Flex
	helpMessagePanel    *tview.TextView
	helpServerInfoPanel *tview.TextView

	commandPanel       *tview.Flex
	commandInputField  *tview.InputField
	commandResultPanel *tview.TextView

	centerPanel tview.Primitive

	leftPanel  *tview.Flex
	rightPanel *tview.Flex

	layout *tview.Flex
	pages  *tview.Pages
	app    *tview.Application

	redisClient      api.RedisClient
	catalog          *catalog.Catalog
	outputChan       chan core.OutputMessage
	uiViewUpdateChan chan func()

	maxCharacterLimit int

	version   string
	gitCommit string

	focusPrimitives   []primitiveKey
	currentFocusIndex int

	config      config.Config
	keyBindings core.KeyBindings

	searchHistories  []string
	commandHistories []string
}

// NewCompatTUI create a CompatTUI object
func NewCompatTUI(redisClient api.RedisClient, cat *catalog.Catalog, maxResultLines int, version string, gitCommit string, outputChan chan core.OutputMessage, conf config.Config) *CompatTUI {
	ui := &CompatTUI{
		redisClient:       redisClient,
		catalog:           cat,
		maxCharacterLimit: maxResultLines * 20,
		version:           version,
		gitCommit:         gitCommit,
		focusPrimitives:   make([]primitiveKey, 0),
		currentFocusIndex: 0,
		outputChan:        outputChan,
		config:            conf,
		keyBindings:       core.NewKeyBinding(),
		uiViewUpdateChan:  make(chan func()),
		searchHistories:   make([]string, 0),
		commandHistories:  make([]string, 0),
	}

	ui.metaPanel = ui.createMetaPanel()
	ui.detailPanel = ui.createDetailPanel()
	ui.outputPanel = ui.createOutputPanel()
	ui.summaryPanel = ui.createSummaryPanel()
	ui.commandListPanel = ui.createCommandListPanel()
	ui.searchPanel = ui.createSearchPanel()
	ui.helpPanel = ui.createHelpPanel()
	ui.usagePanel = ui.createUsagePanel()
	ui.versionsPanel = ui.createVersionsPanel()
	ui.commandPanel = ui.createCommandPanel()

	ui.leftPanel = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ui.searchPanel, 3, 0, false).
		AddItem(ui.commandListPanel, 0, 1, false).
		AddItem(ui.summaryPanel, 3, 1, false)

	ui.rightPanel = tview.NewFlex().SetDirection(tview.FlexRow)
	ui.showCenter(ui.detailPanel)

	ui.app = tview.NewApplication()
	ui.layout = tview.NewFlex().
		AddItem(ui.leftPanel, 0, 3, false).
		AddItem(ui.rightPanel, 0, 8, false)

	ui.focusPrimitives = append(ui.focusPrimitives, primitiveKey{Primitive: ui.searchPanel, Key: ui.keyBindings.KeyID("search")})
	ui.focusPrimitives = append(ui.focusPrimitives, primitiveKey{Primitive: ui.commandListPanel, Key: ui.keyBindings.KeyID("commands")})

	ui.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {

		if ui.config.Debug {
			keyName := event.Name()
			if event.Key() == tcell.KeyRune {
				keyName = string(event.Rune())
			}
			ui.outputChan <- core.OutputMessage{Message: fmt.Sprintf("Key %s pressed", keyName)}
		}

		name := ui.keyBindings.SearchKey(event.Key())
		switch name {
		case "switch_focus":
			nextFocusIndex := ui.currentFocusIndex + 1
			if nextFocusIndex > len(ui.focusPrimitives)-1 {
				nextFocusIndex = 0
			}

			ui.app.SetFocus(ui.focusPrimitives[nextFocusIndex].Primitive)
			ui.currentFocusIndex = nextFocusIndex

			return nil
		case "quit":
			ui.app.Stop()
		case "command":
			if ui.centerPanel == ui.commandPanel {
				ui.showCenter(ui.detailPanel)
				ui.app.SetFocus(ui.searchPanel)
				ui.currentFocusIndex = 0
			} else {
				ui.showCenter(ui.commandPanel)
				ui.focus(ui.commandInputField)
			}
		case "usage":
			ui.showCenter(ui.usagePanel)
			ui.focus(ui.usagePanel)
			go ui.refreshUsage()
		case "versions":
			ui.showCenter(ui.versionsPanel)
			ui.focus(ui.versionListPanel)
		case "detail":
			ui.showCenter(ui.detailPanel)
			ui.focus(ui.detailPanel)
		default:
			for i, pv := range ui.focusPrimitives {
				if pv.Key == name {
					ui.app.SetFocus(pv.Primitive)
					ui.currentFocusIndex = i
					break
				}
			}
		}

		return event
	})

	return ui
}

// Start create the ui and start the program
func (ui *CompatTUI) Start() error {
	go func() {
		for f := range ui.uiViewUpdateChan {
			(func() {
				defer func() {
					if err := recover(); err != nil {
					}
				}()
				ui.app.QueueUpdateDraw(f)
			})()
		}
	}()
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case out := <-ui.outputChan:
				ui.uiViewUpdateChan <- func() {
					// clear outputPanel to avoid to many message caused ui hangup
					if ui.outputPanel.GetItemCount() > 20 {
						ui.outputPanel.Clear()
					}

					ui.outputPanel.AddItem(fmt.Sprintf("%d | [%s] %s", ui.outputPanel.GetItemCount(), time.Now().Format(time.RFC3339), out.Message), "", 0, nil)
					ui.outputPanel.SetCurrentItem(-1)
				}
			case <-ticker.C:
				// refresh outside of this loop, the refresh itself writes to outputChan
				go ui.refreshServerInfo()
				if ui.centerPanel == ui.usagePanel {
					go ui.refreshUsage()
				}
			}
		}
	}()

	go func() {
		ui.refreshServerInfo()
		ui.refreshUsage()
	}()

	ui.fillCommandList(ui.catalog.Entries())
	ui.focus(ui.commandListPanel)

	ui.pages = tview.NewPages()
	ui.pages.AddPage("base", ui.layout, true, true)

	return ui.app.SetRoot(ui.pages, true).Run()
}

func (ui *CompatTUI) refreshServerInfo() {
	info, err := api.RedisServerInfo(ui.config, ui.redisClient)
	if err != nil {
		ui.outputChan <- core.OutputMessage{Color: tcell.ColorRed, Message: fmt.Sprintf("errors: %s", err)}
		return
	}

	ui.uiViewUpdateChan <- func() {
		ui.helpServerInfoPanel.SetText(info)
	}
}

func (ui *CompatTUI) refreshUsage() {
	report, err := api.UsageReport(ui.redisClient, ui.catalog)
	if err != nil {
		ui.outputChan <- core.OutputMessage{Color: tcell.ColorRed, Message: fmt.Sprintf("errors: %s", err)}
		return
	}

	ui.uiViewUpdateChan <- func() {
		ui.fillUsageTable(report)
	}
	ui.outputChan <- core.OutputMessage{Color: tcell.ColorGreen, Message: fmt.Sprintf("commandstats loaded, %d commands executed", len(report))}
}

// showCenter replaces the main area of the right panel
func (ui *CompatTUI) showCenter(center tview.Primitive) {
	ui.rightPanel.RemoveItem(ui.metaPanel).
		RemoveItem(ui.outputPanel).
		RemoveItem(ui.detailPanel).
		RemoveItem(ui.usagePanel).
		RemoveItem(ui.versionsPanel).
		RemoveItem(ui.commandPanel).
		RemoveItem(ui.helpPanel)

	ui.rightPanel.AddItem(ui.helpPanel, 5, 1, false).
		AddItem(ui.metaPanel, 4, 1, false).
		AddItem(center, 0, 7, false).
		AddItem(ui.outputPanel, 8, 1, false)

	ui.centerPanel = center
}

// focus moves the focus to p if it is a focusable primitive
func (ui *CompatTUI) focus(p tview.Primitive) {
	for i, pv := range ui.focusPrimitives {
		if pv.Primitive == p {
			ui.app.SetFocus(p)
			ui.currentFocusIndex = i
			return
		}
	}
}

func (ui *CompatTUI) createSummaryPanel() *tview.TextView {
	panel := tview.NewTextView()
	panel.SetBorder(true).SetTitle(" Info ")
	return panel
}

func (ui *CompatTUI) commandItemFormat(index int, cmd catalog.Command) string {
	mark := "✔"
	if !cmd.Supported() {
		mark = "✘"
	}

	return fmt.Sprintf("%3d | %s %s", index+1, mark, cmd.Name)
}

func (ui *CompatTUI) fillCommandList(cmds []catalog.Command) {
	ui.commandListPanel.Clear()

	supported := 0
	for i, c := range cmds {
		if c.Supported() {
			supported++
		}
		ui.commandListPanel.AddItem(ui.commandItemFormat(i, c), "", 0, ui.commandSelectedHandler(c))
	}

	ui.summaryPanel.SetText(fmt.Sprintf(" Total matched: %d, supported: %d", len(cmds), supported))
}

func (ui *CompatTUI) commandSelectedHandler(cmd catalog.Command) func() {
	return func() {
		ui.showCommand(cmd)
	}
}

// showCommand displays a catalog record in the meta and detail panels
func (ui *CompatTUI) showCommand(cmd catalog.Command) {
	compat := catalog.Unsupported
	if cmd.Supported() {
		compat = fmt.Sprintf("%s since %s", catalog.Supported, cmd.CompatSince)
	}

	ui.metaPanel.SetText(fmt.Sprintf("Command: %s\nSince: %s, Compat: %s, Group: %s", cmd.Name, cmd.Since, compat, cmd.Group)).
		SetTextAlign(tview.AlignCenter)

	var sb strings.Builder
	syntax := cmd.Syntax()
	if syntax == "" {
		syntax = "-"
	}

	sb.WriteString(fmt.Sprintf(" %s %s\n\n", cmd.Name, syntax))
	sb.WriteString(fmt.Sprintf(" %s\n\n", cmd.Summary))
	if cmd.Complexity != "" {
		sb.WriteString(fmt.Sprintf(" Complexity:  %s\n", cmd.Complexity))
	}
	sb.WriteString(fmt.Sprintf(" Arity:       %d\n", cmd.Arity))
	if len(cmd.ACLCategories) > 0 {
		sb.WriteString(fmt.Sprintf(" ACL:         %s\n", strings.Join(cmd.ACLCategories, " ")))
	}
	if len(cmd.CommandFlags) > 0 {
		sb.WriteString(fmt.Sprintf(" Flags:       %s\n", strings.Join(cmd.CommandFlags, " ")))
	}
	if cmd.Deprecated() {
		sb.WriteString(fmt.Sprintf(" Deprecated:  since %s, use %s\n", cmd.DeprecatedSince, cmd.ReplacedBy))
	}

	if subs := ui.catalog.Subcommands(cmd.Name); len(subs) > 0 {
		sb.WriteString("\n Subcommands:\n")
		for _, s := range subs {
			sb.WriteString(fmt.Sprintf("   %-24s %s\n", s.Name, s.Summary))
		}
	}

	if len(cmd.History) > 0 {
		sb.WriteString("\n History:\n")
		for _, h := range cmd.History {
			sb.WriteString(fmt.Sprintf("   %-8s %s\n", h.Version, h.Note))
		}
	}

	ui.detailPanel.SetText(sb.String()).ScrollToBeginning()
	if ui.centerPanel != ui.detailPanel && ui.centerPanel != ui.versionsPanel {
		ui.showCenter(ui.detailPanel)
	}
}

func (ui *CompatTUI) fillUsageTable(report []catalog.Annotation) {
	ui.usagePanel.Clear()

	for col, title := range []string{"#", "Command", "Since", "Compat"} {
		ui.usagePanel.SetCell(0, col, tview.NewTableCell(title).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false))
	}

	supported := 0
	for i, a := range report {
		color := tcell.ColorRed
		if a.CompatDetected == catalog.Supported {
			color = tcell.ColorGreen
			supported++
		}

		ui.usagePanel.SetCell(i+1, 0, tview.NewTableCell(fmt.Sprintf("%3d", i+1)))
		ui.usagePanel.SetCell(i+1, 1, tview.NewTableCell(a.Name).SetExpansion(1))
		ui.usagePanel.SetCell(i+1, 2, tview.NewTableCell(a.MinVersion))
		ui.usagePanel.SetCell(i+1, 3, tview.NewTableCell(a.CompatDetected).SetTextColor(color))
	}

	ui.usagePanel.SetTitle(fmt.Sprintf(" Usage (%s) %d/%d supported ", ui.keyBindings.Name("usage"), supported, len(report)))
}

func (ui *CompatTUI) createUsagePanel() *tview.Table {
	table := tview.NewTable().SetFixed(1, 0).SetSelectable(true, false)
	table.SetBorder(true).SetTitle(fmt.Sprintf(" Usage (%s) ", ui.keyBindings.Name("usage")))

	table.SetSelectedFunc(func(row, column int) {
		name := table.GetCell(row, 1).Text
		if cmd, ok := ui.catalog.Lookup(name); ok {
			ui.showCommand(cmd)
			return
		}

		ui.outputChan <- core.OutputMessage{Color: tcell.ColorRed, Message: fmt.Sprintf("%s is not in the catalog", name)}
	})

	ui.focusPrimitives = append(ui.focusPrimitives, primitiveKey{Primitive: table, Key: ui.keyBindings.KeyID("usage")})

	return table
}

func (ui *CompatTUI) createVersionsPanel() *tview.Flex {
	flex := tview.NewFlex()

	versionList := tview.NewList().ShowSecondaryText(false)
	versionList.SetBorder(true).SetTitle(fmt.Sprintf(" Versions (%s) ", ui.keyBindings.Name("versions")))

	commandList := tview.NewList().ShowSecondaryText(false)
	commandList.SetBorder(true).SetTitle(" Introduced at or before ")

	for _, v := range catalog.SortVersions(ui.catalog.DistinctVersions(), ui.catalog.Comparator()) {
		versionList.AddItem(" "+v, "", 0, (func(v string) func() {
			return func() {
				commandList.Clear()

				names := ui.catalog.FilterByVersion(v)
				for i, name := range names {
					commandList.AddItem(fmt.Sprintf(" %3d | %s", i+1, name), "", 0, (func(name string) func() {
						return func() {
							if cmd, ok := ui.catalog.Lookup(name); ok {
								ui.showCommand(cmd)
							}
						}
					})(name))
				}

				commandList.SetTitle(fmt.Sprintf(" Introduced at or before %s: %d ", v, len(names)))
				ui.app.SetFocus(commandList)
			}
		})(v))
	}

	ui.versionListPanel = versionList
	ui.versionCmdsPanel = commandList

	ui.focusPrimitives = append(ui.focusPrimitives, primitiveKey{Primitive: versionList, Key: ui.keyBindings.KeyID("versions")})
	ui.focusPrimitives = append(ui.focusPrimitives, primitiveKey{Primitive: commandList, Key: ui.keyBindings.KeyID("versions")})

	flex.AddItem(versionList, 0, 1, false).
		AddItem(commandList, 0, 3, false)

	return flex
}

// tagPattern matches the bracket groups tview would take for color tags
var tagPattern = regexp.MustCompile(`(\[[a-zA-Z0-9_,;: \-\."#]*)\]`)

func escape(text string) string {
	return tagPattern.ReplaceAllString(text, "$1[]")
}

func (ui *CompatTUI) createCommandPanel() *tview.Flex {
	flex := tview.NewFlex().SetDirection(tview.FlexRow)

	resultPanel := tview.NewTextView()
	resultPanel.SetBorder(true).SetTitle(fmt.Sprintf(" Results (%s) ", ui.keyBindings.Name("command_result")))

	formPanel := tview.NewFlex().SetDirection(tview.FlexRow)
	formPanel.SetBorder(true).SetTitle(fmt.Sprintf(" Commands (%s) ", ui.keyBindings.Name("command_focus")))
	commandTipView := tview.NewTextView().SetDynamicColors(true).SetRegions(true)

	commandInputField := tview.NewInputField().SetLabel("Command ")

	var currentIndex = -1
	commandInputField.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			if len(ui.commandHistories) == 0 {
				break
			}

			currentIndex = currentIndex - 1
			if currentIndex < 0 {
				currentIndex = len(ui.commandHistories) - 1
			}

			commandInputField.SetText(ui.commandHistories[currentIndex])
		case tcell.KeyDown:
			if len(ui.commandHistories) == 0 {
				break
			}

			currentIndex = currentIndex + 1
			if currentIndex > len(ui.commandHistories)-1 {
				currentIndex = 0
			}

			commandInputField.SetText(ui.commandHistories[currentIndex])
		}

		return event
	})

	commandInputField.SetAutocompleteFunc(func(currentText string) (entries []string) {
		currentText = strings.TrimSpace(currentText)
		if currentText == "" || len(strings.Fields(currentText)) > 2 {
			return
		}

		for _, c := range ui.catalog.Match(currentText) {
			entries = append(entries, c.Name)
		}

		return entries
	})

	locked := make(chan interface{}, 1)
	locked <- struct{}{}
	commandInputField.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}

		select {
		case <-locked:

		default:
			pageID := "alert"
			ui.pages.AddPage(
				pageID,
				tview.NewModal().
					SetText("Other command is processing, please wait...").
					AddButtons([]string{"OK"}).
					SetDoneFunc(func(buttonIndex int, buttonLabel string) {
						ui.pages.HidePage(pageID).RemovePage(pageID)
						ui.app.SetFocus(commandInputField)
					}),
				false,
				true,
			)

			return
		}

		cmdText := commandInputField.GetText()
		if help, ok := ui.catalog.Help(cmdText); ok && !help.Supported() {
			ui.outputChan <- core.OutputMessage{Color: tcell.ColorOrange, Message: fmt.Sprintf("%s is not supported by the compatible server", help.Name)}
		}
		ui.outputChan <- core.OutputMessage{Color: tcell.ColorOrange, Message: fmt.Sprintf("Command %s is processing...", cmdText)}

		go func(cmdText string) {
			defer func() {
				locked <- struct{}{}
			}()
			res, err := api.RedisExecute(ui.redisClient, cmdText)
			if err != nil {
				ui.outputChan <- core.OutputMessage{Color: tcell.ColorRed, Message: fmt.Sprintf("errors: %s", err)}
				return
			}

			output := ui.formatResult(res)

			ui.outputChan <- core.OutputMessage{Color: tcell.ColorGreen, Message: fmt.Sprintf("Command %s succeed", cmdText)}
			ui.uiViewUpdateChan <- func() {
				resultPanel.SetText(output)
			}
		}(cmdText)

		commandInputField.SetText("")
		currentIndex = 0
		if cmdText != "" {
			if len(ui.commandHistories) > 0 {
				lastHis := ui.commandHistories[len(ui.commandHistories)-1]
				if lastHis != cmdText {
					ui.commandHistories = append(ui.commandHistories, cmdText)
				}
			} else {
				ui.commandHistories = append(ui.commandHistories, cmdText)
			}
		}
	}).SetChangedFunc(func(text string) {
		if text == "" {
			commandTipView.Clear()
			return
		}

		if help, ok := ui.catalog.Help(text); ok && len(strings.Fields(text)) > len(strings.Fields(help.Name)) {
			commandTipView.SetTextColor(tcell.ColorOrange).SetText(ui.tipFormat(help))
			return
		}

		matchedCommands := ui.catalog.Match(text)
		if len(matchedCommands) == 0 {
			commandTipView.Clear()
		} else if len(matchedCommands) == 1 {
			commandTipView.SetTextColor(tcell.ColorOrange).SetText(ui.tipFormat(matchedCommands[0]))
		} else {
			commandTipView.SetTextColor(tcell.ColorBlue).
				SetText(collection.MustNew(matchedCommands).Reduce(func(carry string, item catalog.Command) string {
					if carry == "" {
						return item.Name
					}

					return carry + ", " + item.Name
				}, "").(string))
		}
	})

	ui.commandInputField = commandInputField
	ui.commandResultPanel = resultPanel

	formPanel.AddItem(commandInputField, 1, 1, false).
		AddItem(commandTipView, 4, 4, false)

	ui.focusPrimitives = append(ui.focusPrimitives, primitiveKey{Primitive: ui.commandInputField, Key: ui.keyBindings.KeyID("command_focus")})
	ui.focusPrimitives = append(ui.focusPrimitives, primitiveKey{Primitive: ui.commandResultPanel, Key: ui.keyBindings.KeyID("command_result")})

	flex.AddItem(formPanel, 7, 0, false).
		AddItem(resultPanel, 0, 1, false)

	return flex
}

func (ui *CompatTUI) tipFormat(cmd catalog.Command) string {
	compat := "[green]supported"
	if !cmd.Supported() {
		compat = "[red]unsupported"
	}

	return fmt.Sprintf(
		"\n%s %s\n    [green]%s (since %s, %s[green]).",
		cmd.Name,
		escape(cmd.Syntax()),
		escape(cmd.Summary),
		cmd.Since,
		compat,
	)
}

// formatResult renders a redis reply with line numbers
func (ui *CompatTUI) formatResult(res interface{}) string {
	var output string

	switch res.(type) {
	case string:
		output = res.(string)
	case []interface{}:
		var resStrs = make([]string, len(res.([]interface{})))
		for i, v := range res.([]interface{}) {
			resStrs[i] = fmt.Sprintf("%v", v)
		}

		output = strings.Join(resStrs, "\n")
	default:
		output = fmt.Sprintf("%v", res)
	}

	// If the output content is too long, the interface will be suspended for a long time
	if len(output) > ui.maxCharacterLimit {
		output = output[:ui.maxCharacterLimit] + fmt.Sprintf("\n\n ~ %d+ charactors omitted ~", len(output)-ui.maxCharacterLimit)
	}

	outputSlices := strings.Split(output, "\n")
	for i, v := range outputSlices {
		outputSlices[i] = fmt.Sprintf("%5d | %s", i+1, v)
	}

	return strings.Join(outputSlices, "\n")
}

// filterCommands returns the catalog entries for a search text. Glob patterns are
// matched against identifiers, anything else as a prefix.
func (ui *CompatTUI) filterCommands(text string) ([]catalog.Command, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ui.catalog.Entries(), nil
	}

	if strings.ContainsAny(text, "*?[{") {
		return ui.catalog.Search(text)
	}

	return ui.catalog.Match(text), nil
}

// createSearchPanel create search panel
func (ui *CompatTUI) createSearchPanel() *tview.InputField {
	searchArea := tview.NewInputField().SetLabel(" Command ")
	var currentIndex = -1
	searchArea.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp:
			if len(ui.searchHistories) == 0 {
				break
			}

			currentIndex = currentIndex - 1
			if currentIndex < 0 {
				currentIndex = len(ui.searchHistories) - 1
			}

			searchArea.SetText(ui.searchHistories[currentIndex])
		case tcell.KeyDown:
			if len(ui.searchHistories) == 0 {
				break
			}

			currentIndex = currentIndex + 1
			if currentIndex > len(ui.searchHistories)-1 {
				currentIndex = 0
			}

			searchArea.SetText(ui.searchHistories[currentIndex])
		}

		return event
	})
	searchArea.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		var text = searchArea.GetText()

		searchArea.SetText("")

		currentIndex = 0
		if text != "" {
			if len(ui.searchHistories) > 0 {
				lastHis := ui.searchHistories[len(ui.searchHistories)-1]
				if lastHis != text {
					ui.searchHistories = append(ui.searchHistories, text)
				}
			} else {
				ui.searchHistories = append(ui.searchHistories, text)
			}
		}

		cmds, err := ui.filterCommands(text)
		if err != nil {
			ui.outputChan <- core.OutputMessage{Color: tcell.ColorRed, Message: fmt.Sprintf("errors: %s", err)}
			return
		}

		ui.fillCommandList(cmds)
		if len(cmds) == 1 {
			ui.showCommand(cmds[0])
		}
	})
	searchArea.SetAutocompleteFunc(func(currentText string) (entries []string) {
		currentText = strings.TrimSpace(currentText)
		if len(currentText) == 0 || strings.ContainsAny(currentText, "*?[{") {
			return
		}

		for _, c := range ui.catalog.Match(currentText) {
			if len(entries) >= 10 {
				break
			}

			entries = append(entries, c.Name)
		}

		return
	})
	searchArea.SetBorder(true).SetTitle(fmt.Sprintf(" Search (%s) ", ui.keyBindings.Name("search")))
	return searchArea
}

// createCommandListPanel create the catalog list panel
func (ui *CompatTUI) createCommandListPanel() *tview.List {
	commandList := tview.NewList().ShowSecondaryText(false)
	commandList.SetBorder(true).SetTitle(fmt.Sprintf(" Catalog (%s) ", ui.keyBindings.Name("commands")))
	return commandList
}

// createMetaPanel create a panel for meta info
func (ui *CompatTUI) createMetaPanel() *tview.TextView {
	metaInfoArea := tview.NewTextView()
	metaInfoArea.SetBorder(true).SetTitle(" Meta ")

	return metaInfoArea
}

// createDetailPanel create the panel showing a catalog record
func (ui *CompatTUI) createDetailPanel() *tview.TextView {
	detailArea := tview.NewTextView()
	detailArea.SetBorder(true).SetTitle(fmt.Sprintf(" Detail (%s) ", ui.keyBindings.Name("detail")))

	ui.focusPrimitives = append(ui.focusPrimitives, primitiveKey{Primitive: detailArea, Key: ui.keyBindings.KeyID("detail")})

	return detailArea
}

// createOutputPanel create a panel for outputFunc
func (ui *CompatTUI) createOutputPanel() *tview.List {
	outputArea := tview.NewList().ShowSecondaryText(false)
	outputArea.SetBorder(true).SetTitle(fmt.Sprintf(" Output (%s) ", ui.keyBindings.Name("output")))

	ui.focusPrimitives = append(ui.focusPrimitives, primitiveKey{Primitive: outputArea, Key: ui.keyBindings.KeyID("output")})

	return outputArea
}

// createHelpPanel create a panel for help message display
func (ui *CompatTUI) createHelpPanel() *tview.Flex {
	helpPanel := tview.NewFlex().SetDirection(tview.FlexRow)
	helpPanel.SetBorder(true).SetTitle(fmt.Sprintf(" Version: %s (%s) ", ui.version, ui.gitCommit))

	ui.helpServerInfoPanel = tview.NewTextView().SetDynamicColors(true).SetRegions(true)
	helpPanel.AddItem(ui.helpServerInfoPanel, 2, 1, false)

	ui.helpMessagePanel = tview.NewTextView()
	ui.helpMessagePanel.SetTextColor(tcell.ColorOrange).SetText(fmt.Sprintf(
		" ❈ %s - command console, %s - usage, %s - versions, %s - switch focus, %s - quit",
		ui.keyBindings.Name("command"),
		ui.keyBindings.Name("usage"),
		ui.keyBindings.Name("versions"),
		ui.keyBindings.Name("switch_focus"),
		ui.keyBindings.Name("quit"),
	))

	helpPanel.AddItem(ui.helpMessagePanel, 1, 1, false)

	return helpPanel
}
