package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/natter/internal/keys"
	"github.com/kmacinski/natter/internal/log"
	"github.com/kmacinski/natter/internal/window"
)

// errUsage makes a handler print its command's usage line
var errUsage = errors.New("usage")

// Command is one slash command
type Command struct {
	Name        string
	Usage       string
	Description string
	Handler     func(a *App, in Input) (tea.Cmd, error)
}

// Input is a parsed line from the command input
type Input struct {
	IsCommand bool
	Name      string   // "/msg"
	Args      []string // whitespace separated arguments
	Rest      string   // everything after the first argument
	Raw       string
}

// ParseInput splits a line into command name and arguments. Lines that do
// not start with '/' are plain text.
func ParseInput(line string) Input {
	line = strings.TrimSpace(line)
	in := Input{Raw: line}
	if !strings.HasPrefix(line, "/") {
		return in
	}

	in.IsCommand = true
	fields := strings.Fields(line)
	in.Name = fields[0]
	in.Args = fields[1:]

	if len(in.Args) > 0 {
		after := strings.TrimSpace(strings.TrimPrefix(line, in.Name))
		in.Rest = strings.TrimSpace(strings.TrimPrefix(after, in.Args[0]))
	}
	return in
}

// commands is ordered as shown by /help
func commands() []Command {
	return []Command{
		{Name: "/about", Usage: "/about", Description: "Show version and license", Handler: cmdAbout},
		{Name: "/help", Usage: "/help", Description: "Show this help", Handler: cmdHelp},
		{Name: "/wins", Usage: "/wins", Description: "List open windows", Handler: cmdWins},
		{Name: "/accounts", Usage: "/accounts", Description: "List configured accounts", Handler: cmdAccounts},
		{Name: "/roster", Usage: "/roster", Description: "List contacts and their presence", Handler: cmdRoster},
		{Name: "/msg", Usage: "/msg <jid> [text]", Description: "Open a chat, optionally sending text", Handler: cmdMsg},
		{Name: "/win", Usage: "/win <n>", Description: "Go to window n", Handler: cmdWin},
		{Name: "/close", Usage: "/close", Description: "Close the current window", Handler: cmdClose},
		{Name: "/clear", Usage: "/clear", Description: "Clear the console", Handler: cmdClear},
		{Name: "/vercheck", Usage: "/vercheck [on|off]", Description: "Check for a new release, or toggle the startup check", Handler: cmdVercheck},
		{Name: "/splash", Usage: "/splash on|off", Description: "Toggle the startup splash logo", Handler: cmdSplash},
		{Name: "/quit", Usage: "/quit", Description: "Exit", Handler: cmdQuit},
	}
}

func (a *App) lookup(name string) (Command, bool) {
	for _, c := range a.commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// submit handles one line from the input
func (a *App) submit(line string) tea.Cmd {
	in := ParseInput(line)
	if in.Raw == "" {
		return nil
	}

	if !in.IsCommand {
		if c, ok := a.windows.CurrentWindow().(*window.Chat); ok {
			c.Outgoing(a.now(), in.Raw)
			return nil
		}
		a.console.Show("Unknown command: " + in.Raw)
		return nil
	}

	cmd, ok := a.lookup(in.Name)
	if !ok {
		a.console.Show("Unknown command: " + in.Name)
		return nil
	}

	log.Debug("command", "name", cmd.Name, "args", in.Args)
	out, err := cmd.Handler(a, in)
	switch {
	case errors.Is(err, errUsage):
		a.console.Show("Usage: " + cmd.Usage)
	case err != nil:
		a.console.Show(err.Error())
	}
	return out
}

func cmdAbout(a *App, _ Input) (tea.Cmd, error) {
	a.console.About()
	return nil, nil
}

func cmdHelp(a *App, _ Input) (tea.Cmd, error) {
	bold, muted := a.styles.Bold, a.styles.Muted

	a.console.Show("")
	a.console.Show(bold.Render("Commands:"))
	width := 0
	for _, c := range a.commands {
		width = max(width, len(c.Usage))
	}
	for _, c := range a.commands {
		a.console.Show(fmt.Sprintf("  %-*s  %s", width, c.Usage, muted.Render(c.Description)))
	}

	a.console.Show("")
	a.console.Show(bold.Render("Keys:"))
	for _, b := range keys.HelpBindings() {
		h := b.Help()
		a.console.Show(fmt.Sprintf("  %-*s  %s", width, h.Key, muted.Render(h.Desc)))
	}
	a.console.Show("")
	return nil, nil
}

func cmdAccounts(a *App, _ Input) (tea.Cmd, error) {
	names := a.accounts.Names()
	if len(names) == 0 {
		a.console.Show("No accounts configured.")
		return nil, nil
	}

	a.console.Show("Accounts:")
	for _, name := range names {
		acct, _ := a.accounts.Get(name)
		p := a.accounts.LoginPresence(name)
		a.console.Show(fmt.Sprintf("  %s: %s, %s (priority %d)",
			name, acct.JID, a.styles.Presence(p).Render(p.String()), a.accounts.Priority(name, p)))
	}
	return nil, nil
}

func cmdRoster(a *App, _ Input) (tea.Cmd, error) {
	contacts := a.roster.All()
	if len(contacts) == 0 {
		a.console.Show("Roster is empty.")
		return nil, nil
	}

	a.console.Show("Roster:")
	for _, c := range contacts {
		line := "  " + c.JID
		if c.Name != "" {
			line += " (" + c.Name + ")"
		}
		a.console.Show(line + " - " + a.styles.Presence(c.Presence).Render(c.Presence.String()))
	}
	return nil, nil
}

func cmdWins(a *App, _ Input) (tea.Cmd, error) {
	a.console.ShowWins()
	return nil, nil
}

func cmdMsg(a *App, in Input) (tea.Cmd, error) {
	if len(in.Args) == 0 {
		return nil, errUsage
	}
	jid := in.Args[0]

	slot, err := a.openConversation(jid, window.KindChat)
	if err != nil {
		return nil, fmt.Errorf("Cannot open chat with %s: %w", jid, err)
	}
	a.focus(slot)

	if in.Rest != "" {
		a.windows.Get(slot).(*window.Chat).Outgoing(a.now(), in.Rest)
	}
	return nil, nil
}

func cmdWin(a *App, in Input) (tea.Cmd, error) {
	if len(in.Args) != 1 {
		return nil, errUsage
	}
	n, err := strconv.Atoi(in.Args[0])
	if err != nil || n < 1 || n > window.NumWins {
		return nil, errUsage
	}
	if a.windows.Get(n-1) == nil {
		return nil, fmt.Errorf("Window %d does not exist.", n)
	}
	a.focus(n - 1)
	return nil, nil
}

func cmdClose(a *App, _ Input) (tea.Cmd, error) {
	slot := a.windows.Current()
	if err := a.windows.Close(slot); err != nil {
		if errors.Is(err, window.ErrConsoleClose) {
			return nil, errors.New("Cannot close the console window.")
		}
		return nil, err
	}
	a.bar.Inactive(slot)
	a.bar.Current(a.windows.Current())
	return nil, nil
}

func cmdClear(a *App, _ Input) (tea.Cmd, error) {
	a.console.Clear()
	return nil, nil
}

func cmdVercheck(a *App, in Input) (tea.Cmd, error) {
	if len(in.Args) == 0 {
		return a.fetchRelease(true), nil
	}
	on, err := parseToggle(in.Args)
	if err != nil {
		return nil, err
	}
	if err := a.cfg.SetVersionCheck(on); err != nil {
		log.Error("save config", "error", err)
		return nil, fmt.Errorf("Could not save settings: %w", err)
	}
	a.console.Show("Version checking " + enabled(on) + ".")
	return nil, nil
}

func cmdSplash(a *App, in Input) (tea.Cmd, error) {
	on, err := parseToggle(in.Args)
	if err != nil {
		return nil, err
	}
	if err := a.cfg.SetSplash(on); err != nil {
		log.Error("save config", "error", err)
		return nil, fmt.Errorf("Could not save settings: %w", err)
	}
	a.console.Show("Splash screen " + enabled(on) + ".")
	return nil, nil
}

func cmdQuit(_ *App, _ Input) (tea.Cmd, error) {
	return tea.Quit, nil
}

func parseToggle(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errUsage
	}
	switch args[0] {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	return false, errUsage
}

func enabled(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
