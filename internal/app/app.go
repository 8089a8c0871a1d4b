package app

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kmacinski/natter/internal/account"
	"github.com/kmacinski/natter/internal/config"
	"github.com/kmacinski/natter/internal/console"
	"github.com/kmacinski/natter/internal/contact"
	"github.com/kmacinski/natter/internal/keys"
	"github.com/kmacinski/natter/internal/layout"
	"github.com/kmacinski/natter/internal/log"
	"github.com/kmacinski/natter/internal/release"
	"github.com/kmacinski/natter/internal/statusbar"
	"github.com/kmacinski/natter/internal/ui"
	"github.com/kmacinski/natter/internal/watcher"
	"github.com/kmacinski/natter/internal/window"
	"github.com/mattn/go-runewidth"
)

const releaseTimeout = 10 * time.Second

// Options configure a new App
type Options struct {
	Config    *config.Store
	Terminal  console.Terminal
	Build     console.Build
	Now       func() time.Time
	Clipboard func(string) error
	LogLevel  string // set from the command line; overrides the config
}

// App is the main application model
type App struct {
	state    *State
	cfg      *config.Store
	styles   ui.Styles
	layout   *layout.Manager
	commands []Command
	now      func() time.Time
	copy     func(string) error
	build    console.Build
	logLevel string

	screen   *layout.Pane
	console  *console.Surface
	windows  *window.Registry
	bar      *statusbar.Bar
	roster   *contact.Roster
	accounts *account.Store
	feed     *release.Feed
	input    textinput.Model

	// Config watcher
	watcher *watcher.FileWatcher
	program *tea.Program
}

// New creates the application and its console. It fails when the terminal
// size cannot be read.
func New(opts Options) (*App, error) {
	if opts.Config == nil {
		opts.Config = config.NewStore("", config.Default)
	}
	if opts.Terminal == nil {
		opts.Terminal = console.StdoutTerminal{}
	}
	if opts.Build.Name == "" {
		opts.Build.Name = "natter"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}

	cfg := opts.Config.Config()
	styles := ui.NewStyles(ui.ColorsFromConfig(cfg.Colors))

	screen := layout.NewPane()
	windows := window.NewRegistry()
	bar := statusbar.NewBar(styles, opts.Now)
	roster := contact.FromConfig(cfg.Contacts)
	accounts := account.NewStore(cfg.Accounts)
	feed := release.NewFeed(cfg.Release.URL)

	cons, err := console.Create(opts.Terminal, console.Deps{
		Screen:   screen,
		Prefs:    opts.Config,
		Releases: feed,
		Accounts: accounts,
		Contacts: roster,
		Windows:  windows,
		Status:   bar,
		Build:    opts.Build,
		Styles:   styles,
		Now:      opts.Now,
	})
	if err != nil {
		return nil, err
	}
	windows.SetConsole(cons)

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "/help"
	input.Focus()

	lm := layout.NewManager()
	cols, rows := cons.Size()
	lm.Resize(cols, rows)
	input.Width = max(0, cols-len(input.Prompt)-1)

	return &App{
		state:    NewState(),
		cfg:      opts.Config,
		styles:   styles,
		layout:   lm,
		commands: commands(),
		now:      opts.Now,
		copy:     opts.Clipboard,
		build:    opts.Build,
		logLevel: opts.LogLevel,
		screen:   screen,
		console:  cons,
		windows:  windows,
		bar:      bar,
		roster:   roster,
		accounts: accounts,
		feed:     feed,
		input:    input,
	}, nil
}

// SetProgram sets the tea.Program reference and starts watching the config
// file for edits
func (a *App) SetProgram(p *tea.Program) {
	a.program = p

	path := a.cfg.Path()
	if path == "" {
		return
	}
	w, err := watcher.New(path, 500*time.Millisecond, func() {
		if a.program != nil {
			a.program.Send(ConfigChangedMsg{})
		}
	})
	if err != nil {
		log.Warn("config watcher disabled", "error", err)
		return
	}
	a.watcher = w
	a.watcher.Start()
}

// Cleanup stops the watcher
func (a *App) Cleanup() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
}

// Console returns the console window
func (a *App) Console() *console.Surface {
	return a.console
}

// Init prints the banner and starts the background work
func (a *App) Init() tea.Cmd {
	a.console.About()
	a.console.Refresh()

	cmds := []tea.Cmd{textinput.Blink, a.tick()}
	if a.cfg.VersionCheck() {
		cmds = append(cmds, a.fetchRelease(false))
	}
	return tea.Batch(cmds...)
}

// Update handles messages. Console output produced while handling one
// message reaches the screen in a single composite.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.console.Refresh()
	return a, cmd
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.layout.Resize(msg.Width, msg.Height)
		a.console.Resize(msg.Width, msg.Height)
		a.input.Width = max(0, msg.Width-len(a.input.Prompt)-1)
		return nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case TickMsg:
		return a.tick()

	case LoginSuccessMsg:
		acct, ok := a.accounts.Get(msg.Account)
		if !ok {
			acct = account.Account{Name: msg.Account, JID: msg.Account}
		}
		a.state.Login(acct, a.accounts.LoginPresence(acct.Name))
		a.console.ShowLoginSuccess(acct)
		return nil

	case IncomingMsg:
		a.incoming(msg)
		return nil

	case PresenceMsg:
		a.roster.UpdatePresence(msg.JID, msg.Name, msg.Presence)
		return nil

	case ReleaseCheckedMsg:
		if msg.Err != nil {
			log.Debug("release check failed", "error", msg.Err)
			return nil
		}
		a.feed.Store(msg.Version)
		if msg.Explicit || a.cfg.VersionCheck() {
			a.console.CheckVersion(msg.Explicit)
		}
		return nil

	case ConfigChangedMsg:
		if err := a.cfg.Reload(); err != nil {
			log.Warn("config reload failed", "error", err)
			a.console.Show(fmt.Sprintf("Could not reload %s: %v", a.cfg.Path(), err))
			return nil
		}
		a.applyConfig()
		log.Info("config reloaded", "path", a.cfg.Path())
		return nil
	}

	return nil
}

// applyConfig pushes the reloaded config into everything built from it
func (a *App) applyConfig() {
	cfg := a.cfg.Config()

	a.accounts.Load(cfg.Accounts)
	a.roster.Seed(cfg.Contacts)
	a.feed.SetURL(cfg.Release.URL)
	if a.logLevel == "" {
		log.SetLevel(log.ParseLevel(cfg.Log.Level))
	}

	a.styles = ui.NewStyles(ui.ColorsFromConfig(cfg.Colors))
	a.bar.SetStyles(a.styles)
	for _, slot := range a.windows.Occupied() {
		a.windows.Get(slot).SetStyles(a.styles)
	}
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	km := keys.DefaultKeyMap

	switch {
	case key.Matches(msg, km.Quit):
		return tea.Quit

	case key.Matches(msg, km.NextWin):
		a.windows.Cycle(false)
		a.bar.Current(a.windows.Current())
		return nil

	case key.Matches(msg, km.PrevWin):
		a.windows.Cycle(true)
		a.bar.Current(a.windows.Current())
		return nil

	case key.Matches(msg, km.PageUp), key.Matches(msg, km.PageDown):
		_, cmd := a.windows.CurrentWindow().Update(msg)
		return cmd

	case key.Matches(msg, km.Yank):
		if err := a.copy(a.console.Text()); err != nil {
			log.Warn("clipboard write failed", "error", err)
			a.bar.SetMessage("Copy failed")
			return nil
		}
		a.bar.SetMessage("Copied console")
		return nil

	case key.Matches(msg, km.Submit):
		line := a.input.Value()
		a.input.Reset()
		a.bar.SetMessage("")
		return a.submit(line)
	}

	for slot, b := range km.Win {
		if key.Matches(msg, b) {
			if a.windows.Get(slot) != nil {
				a.focus(slot)
			}
			return nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

func (a *App) incoming(msg IncomingMsg) {
	slot, err := a.openConversation(msg.From, msg.Kind)
	if err != nil {
		log.Warn("dropped message", "from", msg.From, "error", err)
		a.console.Show(fmt.Sprintf("Message from %s dropped: %v", msg.From, err))
		return
	}

	nick := msg.Nick
	if nick == "" {
		nick = msg.From
	}
	a.windows.Get(slot).(*window.Chat).Incoming(a.now(), nick, msg.Body)
	if slot != a.windows.Current() {
		a.bar.New(slot)
	}
}

// openConversation finds the window for peer or opens one
func (a *App) openConversation(peer string, kind window.Kind) (int, error) {
	kind = window.ConversationKind(kind)
	if slot, ok := a.windows.Find(peer, kind); ok {
		return slot, nil
	}
	slot, err := a.windows.Open(window.NewConversation(peer, kind, a.styles))
	if err != nil {
		return 0, err
	}
	a.bar.Active(slot)
	return slot, nil
}

func (a *App) focus(slot int) {
	if err := a.windows.Focus(slot); err != nil {
		log.Debug("focus", "error", err)
		return
	}
	a.bar.Current(slot)
}

// View renders the application
func (a *App) View() string {
	width := a.layout.Width()
	main := a.layout.Main()

	var body string
	if a.windows.CurrentIsConsole() {
		body = a.console.View(main.Width(), main.Height())
	} else {
		body = a.windows.CurrentWindow().View(main.Width(), main.Height())
	}

	return a.layout.Render(
		a.titleBar(width),
		body,
		a.bar.View(width),
		a.input.View(),
	)
}

func (a *App) titleBar(width int) string {
	name := a.windows.CurrentWindow().Name()
	left := fmt.Sprintf(" %s %s - %s", a.build.Name, a.build, name)
	right := a.state.Identity() + " "

	gap := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	line := left
	if gap > 0 {
		line = left + fmt.Sprintf("%*s", gap, "") + right
	}
	line = runewidth.Truncate(line, width, "…")
	return a.styles.TitleBar.Render(layout.Fit(line, width))
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fetchRelease downloads the latest version off the update loop
func (a *App) fetchRelease(explicit bool) tea.Cmd {
	feed := a.feed
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
		defer cancel()

		v, err := feed.Fetch(ctx)
		return ReleaseCheckedMsg{Version: v, Err: err, Explicit: explicit}
	}
}
