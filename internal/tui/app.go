package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pincab/internal/config"
	"pincab/internal/domain"
	"pincab/internal/i18n"
	"pincab/internal/search"
	"pincab/internal/service"
	"pincab/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StateEditingServer
	StateDetail
	StateHooks
	StateHelp
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ChromeHeight is header + column header + status + help lines.
const ChromeHeight = 5

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState

	// Services
	GameSvc   *service.GameService
	ActionSvc *service.ActionService
	Wheels    *service.WheelResolver
	InfoRepo  domain.InfoRepository

	// Preferences
	CfgStore *config.Store
	Cfg      *config.Config

	// Retarget repoints the backend client and cache store at a new base
	// address. Wired up in main; nil in tests that never change the address.
	Retarget func(baseURL string) error

	// Data
	Emulators []domain.Emulator
	EmuIndex  int
	List      *search.TableView
	Hooks     []string
	HookIndex int
	System    *domain.SystemInfo
	Frontend  *domain.FrontendInfo
	Muted     bool

	// Detail sheet
	Detail DetailPane

	// UI state
	SearchInput  textinput.Model
	ServerInput  textinput.Model
	priorSearch  string
	Selected     int
	Width        int
	Height       int
	StatusText   string
	StatusIsErr  bool
	Loading      bool
	SpinnerFrame int
	inFlight     map[Action]bool

	logger *slog.Logger
}

// NewModel creates a new application model
func NewModel(
	gameSvc *service.GameService,
	actionSvc *service.ActionService,
	wheels *service.WheelResolver,
	infoRepo domain.InfoRepository,
	cfgStore *config.Store,
	cfg *config.Config,
	logger *slog.Logger,
) Model {
	ti := textinput.New()
	ti.Placeholder = i18n.T(cfg.Preferences.Language, "searchPrompt")
	ti.Prompt = styles.FilterPromptStyle.Render("/ ")
	ti.CharLimit = 120

	si := textinput.New()
	si.Prompt = styles.FilterPromptStyle.Render(i18n.T(cfg.Preferences.Language, "baseApi") + ": ")
	si.CharLimit = 200

	view := search.NewTableView()
	view.SetSearch(cfg.Preferences.Search)
	view.SetSort(cfg.SortSpec())

	return Model{
		State:       StateBrowsing,
		GameSvc:     gameSvc,
		ActionSvc:   actionSvc,
		Wheels:      wheels,
		InfoRepo:    infoRepo,
		CfgStore:    cfgStore,
		Cfg:         cfg,
		List:        view,
		EmuIndex:    -1,
		SearchInput: ti,
		ServerInput: si,
		Loading:     true,
		inFlight:    make(map[Action]bool),
		logger:      logger,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadEmulatorsCmd(m.GameSvc),
		LoadSystemInfoCmd(m.InfoRepo),
		LoadFrontendInfoCmd(m.InfoRepo),
		LoadHooksCmd(m.ActionSvc),
		TickCmd(100*time.Millisecond),
	)
}

func (m *Model) lang() string {
	return m.Cfg.Preferences.Language
}

// savePrefs persists current preferences. Failures only get logged; the
// session keeps its in-memory state either way.
func (m *Model) savePrefs() {
	m.Cfg.Preferences.Search = m.List.Search()
	m.Cfg.SetSortSpec(m.List.Sort())
	if err := m.CfgStore.Save(m.Cfg); err != nil {
		m.logger.Debug("saving preferences failed", "error", err)
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.StatusText = fmt.Sprintf("%s  %s", time.Now().Format("15:04:05"), text)
	m.StatusIsErr = isErr
}

func (m *Model) currentTable() (domain.Table, bool) {
	filtered := m.List.Filtered()
	if m.Selected < 0 || m.Selected >= len(filtered) {
		return domain.Table{}, false
	}
	return filtered[m.Selected], true
}

func (m *Model) currentEmulatorID() int {
	if m.EmuIndex >= 0 && m.EmuIndex < len(m.Emulators) {
		return m.Emulators[m.EmuIndex].ID
	}
	return m.Cfg.Preferences.EmulatorID
}

func (m *Model) clampSelection() {
	n := len(m.List.Filtered())
	if m.Selected >= n {
		m.Selected = n - 1
	}
	if m.Selected < 0 {
		m.Selected = 0
	}
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case TickMsg:
		if m.Loading || len(m.inFlight) > 0 {
			m.SpinnerFrame = (m.SpinnerFrame + 1) % len(spinnerFrames)
			return m, TickCmd(100 * time.Millisecond)
		}
		return m, nil

	case ClearStatusMsg:
		m.StatusText = ""
		m.StatusIsErr = false
		return m, nil

	case EmulatorsLoadedMsg:
		m.Emulators = msg.Emulators
		m.EmuIndex = 0
		for i, emu := range m.Emulators {
			if emu.ID == m.Cfg.Preferences.EmulatorID {
				m.EmuIndex = i
				break
			}
		}
		if len(m.Emulators) == 0 {
			m.Loading = false
			m.setStatus(i18n.T(m.lang(), "errEmulators"), true)
			return m, nil
		}
		m.Cfg.Preferences.EmulatorID = m.Emulators[m.EmuIndex].ID
		return m, LoadTablesCmd(m.GameSvc, m.Emulators[m.EmuIndex].ID)

	case TablesLoadedMsg:
		if msg.EmulatorID != m.currentEmulatorID() {
			return m, nil
		}
		m.Loading = false
		m.List.SetTables(msg.Tables)
		m.clampSelection()
		return m, nil

	case HooksLoadedMsg:
		m.Hooks = msg.Hooks
		return m, nil

	case SystemInfoMsg:
		m.System = msg.Info
		return m, nil

	case FrontendInfoMsg:
		m.Frontend = msg.Info
		return m, nil

	case DetailLoadedMsg:
		m.Detail.AcceptDetails(msg)
		return m, nil

	case DetailFailedMsg:
		m.Detail.AcceptFailure(msg)
		return m, nil

	case HighscoresLoadedMsg:
		m.Detail.AcceptScores(msg)
		return m, nil

	case WheelResolvedMsg:
		m.Detail.AcceptWheel(msg)
		return m, nil

	case ActionDoneMsg:
		delete(m.inFlight, msg.Action)
		switch msg.Action {
		case ActionMute:
			m.Muted = true
		case ActionUnmute:
			m.Muted = false
		}
		m.setStatus(i18n.T(m.lang(), msg.Key), false)
		return m, ClearStatusCmd(5 * time.Second)

	case ActionFailedMsg:
		delete(m.inFlight, msg.Action)
		m.setStatus(fmt.Sprintf("%s: %v", i18n.T(m.lang(), msg.Key), msg.Err), true)
		return m, ClearStatusCmd(8 * time.Second)

	case ErrMsg:
		m.Loading = false
		m.setStatus(msg.Localized(m.lang()), true)
		return m, ClearStatusCmd(8 * time.Second)

	case tea.KeyMsg:
		switch m.State {
		case StateSearching:
			return m.updateSearching(msg)
		case StateEditingServer:
			return m.updateServerEdit(msg)
		case StateDetail:
			return m.updateDetail(msg)
		case StateHooks:
			return m.updateHooks(msg)
		case StateHelp:
			m.State = StateBrowsing
			return m, nil
		default:
			return m.updateBrowsing(msg)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil

	case key.Matches(msg, Keys.Down):
		if m.Selected < len(m.List.Filtered())-1 {
			m.Selected++
		}
		return m, nil

	case key.Matches(msg, Keys.HalfUp):
		m.Selected -= m.visibleRows() / 2
		m.clampSelection()
		return m, nil

	case key.Matches(msg, Keys.HalfDown):
		m.Selected += m.visibleRows() / 2
		m.clampSelection()
		return m, nil

	case key.Matches(msg, Keys.Home):
		m.Selected = 0
		return m, nil

	case key.Matches(msg, Keys.End):
		m.Selected = len(m.List.Filtered()) - 1
		m.clampSelection()
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.List.Search() != "" {
			m.List.SetSearch("")
			m.clampSelection()
			m.savePrefs()
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		m.State = StateSearching
		m.priorSearch = m.List.Search()
		m.SearchInput.SetValue(m.List.Search())
		m.SearchInput.CursorEnd()
		return m, m.SearchInput.Focus()

	case key.Matches(msg, Keys.Sort):
		m.List.ToggleSort(nextSortKey(m.List.Sort().Key))
		m.clampSelection()
		m.savePrefs()
		return m, nil

	case msg.String() == "1":
		m.List.ToggleSort(domain.SortByIndex)
		m.savePrefs()
		return m, nil

	case msg.String() == "2":
		m.List.ToggleSort(domain.SortByName)
		m.savePrefs()
		return m, nil

	case msg.String() == "3":
		m.List.ToggleSort(domain.SortByID)
		m.savePrefs()
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		emuID := m.currentEmulatorID()
		m.GameSvc.RefreshTables(emuID)
		m.Loading = true
		return m, tea.Batch(LoadTablesCmd(m.GameSvc, emuID), TickCmd(100*time.Millisecond))

	case key.Matches(msg, Keys.Emulator):
		if len(m.Emulators) < 2 {
			return m, nil
		}
		m.EmuIndex = (m.EmuIndex + 1) % len(m.Emulators)
		m.Cfg.Preferences.EmulatorID = m.Emulators[m.EmuIndex].ID
		m.Selected = 0
		m.Loading = true
		m.savePrefs()
		return m, tea.Batch(
			LoadTablesCmd(m.GameSvc, m.Emulators[m.EmuIndex].ID),
			TickCmd(100*time.Millisecond),
		)

	case key.Matches(msg, Keys.Enter):
		table, ok := m.currentTable()
		if !ok {
			return m, nil
		}
		m.State = StateDetail
		gen := m.Detail.Open(table.ID)
		return m, tea.Batch(
			LoadDetailsCmd(m.GameSvc, table.ID, gen),
			LoadHighscoresCmd(m.GameSvc, table.ID, gen),
			ResolveWheelCmd(m.Wheels, table.ID),
		)

	case key.Matches(msg, Keys.Play):
		return m.dispatchPlay(false)

	case key.Matches(msg, Keys.PlayFrontend):
		return m.dispatchPlay(true)

	case key.Matches(msg, Keys.Restart):
		if m.inFlight[ActionRestart] {
			return m, nil
		}
		m.inFlight[ActionRestart] = true
		return m, tea.Batch(RestartFrontendCmd(m.ActionSvc), TickCmd(100*time.Millisecond))

	case key.Matches(msg, Keys.Mute):
		if m.inFlight[ActionMute] {
			return m, nil
		}
		m.inFlight[ActionMute] = true
		return m, tea.Batch(SetMuteCmd(m.ActionSvc, true), TickCmd(100*time.Millisecond))

	case key.Matches(msg, Keys.Unmute):
		if m.inFlight[ActionUnmute] {
			return m, nil
		}
		m.inFlight[ActionUnmute] = true
		return m, tea.Batch(SetMuteCmd(m.ActionSvc, false), TickCmd(100*time.Millisecond))

	case key.Matches(msg, Keys.Hooks):
		if len(m.Hooks) == 0 {
			m.setStatus(i18n.T(m.lang(), "noHooks"), false)
			return m, ClearStatusCmd(3 * time.Second)
		}
		m.State = StateHooks
		m.HookIndex = 0
		return m, nil

	case key.Matches(msg, Keys.Server):
		m.State = StateEditingServer
		m.ServerInput.SetValue(m.Cfg.Server.BaseURL)
		m.ServerInput.CursorEnd()
		return m, m.ServerInput.Focus()

	case key.Matches(msg, Keys.Language):
		if m.lang() == "en" {
			m.Cfg.Preferences.Language = "fr"
		} else {
			m.Cfg.Preferences.Language = "en"
		}
		m.SearchInput.Placeholder = i18n.T(m.lang(), "searchPrompt")
		m.ServerInput.Prompt = styles.FilterPromptStyle.Render(i18n.T(m.lang(), "baseApi") + ": ")
		m.savePrefs()
		return m, nil
	}

	return m, nil
}

// dispatchPlay launches the selected table, via the frontend when frontend
// is true. A launch already in flight swallows the keypress.
func (m Model) dispatchPlay(frontend bool) (tea.Model, tea.Cmd) {
	table, ok := m.currentTable()
	if !ok {
		return m, nil
	}
	action := ActionPlay
	if frontend {
		action = ActionPlayFrontend
	}
	if m.inFlight[action] {
		return m, nil
	}
	m.inFlight[action] = true
	var cmd tea.Cmd
	if frontend {
		cmd = LaunchViaFrontendCmd(m.ActionSvc, table.ID)
	} else {
		cmd = PlayTableCmd(m.ActionSvc, table.ID, nil)
	}
	return m, tea.Batch(cmd, TickCmd(100*time.Millisecond))
}

func (m Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		m.State = StateBrowsing
		m.SearchInput.Blur()
		m.List.SetSearch(m.priorSearch)
		m.clampSelection()
		return m, nil

	case key.Matches(msg, Keys.Enter):
		m.State = StateBrowsing
		m.SearchInput.Blur()
		m.savePrefs()
		// Jump to the closest match; the list order itself stays put.
		if q := strings.TrimSpace(m.List.Search()); q != "" {
			if ranked := search.RankTables(q, m.List.Filtered()); len(ranked) > 0 {
				for i, t := range m.List.Filtered() {
					if t.ID == ranked[0].Table.ID {
						m.Selected = i
						break
					}
				}
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	m.List.SetSearch(m.SearchInput.Value())
	m.clampSelection()
	return m, cmd
}

func (m Model) updateServerEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		m.State = StateBrowsing
		m.ServerInput.Blur()
		return m, nil

	case key.Matches(msg, Keys.Enter):
		m.State = StateBrowsing
		m.ServerInput.Blur()
		return m.commitServer(strings.TrimSpace(m.ServerInput.Value()))
	}

	var cmd tea.Cmd
	m.ServerInput, cmd = m.ServerInput.Update(msg)
	return m, cmd
}

// commitServer repoints the session at a new backend base address. The old
// backend's caches are dropped wholesale and every startup load reruns, so
// the screen rebuilds as if the program had been launched against addr.
func (m Model) commitServer(addr string) (tea.Model, tea.Cmd) {
	if addr == "" || addr == m.Cfg.Server.BaseURL {
		return m, nil
	}

	m.Cfg.Server.BaseURL = addr
	m.savePrefs()

	if m.Retarget != nil {
		if err := m.Retarget(addr); err != nil {
			m.setStatus(err.Error(), true)
			return m, ClearStatusCmd(8 * time.Second)
		}
	}
	m.GameSvc.RefreshEmulators()
	m.Wheels.Reset()

	m.Emulators = nil
	m.EmuIndex = -1
	m.List.SetTables(nil)
	m.Selected = 0
	m.System = nil
	m.Frontend = nil
	m.Hooks = nil
	m.Loading = true
	return m, tea.Batch(
		LoadEmulatorsCmd(m.GameSvc),
		LoadSystemInfoCmd(m.InfoRepo),
		LoadFrontendInfoCmd(m.InfoRepo),
		LoadHooksCmd(m.ActionSvc),
		TickCmd(100*time.Millisecond),
	)
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, Keys.Escape), key.Matches(msg, Keys.Back), key.Matches(msg, Keys.Enter):
		m.Detail.Close()
		m.State = StateBrowsing
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		id := m.Detail.GameID
		if id == "" {
			return m, nil
		}
		m.GameSvc.RefreshGame(id)
		gen := m.Detail.Open(id)
		return m, tea.Batch(
			LoadDetailsCmd(m.GameSvc, id, gen),
			LoadHighscoresCmd(m.GameSvc, id, gen),
		)

	case key.Matches(msg, Keys.Play):
		return m.dispatchPlay(false)

	case key.Matches(msg, Keys.PlayFrontend):
		return m.dispatchPlay(true)
	}
	return m, nil
}

func (m Model) updateHooks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape), key.Matches(msg, Keys.Back):
		m.State = StateBrowsing
		return m, nil

	case key.Matches(msg, Keys.Up):
		if m.HookIndex > 0 {
			m.HookIndex--
		}
		return m, nil

	case key.Matches(msg, Keys.Down):
		if m.HookIndex < len(m.Hooks)-1 {
			m.HookIndex++
		}
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if m.HookIndex < 0 || m.HookIndex >= len(m.Hooks) {
			return m, nil
		}
		if m.inFlight[ActionHook] {
			return m, nil
		}
		name := m.Hooks[m.HookIndex]
		gameID := 0
		if table, ok := m.currentTable(); ok {
			if n, err := strconv.Atoi(table.ID); err == nil {
				gameID = n
			}
		}
		m.inFlight[ActionHook] = true
		m.State = StateBrowsing
		return m, tea.Batch(RunHookCmd(m.ActionSvc, name, gameID), TickCmd(100*time.Millisecond))
	}
	return m, nil
}

func nextSortKey(k domain.SortKey) domain.SortKey {
	switch k {
	case domain.SortByIndex:
		return domain.SortByName
	case domain.SortByName:
		return domain.SortByID
	default:
		return domain.SortByIndex
	}
}

func (m *Model) visibleRows() int {
	rows := m.Height - ChromeHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the application
func (m Model) View() string {
	if m.Width == 0 {
		return ""
	}

	switch m.State {
	case StateHelp:
		return m.viewHelp()
	case StateDetail:
		return m.Detail.View(m.lang(), m.Width)
	case StateHooks:
		return m.viewHooks()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewTableList())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	lang := m.lang()

	title := i18n.T(lang, "title")
	if m.System != nil && m.System.SystemName != "" {
		title = m.System.SystemName
	}
	left := styles.TitleStyle.Render(title)
	if m.System != nil && m.System.Version != "" {
		left += " " + styles.DimStyle.Render("v"+m.System.Version)
	}

	emuLabel := placeholder
	if m.EmuIndex >= 0 && m.EmuIndex < len(m.Emulators) {
		emuLabel = m.Emulators[m.EmuIndex].DisplayLabel()
	}
	mid := styles.SubtitleStyle.Render(i18n.T(lang, "emulator")+": ") + styles.AccentStyle.Render(emuLabel)

	counter := fmt.Sprintf("%d / %d", len(m.List.Filtered()), m.List.Total())
	right := styles.BadgeStyle.Render(counter)
	if m.Muted {
		right = styles.ErrorStyle.Render("🔇") + " " + right
	}
	if m.Loading || len(m.inFlight) > 0 {
		right = styles.SpinnerStyle.Render(spinnerFrames[m.SpinnerFrame]) + " " + right
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(mid) - lipgloss.Width(right) - 4
	if gap < 2 {
		gap = 2
	}
	return left + strings.Repeat(" ", gap/2+gap%2) + mid + strings.Repeat(" ", gap/2) + right + "  "
}

func (m Model) viewTableList() string {
	lang := m.lang()
	filtered := m.List.Filtered()

	var b strings.Builder
	b.WriteString(m.viewColumnHeader())
	b.WriteString("\n")

	switch m.State {
	case StateSearching:
		b.WriteString(m.SearchInput.View())
		b.WriteString("\n")
	case StateEditingServer:
		b.WriteString(m.ServerInput.View())
		b.WriteString("\n")
	}

	rows := m.visibleRows()
	if m.State == StateSearching || m.State == StateEditingServer {
		rows--
	}
	if rows < 1 {
		rows = 1
	}

	// Window anchored to keep the selection visible.
	offset := m.Selected - rows + 1
	if offset < 0 {
		offset = 0
	}

	if len(filtered) == 0 {
		text := i18n.T(lang, "noTables")
		if m.Loading {
			text = i18n.T(lang, "loadingTables")
		}
		b.WriteString(styles.DimStyle.Render("  " + text))
		return b.String()
	}

	nameWidth := m.Width - 22
	if nameWidth < 10 {
		nameWidth = 10
	}

	for i := offset; i < len(filtered) && i < offset+rows; i++ {
		t := filtered[i]
		name := t.DisplayName
		if name == "" {
			name = t.ID
		}
		row := fmt.Sprintf("%4d  %s  %s",
			i+1,
			styles.Pad(styles.Truncate(name, nameWidth), nameWidth),
			t.ID,
		)
		if i == m.Selected {
			b.WriteString(styles.SelectedRowStyle.Render(row))
		} else {
			b.WriteString(styles.NormalRowStyle.Render(row))
		}
		if i < len(filtered)-1 && i < offset+rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) viewColumnHeader() string {
	lang := m.lang()
	sort := m.List.Sort()

	indicator := func(k domain.SortKey) string {
		if sort.Key != k {
			return " "
		}
		if sort.Dir == domain.SortAsc {
			return "▲"
		}
		return "▼"
	}

	nameWidth := m.Width - 22
	if nameWidth < 10 {
		nameWidth = 10
	}
	header := fmt.Sprintf("%4s%s %s%s %s%s",
		i18n.T(lang, "thHash"), indicator(domain.SortByIndex),
		styles.Pad(i18n.T(lang, "thTable"), nameWidth), indicator(domain.SortByName),
		i18n.T(lang, "thID"), indicator(domain.SortByID),
	)
	return styles.HeaderRowStyle.Render(header)
}

func (m Model) viewStatus() string {
	if m.StatusText == "" {
		return ""
	}
	if m.StatusIsErr {
		return styles.ErrorStyle.Render(m.StatusText)
	}
	return styles.SuccessStyle.Render(m.StatusText)
}

func (m Model) viewFooter() string {
	lang := m.lang()

	restart := i18n.T(lang, "restartGeneric")
	if m.Frontend != nil {
		restart = i18n.Tf(lang, "restartWithName", map[string]string{"name": m.Frontend.RestartLabel()})
	}

	pairs := []struct{ k, v string }{
		{"enter", i18n.T(lang, "techSheet")},
		{"p", i18n.T(lang, "playEmu")},
		{"f", i18n.T(lang, "playFrontend")},
		{"/", i18n.T(lang, "searchPrompt")},
		{"R", restart},
		{"?", "help"},
	}

	var parts []string
	for _, p := range pairs {
		parts = append(parts, styles.HelpKeyStyle.Render(p.k)+" "+styles.HelpDescStyle.Render(p.v))
	}
	return styles.Truncate(strings.Join(parts, "  "), m.Width)
}

func (m Model) viewHooks() string {
	lang := m.lang()
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Hooks"))
	b.WriteString("\n\n")
	for i, h := range m.Hooks {
		label := domain.HookLabel(h)
		if i == m.HookIndex {
			b.WriteString(styles.SelectedRowStyle.Render(label))
		} else {
			b.WriteString(styles.NormalRowStyle.Render(label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpKeyStyle.Render("enter"))
	b.WriteString(" ")
	b.WriteString(styles.HelpDescStyle.Render("run"))
	b.WriteString("  ")
	b.WriteString(styles.HelpKeyStyle.Render("esc"))
	b.WriteString(" ")
	b.WriteString(styles.HelpDescStyle.Render(i18n.T(lang, "close")))
	return styles.SheetStyle.Render(b.String())
}

func (m Model) viewHelp() string {
	bindings := []key.Binding{
		Keys.Up, Keys.Down, Keys.HalfUp, Keys.HalfDown, Keys.Home, Keys.End,
		Keys.Enter, Keys.Filter, Keys.Sort, Keys.Refresh, Keys.Emulator,
		Keys.Play, Keys.PlayFrontend, Keys.Restart, Keys.Mute, Keys.Unmute,
		Keys.Hooks, Keys.Server, Keys.Language, Keys.Escape, Keys.Quit,
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		h := bind.Help()
		b.WriteString(styles.HelpKeyStyle.Render(styles.Pad(h.Key, 8)))
		b.WriteString(styles.HelpDescStyle.Render(h.Desc))
		b.WriteString("\n")
	}
	return styles.SheetStyle.Render(b.String())
}
