package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pincab/internal/config"
	"pincab/internal/domain"
	"pincab/internal/log"
	"pincab/internal/service"
	"pincab/internal/store"
)

// stubGameRepo satisfies domain.GameRepository; tests never execute the
// returned commands, so empty results suffice.
type stubGameRepo struct{}

func (stubGameRepo) GetEmulators(context.Context) ([]domain.Emulator, error) { return nil, nil }
func (stubGameRepo) GetTables(context.Context, int) ([]domain.Table, error)  { return nil, nil }
func (stubGameRepo) GetTableDetails(context.Context, string) (*domain.TableDetails, error) {
	return nil, nil
}
func (stubGameRepo) GetHighscores(context.Context, string) (*domain.Highscores, error) {
	return nil, nil
}

type stubMediaRepo struct{}

func (stubMediaRepo) GetMediaIndex(context.Context, string) (*domain.MediaIndex, error) {
	return &domain.MediaIndex{Media: map[string][]domain.MediaFile{}}, nil
}
func (stubMediaRepo) MediaURL(gameID int, category, name string) string {
	return fmt.Sprintf("http://cab/media/%d/%s/%s", gameID, category, name)
}
func (stubMediaRepo) GetMediaAsset(context.Context, int, string, string) ([]byte, error) {
	return nil, nil
}

func newTestStore(t *testing.T) *store.CabinetStore {
	t.Helper()
	st, err := store.NewCabinetStore("", "")
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func newTestModelWithStore(t *testing.T, st *store.CabinetStore) Model {
	t.Helper()
	cfg := config.Default()
	gameSvc := service.NewGameService(stubGameRepo{}, st, log.NullLogger())
	wheels := service.NewWheelResolver(stubMediaRepo{}, st, log.NullLogger())
	m := NewModel(gameSvc, nil, wheels, nil, config.NewStore(t.TempDir()), cfg, log.NullLogger())
	m.Width = 100
	m.Height = 30
	m.Loading = false
	m.List.SetTables([]domain.Table{
		{ID: "10", DisplayName: "Medieval Madness"},
		{ID: "11", DisplayName: "Attack from Mars"},
	})
	return m
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	return newTestModelWithStore(t, newTestStore(t))
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enterMsg() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestPlayKeyIgnoredWhileInFlight(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(keyMsg("p"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("first play produced no command")
	}
	if !m.inFlight[ActionPlay] {
		t.Fatal("play not marked in flight")
	}

	// Repeated presses while the launch is pending are swallowed.
	next, cmd = m.Update(keyMsg("p"))
	m = next.(Model)
	if cmd != nil {
		t.Error("second play produced a command while in flight")
	}

	// Completion re-enables the control.
	next, _ = m.Update(ActionDoneMsg{Action: ActionPlay, Key: "okLaunched", GameID: "10"})
	m = next.(Model)
	if m.inFlight[ActionPlay] {
		t.Error("in-flight flag survived completion")
	}
	if m.StatusText == "" || !strings.Contains(m.StatusText, "Table launched") {
		t.Errorf("StatusText = %q", m.StatusText)
	}
}

func TestFailureReenablesAction(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg("p"))
	m = next.(Model)
	next, _ = m.Update(ActionFailedMsg{Action: ActionPlay, Key: "errPlay", Err: errors.New("HTTP 500 Internal Server Error")})
	m = next.(Model)

	if m.inFlight[ActionPlay] {
		t.Error("in-flight flag survived failure")
	}
	if !m.StatusIsErr || !strings.Contains(m.StatusText, "500") {
		t.Errorf("status = %q, isErr = %v", m.StatusText, m.StatusIsErr)
	}

	next, cmd := m.Update(keyMsg("p"))
	m = next.(Model)
	if cmd == nil {
		t.Error("play not re-enabled after failure")
	}
}

func TestMuteStateFollowsCompletion(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(ActionDoneMsg{Action: ActionMute, Key: "okMuted"})
	m = next.(Model)
	if !m.Muted {
		t.Error("Muted not set after mute completion")
	}

	next, _ = m.Update(ActionDoneMsg{Action: ActionUnmute, Key: "okUnmuted"})
	m = next.(Model)
	if m.Muted {
		t.Error("Muted still set after unmute completion")
	}
}

func TestStaleTablesForOtherEmulatorDropped(t *testing.T) {
	m := newTestModel(t)
	m.Emulators = []domain.Emulator{{ID: 1}, {ID: 2}}
	m.EmuIndex = 0
	m.Cfg.Preferences.EmulatorID = 1

	next, _ := m.Update(TablesLoadedMsg{
		Tables:     []domain.Table{{ID: "99", DisplayName: "Wrong Emulator"}},
		EmulatorID: 2,
	})
	m = next.(Model)

	// The list still shows emulator 1's tables.
	if got := m.List.Total(); got != 2 {
		t.Errorf("Total() = %d after stale load, want 2", got)
	}
}

func TestEmulatorSelectionRestoredFromPrefs(t *testing.T) {
	m := newTestModel(t)
	m.Cfg.Preferences.EmulatorID = 7

	next, _ := m.Update(EmulatorsLoadedMsg{Emulators: []domain.Emulator{
		{ID: 3, Name: "VPX"},
		{ID: 7, Name: "FP"},
	}})
	m = next.(Model)

	if m.EmuIndex != 1 {
		t.Errorf("EmuIndex = %d, want 1 (preferred emulator)", m.EmuIndex)
	}
}

func TestEmulatorPrefUnknownFallsBackToFirst(t *testing.T) {
	m := newTestModel(t)
	m.Cfg.Preferences.EmulatorID = 42

	next, _ := m.Update(EmulatorsLoadedMsg{Emulators: []domain.Emulator{
		{ID: 3, Name: "VPX"},
		{ID: 7, Name: "FP"},
	}})
	m = next.(Model)

	if m.EmuIndex != 0 {
		t.Errorf("EmuIndex = %d, want 0", m.EmuIndex)
	}
	if m.Cfg.Preferences.EmulatorID != 3 {
		t.Errorf("EmulatorID pref = %d, want 3", m.Cfg.Preferences.EmulatorID)
	}
}

func TestSortToggleViaColumnKeys(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg("2"))
	m = next.(Model)
	if s := m.List.Sort(); s.Key != domain.SortByName || s.Dir != domain.SortAsc {
		t.Fatalf("sort after first press = %+v", s)
	}

	next, _ = m.Update(keyMsg("2"))
	m = next.(Model)
	if s := m.List.Sort(); s.Dir != domain.SortDesc {
		t.Fatalf("sort after second press = %+v", s)
	}

	// Switching columns adopts ascending.
	next, _ = m.Update(keyMsg("3"))
	m = next.(Model)
	if s := m.List.Sort(); s.Key != domain.SortByID || s.Dir != domain.SortAsc {
		t.Fatalf("sort after column switch = %+v", s)
	}
}

func TestServerEditRetargetsAndReloads(t *testing.T) {
	st := newTestStore(t)
	m := newTestModelWithStore(t, st)
	st.SaveEmulators([]domain.Emulator{{ID: 1}})
	m.Wheels.ResolveWheel(context.Background(), "10")

	var retargeted string
	m.Retarget = func(baseURL string) error {
		retargeted = baseURL
		return nil
	}

	next, cmd := m.Update(keyMsg("b"))
	m = next.(Model)
	if m.State != StateEditingServer {
		t.Fatalf("State = %v after b, want StateEditingServer", m.State)
	}
	if cmd == nil {
		t.Fatal("opening the address editor produced no focus command")
	}

	m.ServerInput.SetValue("http://cab-two:8089/api/v1")
	next, cmd = m.Update(enterMsg())
	m = next.(Model)

	if retargeted != "http://cab-two:8089/api/v1" {
		t.Errorf("retargeted = %q", retargeted)
	}
	if m.Cfg.Server.BaseURL != "http://cab-two:8089/api/v1" {
		t.Errorf("BaseURL pref = %q", m.Cfg.Server.BaseURL)
	}
	if m.State != StateBrowsing || !m.Loading || cmd == nil {
		t.Errorf("state = %v, loading = %v, cmd nil = %v", m.State, m.Loading, cmd == nil)
	}
	// The old backend's data is gone in every layer.
	if _, ok := st.GetEmulators(); ok {
		t.Error("old backend's emulators survived the address change")
	}
	if _, ok := m.Wheels.Cached("10"); ok {
		t.Error("wheel memo survived the address change")
	}
	if m.List.Total() != 0 || m.EmuIndex != -1 {
		t.Errorf("table list not reset: total = %d, emuIndex = %d", m.List.Total(), m.EmuIndex)
	}
}

func TestServerEditEscapeCancels(t *testing.T) {
	m := newTestModel(t)
	orig := m.Cfg.Server.BaseURL

	next, _ := m.Update(keyMsg("b"))
	m = next.(Model)
	m.ServerInput.SetValue("http://typo")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	if m.State != StateBrowsing {
		t.Errorf("State = %v after esc", m.State)
	}
	if m.Cfg.Server.BaseURL != orig {
		t.Errorf("BaseURL changed on cancel: %q", m.Cfg.Server.BaseURL)
	}
}

func TestServerEditUnchangedAddressIsNoop(t *testing.T) {
	m := newTestModel(t)
	m.Retarget = func(string) error {
		t.Error("Retarget called for an unchanged address")
		return nil
	}

	next, _ := m.Update(keyMsg("b"))
	m = next.(Model)
	next, cmd := m.Update(enterMsg())
	m = next.(Model)

	if cmd != nil || m.Loading {
		t.Errorf("unchanged address triggered a reload: cmd nil = %v, loading = %v", cmd == nil, m.Loading)
	}
}

func TestDetailRefreshDropsCachedGame(t *testing.T) {
	st := newTestStore(t)
	m := newTestModelWithStore(t, st)
	st.SaveDetails("10", &domain.TableDetails{ID: "10", DisplayName: "Medieval Madness"})

	next, _ := m.Update(enterMsg())
	m = next.(Model)
	if m.State != StateDetail {
		t.Fatalf("State = %v after enter", m.State)
	}

	next, cmd := m.Update(keyMsg("r"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("refresh produced no reload command")
	}
	if _, ok := st.GetDetails("10"); ok {
		t.Error("cached details survived the refresh")
	}
	if m.Detail.State != DetailLoading || m.Detail.GameID != "10" {
		t.Errorf("detail pane = %v for %q, want reloading for 10", m.Detail.State, m.Detail.GameID)
	}
}

func TestLoadErrorRendersInSessionLanguage(t *testing.T) {
	m := newTestModel(t)
	m.Cfg.Preferences.Language = "fr"

	next, _ := m.Update(ErrMsg{Err: errors.New("HTTP 500 Internal Server Error"), Key: "errTables"})
	m = next.(Model)

	if !strings.Contains(m.StatusText, "Erreur chargement tables") {
		t.Errorf("StatusText = %q, want the French catalog entry", m.StatusText)
	}
	if !strings.Contains(m.StatusText, "500") {
		t.Errorf("StatusText = %q, want the underlying error kept", m.StatusText)
	}
}

func TestListScrollsToKeepSelectionVisible(t *testing.T) {
	m := newTestModel(t)
	m.Height = 10 // five list rows after the chrome

	var tables []domain.Table
	for i := 1; i <= 20; i++ {
		tables = append(tables, domain.Table{
			ID:          fmt.Sprintf("%d", i),
			DisplayName: fmt.Sprintf("Table %02d", i),
		})
	}
	m.List.SetTables(tables)
	m.Selected = 15

	out := m.View()
	if !strings.Contains(out, "Table 16") {
		t.Error("selected row not rendered")
	}
	if strings.Contains(out, "Table 01") {
		t.Error("window did not scroll past the first row")
	}
}

func TestNextSortKeyCycles(t *testing.T) {
	order := []domain.SortKey{domain.SortByIndex, domain.SortByName, domain.SortByID, domain.SortByIndex}
	for i := 0; i < len(order)-1; i++ {
		if got := nextSortKey(order[i]); got != order[i+1] {
			t.Errorf("nextSortKey(%v) = %v, want %v", order[i], got, order[i+1])
		}
	}
}
