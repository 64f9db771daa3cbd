package tui

import (
	"pincab/internal/domain"
	"pincab/internal/i18n"
)

// Message types for the TUI

// ErrMsg represents a failed load. Key names the operation in the message
// catalogs so the status line renders in the session language.
type ErrMsg struct {
	Err error
	Key string
}

// Error implements the error interface, in English.
func (e ErrMsg) Error() string {
	return e.Localized("en")
}

// Localized renders the error for the status line in lang.
func (e ErrMsg) Localized(lang string) string {
	if e.Key != "" {
		return i18n.T(lang, e.Key) + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// EmulatorsLoadedMsg signals that the emulator list has been loaded
type EmulatorsLoadedMsg struct {
	Emulators []domain.Emulator
}

// TablesLoadedMsg signals that a table list has been loaded
type TablesLoadedMsg struct {
	Tables     []domain.Table
	EmulatorID int
}

// DetailLoadedMsg carries a loaded table sheet. Generation ties the
// response to the request that started it so stale loads can be dropped.
type DetailLoadedMsg struct {
	Details    *domain.TableDetails
	Generation uint64
}

// DetailFailedMsg signals that a sheet load failed
type DetailFailedMsg struct {
	Err        error
	GameID     string
	Generation uint64
}

// HighscoresLoadedMsg carries highscore text for the open sheet.
// A nil payload means the backend had none.
type HighscoresLoadedMsg struct {
	Scores     *domain.Highscores
	Generation uint64
}

// WheelResolvedMsg carries the resolved wheel reference for a game.
// Ref is nil when the game has no wheel art.
type WheelResolvedMsg struct {
	GameID string
	Ref    *domain.WheelRef
}

// HooksLoadedMsg signals that the hook list has been loaded
type HooksLoadedMsg struct {
	Hooks []string
}

// SystemInfoMsg carries backend identity for the header
type SystemInfoMsg struct {
	Info *domain.SystemInfo
}

// FrontendInfoMsg carries the frontend identity for the restart control
type FrontendInfoMsg struct {
	Info *domain.FrontendInfo
}

// ActionDoneMsg signals that a cabinet action completed
type ActionDoneMsg struct {
	Action  Action
	Key     string // i18n message key for the status line
	GameID  string
	Payload string // raw backend response, logged not shown
}

// ActionFailedMsg signals that a cabinet action failed
type ActionFailedMsg struct {
	Action Action
	Key    string // i18n message key for the status line
	Err    error
}

// Action identifies a dispatched cabinet operation
type Action int

const (
	ActionPlay Action = iota
	ActionPlayFrontend
	ActionRestart
	ActionMute
	ActionUnmute
	ActionHook
)

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// TickMsg is a general tick message for animations
type TickMsg struct{}
