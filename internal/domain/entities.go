package domain

import (
	"fmt"
	"strings"
)

// Emulator is a backend-defined grouping under which tables are enumerated.
type Emulator struct {
	ID       int    // Backend identifier
	Name     string // Display name, may be empty
	SafeName string // Filesystem-safe fallback name
	Type     string // Emulator type, e.g. "VisualPinball"
}

// DisplayLabel returns the best available human-readable label.
func (e Emulator) DisplayLabel() string {
	switch {
	case e.Name != "":
		return e.Name
	case e.SafeName != "":
		return e.SafeName
	case e.Type != "":
		return e.Type
	default:
		return fmt.Sprintf("ID %d", e.ID)
	}
}

// Table represents one playable item known to the backend. The full set is
// replaced wholesale on every list reload and never mutated field-by-field.
type Table struct {
	ID          string // Opaque identifier, unique within an emulator scope
	DisplayName string // Human-readable name, may be empty
}

// TableDetails is the expanded record for one table, decoded once at the
// client boundary with explicit defaults for every optional field.
type TableDetails struct {
	ID           string
	DisplayName  string
	GameName     string
	FileName     string
	Manufacturer string
	Year         string
	Version      string
	DesignedBy   string
	Authors      string
	Themes       []string // Split from the backend's comma-joined string
	Tags         []string
	Players      int
	PlayCount    int
	LastPlayed   int64 // Unix milliseconds, 0 = never
	DateAdded    int64
	DateModified int64
	ROMName      string
	IPDBNumber   string
	URL          string
	URL2         string
	Launchers    []string
	Notes        string
}

// Title returns the display title for the detail sheet.
func (d TableDetails) Title() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	if d.GameName != "" {
		return d.GameName
	}
	return d.ID
}

// MediaFile is one media candidate listed under a media category.
type MediaFile struct {
	Name     string
	MimeType string
	GameID   int
}

// MediaIndex is the full media listing for one table, keyed by category
// ("Wheel", "BackGlass", ...).
type MediaIndex struct {
	Media map[string][]MediaFile
}

// Wheel returns the wheel image candidates, nil when none exist.
func (m MediaIndex) Wheel() []MediaFile {
	return m.Media["Wheel"]
}

// WheelRef points at the resolved wheel image for a table. A nil *WheelRef is
// the memoized "no image" result, not an error.
type WheelRef struct {
	URL string
}

// SystemInfo identifies the backend installation.
type SystemInfo struct {
	SystemName string
	Version    string
}

// FrontendInfo describes the cabinet frontend managed by the backend.
type FrontendInfo struct {
	Name         string
	FrontendType string
}

// RestartLabel returns the frontend name to show on the restart control.
func (f FrontendInfo) RestartLabel() string {
	if f.Name != "" {
		return f.Name
	}
	if f.FrontendType != "" {
		return f.FrontendType
	}
	return "Frontend"
}

// Highscores is the free-text scoreboard dump for one table.
type Highscores struct {
	Raw string
}

// LaunchOptions carries the optional PUT /games/play payload fields.
type LaunchOptions struct {
	AltExe string
	Option string
}

// HookLabel strips the ".bat" suffix backends commonly report for hooks.
func HookLabel(name string) string {
	if len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".bat") {
		return name[:len(name)-4]
	}
	return name
}
