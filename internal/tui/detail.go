package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"pincab/internal/domain"
	"pincab/internal/i18n"
	"pincab/internal/tui/styles"
)

// DetailState tracks the lifecycle of the technical sheet.
type DetailState int

const (
	DetailIdle DetailState = iota
	DetailLoading
	DetailLoaded
	DetailFailed
)

// placeholder stands in for blank metadata fields.
const placeholder = "—"

// DetailPane is the technical sheet for one table. Each Open bumps the
// generation; responses carrying an older generation are ignored, so
// rapidly flipping between rows never shows the wrong sheet.
type DetailPane struct {
	State      DetailState
	GameID     string
	Details    *domain.TableDetails
	Scores     *domain.Highscores
	Wheel      *domain.WheelRef
	Err        error
	generation uint64
}

// Open resets the pane for a new game and returns the generation that
// responses must echo to be accepted.
func (p *DetailPane) Open(gameID string) uint64 {
	p.generation++
	p.State = DetailLoading
	p.GameID = gameID
	p.Details = nil
	p.Scores = nil
	p.Wheel = nil
	p.Err = nil
	return p.generation
}

// Close returns the pane to idle. In-flight responses for the closed sheet
// are dropped by the generation check.
func (p *DetailPane) Close() {
	p.generation++
	p.State = DetailIdle
	p.GameID = ""
	p.Details = nil
	p.Scores = nil
	p.Wheel = nil
	p.Err = nil
}

// Generation returns the current generation.
func (p *DetailPane) Generation() uint64 {
	return p.generation
}

// AcceptDetails applies a loaded sheet, false when stale.
func (p *DetailPane) AcceptDetails(msg DetailLoadedMsg) bool {
	if msg.Generation != p.generation || p.State != DetailLoading {
		return false
	}
	p.State = DetailLoaded
	p.Details = msg.Details
	return true
}

// AcceptFailure applies a failed load, false when stale.
func (p *DetailPane) AcceptFailure(msg DetailFailedMsg) bool {
	if msg.Generation != p.generation || p.State != DetailLoading {
		return false
	}
	p.State = DetailFailed
	p.Err = msg.Err
	return true
}

// AcceptScores applies highscores to the open sheet, false when stale.
func (p *DetailPane) AcceptScores(msg HighscoresLoadedMsg) bool {
	if msg.Generation != p.generation || p.State == DetailIdle {
		return false
	}
	p.Scores = msg.Scores
	return true
}

// AcceptWheel applies a resolved wheel reference, false when it belongs to
// another game.
func (p *DetailPane) AcceptWheel(msg WheelResolvedMsg) bool {
	if msg.GameID != p.GameID || p.State == DetailIdle {
		return false
	}
	p.Wheel = msg.Ref
	return true
}

// View renders the sheet for the given language and width.
func (p *DetailPane) View(lang string, width int) string {
	inner := width - 6
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder

	switch p.State {
	case DetailLoading:
		b.WriteString(styles.DimStyle.Render(i18n.T(lang, "loadingTables")))
	case DetailFailed:
		b.WriteString(styles.ErrorStyle.Render(i18n.T(lang, "errDetails")))
		if p.Err != nil {
			b.WriteString("\n")
			b.WriteString(styles.DimStyle.Render(styles.Truncate(p.Err.Error(), inner)))
		}
	case DetailLoaded:
		p.renderSheet(&b, lang, inner)
	default:
		return ""
	}

	b.WriteString("\n\n")
	b.WriteString(styles.HelpKeyStyle.Render("esc"))
	b.WriteString(" ")
	b.WriteString(styles.HelpDescStyle.Render(i18n.T(lang, "close")))

	return styles.SheetStyle.Width(width - 4).Render(b.String())
}

func (p *DetailPane) renderSheet(b *strings.Builder, lang string, inner int) {
	d := p.Details

	b.WriteString(styles.TitleStyle.Render(styles.Truncate(d.Title(), inner)))
	if p.Wheel != nil {
		b.WriteString(" ")
		b.WriteString(styles.AccentStyle.Render("◉"))
	}
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(i18n.T(lang, "techSheet")))
	b.WriteString("\n\n")

	row := func(key, value string) {
		b.WriteString(styles.SheetLabelStyle.Render(i18n.T(lang, key)))
		b.WriteString(" ")
		if value == "" {
			value = placeholder
		}
		b.WriteString(styles.SheetValueStyle.Render(styles.Truncate(value, inner-15)))
		b.WriteString("\n")
	}

	row("mName", d.Title())
	row("mFile", d.FileName)
	row("mManufacturer", d.Manufacturer)
	row("mYear", d.Year)
	row("mVersion", d.Version)
	row("mDesigner", d.DesignedBy)
	row("mAuthors", d.Authors)
	row("mThemes", strings.Join(d.Themes, ", "))
	row("mTags", strings.Join(d.Tags, ", "))
	row("mPlayers", formatCount(d.Players))
	row("mPlays", formatCount(d.PlayCount))
	row("mLastPlayed", formatWhen(d.LastPlayed))
	row("mAdded", formatWhen(d.DateAdded))
	row("mModified", formatWhen(d.DateModified))
	row("mROM", d.ROMName)
	row("mIPDB", d.IPDBNumber)
	row("mLink", d.URL)
	row("mLink2", d.URL2)
	row("mLaunchers", strings.Join(d.Launchers, ", "))

	if d.Notes != "" {
		b.WriteString("\n")
		b.WriteString(styles.SheetLabelStyle.Render(i18n.T(lang, "mNotes")))
		b.WriteString("\n")
		b.WriteString(styles.SheetValueStyle.Render(wrap(d.Notes, inner)))
		b.WriteString("\n")
	}

	if p.Scores != nil && strings.TrimSpace(p.Scores.Raw) != "" {
		b.WriteString("\n")
		b.WriteString(styles.SheetLabelStyle.Render(i18n.T(lang, "mHighscores")))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(wrap(p.Scores.Raw, inner)))
		b.WriteString("\n")
	}
}

func formatCount(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// formatWhen renders a unix-milliseconds timestamp as a relative time, the
// way the browser UI shows "3 days ago". Zero means never recorded.
func formatWhen(ms int64) string {
	if ms <= 0 {
		return ""
	}
	t := time.UnixMilli(ms)
	if t.After(time.Now()) {
		return t.Format("2006-01-02")
	}
	return fmt.Sprintf("%s (%s)", t.Format("2006-01-02"), humanize.Time(t))
}

// wrap does naive word wrapping at width columns.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	line := 0
	for i, w := range words {
		wl := len([]rune(w))
		if i > 0 {
			if line+1+wl > width {
				b.WriteString("\n")
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(w)
		line += wl
	}
	return b.String()
}
