package tui

import (
	"errors"
	"testing"

	"pincab/internal/domain"
)

func TestDetailPaneAcceptsMatchingGeneration(t *testing.T) {
	var p DetailPane

	gen := p.Open("10")
	ok := p.AcceptDetails(DetailLoadedMsg{
		Details:    &domain.TableDetails{ID: "10", DisplayName: "Medieval Madness"},
		Generation: gen,
	})
	if !ok {
		t.Fatal("matching generation was rejected")
	}
	if p.State != DetailLoaded || p.Details.DisplayName != "Medieval Madness" {
		t.Errorf("pane = %+v", p)
	}
}

func TestDetailPaneDropsStaleLoad(t *testing.T) {
	var p DetailPane

	gen1 := p.Open("10")
	p.Open("20") // user flipped to another row before the first load landed

	ok := p.AcceptDetails(DetailLoadedMsg{
		Details:    &domain.TableDetails{ID: "10"},
		Generation: gen1,
	})
	if ok {
		t.Fatal("stale load was accepted")
	}
	if p.State != DetailLoading || p.GameID != "20" {
		t.Errorf("pane = %+v", p)
	}
}

func TestDetailPaneDropsLoadAfterClose(t *testing.T) {
	var p DetailPane

	gen := p.Open("10")
	p.Close()

	if ok := p.AcceptDetails(DetailLoadedMsg{Details: &domain.TableDetails{ID: "10"}, Generation: gen}); ok {
		t.Fatal("load for a closed sheet was accepted")
	}
	if p.State != DetailIdle {
		t.Errorf("State = %v, want idle", p.State)
	}
}

func TestDetailPaneFailure(t *testing.T) {
	var p DetailPane

	gen := p.Open("10")
	ok := p.AcceptFailure(DetailFailedMsg{Err: errors.New("HTTP 500 Internal Server Error"), GameID: "10", Generation: gen})
	if !ok {
		t.Fatal("matching failure was rejected")
	}
	if p.State != DetailFailed || p.Err == nil {
		t.Errorf("pane = %+v", p)
	}

	// A stale failure for a reopened sheet must not clobber the new load.
	p.Open("20")
	if ok := p.AcceptFailure(DetailFailedMsg{Err: errors.New("boom"), GameID: "10", Generation: gen}); ok {
		t.Fatal("stale failure was accepted")
	}
}

func TestDetailPaneScoresRequireMatchingGeneration(t *testing.T) {
	var p DetailPane

	gen := p.Open("10")
	p.AcceptDetails(DetailLoadedMsg{Details: &domain.TableDetails{ID: "10"}, Generation: gen})

	if ok := p.AcceptScores(HighscoresLoadedMsg{Scores: &domain.Highscores{Raw: "GRAND CHAMPION"}, Generation: gen}); !ok {
		t.Fatal("matching scores were rejected")
	}
	if p.Scores == nil || p.Scores.Raw != "GRAND CHAMPION" {
		t.Errorf("Scores = %+v", p.Scores)
	}

	gen2 := p.Open("20")
	if ok := p.AcceptScores(HighscoresLoadedMsg{Scores: &domain.Highscores{Raw: "old"}, Generation: gen}); ok {
		t.Fatal("stale scores were accepted")
	}
	_ = gen2
}

func TestDetailPaneWheelKeyedByGame(t *testing.T) {
	var p DetailPane

	gen := p.Open("10")
	p.AcceptDetails(DetailLoadedMsg{Details: &domain.TableDetails{ID: "10"}, Generation: gen})

	if ok := p.AcceptWheel(WheelResolvedMsg{GameID: "99", Ref: &domain.WheelRef{URL: "x"}}); ok {
		t.Fatal("wheel for another game was accepted")
	}
	if ok := p.AcceptWheel(WheelResolvedMsg{GameID: "10", Ref: &domain.WheelRef{URL: "http://cab/w.png"}}); !ok {
		t.Fatal("wheel for the open game was rejected")
	}
	if p.Wheel == nil || p.Wheel.URL != "http://cab/w.png" {
		t.Errorf("Wheel = %+v", p.Wheel)
	}

	// Absent wheel art is a valid answer.
	gen = p.Open("11")
	p.AcceptDetails(DetailLoadedMsg{Details: &domain.TableDetails{ID: "11"}, Generation: gen})
	if ok := p.AcceptWheel(WheelResolvedMsg{GameID: "11", Ref: nil}); !ok {
		t.Fatal("nil wheel was rejected")
	}
	if p.Wheel != nil {
		t.Errorf("Wheel = %+v, want nil", p.Wheel)
	}
}

func TestFormatWhen(t *testing.T) {
	if got := formatWhen(0); got != "" {
		t.Errorf("formatWhen(0) = %q, want empty", got)
	}
	if got := formatWhen(-5); got != "" {
		t.Errorf("formatWhen(-5) = %q, want empty", got)
	}
	if got := formatWhen(1); got == "" {
		t.Error("formatWhen(1) should render a date")
	}
}

func TestWrap(t *testing.T) {
	got := wrap("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrap() = %q, want %q", got, want)
	}
	if wrap("", 10) != "" {
		t.Error("wrap of empty string should be empty")
	}
}
