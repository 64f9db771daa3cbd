package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"pincab/internal/domain"
	"pincab/internal/service"
)

// Command factories for async operations

// LoadEmulatorsCmd loads the emulator list
func LoadEmulatorsCmd(svc *service.GameService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		emus, err := svc.GetEmulators(ctx)
		if err != nil {
			return ErrMsg{Err: err, Key: "errEmulators"}
		}
		return EmulatorsLoadedMsg{Emulators: emus}
	}
}

// LoadTablesCmd loads the table list for an emulator
func LoadTablesCmd(svc *service.GameService, emulatorID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		tables, err := svc.GetTables(ctx, emulatorID)
		if err != nil {
			return ErrMsg{Err: err, Key: "errTables"}
		}
		return TablesLoadedMsg{Tables: tables, EmulatorID: emulatorID}
	}
}

// LoadDetailsCmd loads the technical sheet for a table. The generation is
// echoed back so a sheet opened for a different row in the meantime wins.
func LoadDetailsCmd(svc *service.GameService, gameID string, generation uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		details, err := svc.GetTableDetails(ctx, gameID)
		if err != nil {
			return DetailFailedMsg{Err: err, GameID: gameID, Generation: generation}
		}
		return DetailLoadedMsg{Details: details, Generation: generation}
	}
}

// LoadHighscoresCmd loads highscores for the open sheet. Failures degrade to
// an absent section rather than an error.
func LoadHighscoresCmd(svc *service.GameService, gameID string, generation uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		scores, err := svc.GetHighscores(ctx, gameID)
		if err != nil {
			return HighscoresLoadedMsg{Scores: nil, Generation: generation}
		}
		return HighscoresLoadedMsg{Scores: scores, Generation: generation}
	}
}

// ResolveWheelCmd resolves the wheel art reference for a game
func ResolveWheelCmd(resolver *service.WheelResolver, gameID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		ref := resolver.ResolveWheel(ctx, gameID)
		return WheelResolvedMsg{GameID: gameID, Ref: ref}
	}
}

// LoadHooksCmd loads the backend's hook scripts
func LoadHooksCmd(svc *service.ActionService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		hooks, err := svc.ListHooks(ctx)
		if err != nil {
			return ErrMsg{Err: err, Key: "errHooks"}
		}
		return HooksLoadedMsg{Hooks: hooks}
	}
}

// LoadSystemInfoCmd loads backend identity for the header, silently
// dropping failures.
func LoadSystemInfoCmd(repo domain.InfoRepository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		info, err := repo.GetSystemInfo(ctx)
		if err != nil {
			return SystemInfoMsg{Info: nil}
		}
		return SystemInfoMsg{Info: info}
	}
}

// LoadFrontendInfoCmd loads the frontend identity for the restart control,
// silently dropping failures.
func LoadFrontendInfoCmd(repo domain.InfoRepository) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		info, err := repo.GetFrontendInfo(ctx)
		if err != nil {
			return FrontendInfoMsg{Info: nil}
		}
		return FrontendInfoMsg{Info: info}
	}
}

// PlayTableCmd launches a table directly on its emulator
func PlayTableCmd(svc *service.ActionService, gameID string, opts *domain.LaunchOptions) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		out, err := svc.Play(ctx, gameID, opts)
		if err != nil {
			return ActionFailedMsg{Action: ActionPlay, Key: "errPlay", Err: err}
		}
		return ActionDoneMsg{Action: ActionPlay, Key: "okLaunched", GameID: gameID, Payload: out}
	}
}

// LaunchViaFrontendCmd launches a table through the cabinet frontend
func LaunchViaFrontendCmd(svc *service.ActionService, gameID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		out, err := svc.LaunchViaFrontend(ctx, gameID)
		if err != nil {
			return ActionFailedMsg{Action: ActionPlayFrontend, Key: "errLaunch", Err: err}
		}
		return ActionDoneMsg{Action: ActionPlayFrontend, Key: "okFrontendSent", GameID: gameID, Payload: out}
	}
}

// RestartFrontendCmd restarts the cabinet frontend process
func RestartFrontendCmd(svc *service.ActionService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		out, err := svc.Restart(ctx)
		if err != nil {
			return ActionFailedMsg{Action: ActionRestart, Key: "errRestart", Err: err}
		}
		return ActionDoneMsg{Action: ActionRestart, Key: "okRestarted", Payload: out}
	}
}

// SetMuteCmd mutes or unmutes cabinet sound
func SetMuteCmd(svc *service.ActionService, muted bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		action, okKey := ActionMute, "okMuted"
		if !muted {
			action, okKey = ActionUnmute, "okUnmuted"
		}

		out, err := svc.SetMute(ctx, muted)
		if err != nil {
			return ActionFailedMsg{Action: action, Key: "errMute", Err: err}
		}
		return ActionDoneMsg{Action: action, Key: okKey, Payload: out}
	}
}

// RunHookCmd runs a backend hook script against a game
func RunHookCmd(svc *service.ActionService, name string, gameID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		out, err := svc.RunHook(ctx, name, gameID)
		if err != nil {
			return ActionFailedMsg{Action: ActionHook, Key: "errHook", Err: err}
		}
		return ActionDoneMsg{Action: ActionHook, Key: "okHook", Payload: out}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
