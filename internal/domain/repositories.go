package domain

import "context"

// GameRepository provides read access to emulators, tables and table metadata.
type GameRepository interface {
	GetEmulators(ctx context.Context) ([]Emulator, error)
	GetTables(ctx context.Context, emulatorID int) ([]Table, error)
	GetTableDetails(ctx context.Context, gameID string) (*TableDetails, error)
	GetHighscores(ctx context.Context, gameID string) (*Highscores, error)
}

// MediaRepository provides access to the backend's media listings and assets.
type MediaRepository interface {
	GetMediaIndex(ctx context.Context, gameID string) (*MediaIndex, error)
	MediaURL(gameID int, category, name string) string
	GetMediaAsset(ctx context.Context, gameID int, category, name string) ([]byte, error)
}

// ControlRepository triggers external effects on the cabinet. Every method is
// a single request/response round trip; the returned string is the backend's
// opaque response text.
type ControlRepository interface {
	PlayTable(ctx context.Context, gameID string, opts *LaunchOptions) (string, error)
	LaunchViaFrontend(ctx context.Context, gameID string) (string, error)
	RestartFrontend(ctx context.Context) (string, error)
	SetMute(ctx context.Context, muted bool) (string, error)
	ListHooks(ctx context.Context) ([]string, error)
	RunHook(ctx context.Context, name string, gameID int) (string, error)
}

// InfoRepository exposes the backend's identity endpoints, used for the
// header. All of these degrade silently on failure.
type InfoRepository interface {
	GetSystemInfo(ctx context.Context) (*SystemInfo, error)
	GetFrontendInfo(ctx context.Context) (*FrontendInfo, error)
	GetAvatar(ctx context.Context) ([]byte, error)
}
