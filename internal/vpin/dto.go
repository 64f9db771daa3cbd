package vpin

import "encoding/json"

// Wire DTOs for the VPin Studio REST API. Field access is optimistic on the
// backend side, so every field here is optional; defaults are filled once in
// the mapper, never in rendering code.

// emulatorDTO is one element of GET /emulators
type emulatorDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	SafeName string `json:"safeName"`
	Type     string `json:"type"`
}

// tableDTO is one element of GET /games/knowns/{emuId}. Backends have shipped
// ids both as numbers and as strings; json.Number tolerates either.
type tableDTO struct {
	ID              json.Number `json:"id"`
	GameDisplayName string      `json:"gameDisplayName"`
	Name            string      `json:"name"`
}

// detailsDTO is GET /frontend/tabledetails/{gameId}
type detailsDTO struct {
	ID              json.Number `json:"id"`
	GameDisplayName string      `json:"gameDisplayName"`
	GameName        string      `json:"gameName"`
	GameFileName    string      `json:"gameFileName"`
	Manufacturer    string      `json:"manufacturer"`
	GameYear        json.Number `json:"gameYear"`
	GameVersion     string      `json:"gameVersion"`
	DesignedBy      string      `json:"designedBy"`
	Author          string      `json:"author"`
	GameTheme       string      `json:"gameTheme"` // comma-joined
	Tags            string      `json:"tags"`      // comma-joined
	NumberOfPlayers json.Number `json:"numberOfPlayers"`
	NumberPlays     json.Number `json:"numberPlays"`
	LastPlayed      int64       `json:"lastPlayed"` // unix ms
	DateAdded       int64       `json:"dateAdded"`
	DateModified    int64       `json:"dateModified"`
	RomName         string      `json:"romName"`
	RomAlt          string      `json:"romAlt"`
	IPDBNum         json.Number `json:"ipdbnum"`
	URL             string      `json:"url"`
	WebLink2URL     string      `json:"webLink2Url"`
	LauncherList    []string    `json:"launcherList"`
	GDetails        string      `json:"gDetails"`
	GNotes          string      `json:"gNotes"`
	Notes           string      `json:"notes"`
}

// mediaFileDTO is one media candidate in GET /media/{gameId}
type mediaFileDTO struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	GameID   int    `json:"gameId"`
}

// mediaIndexDTO is GET /media/{gameId}
type mediaIndexDTO struct {
	Media map[string][]mediaFileDTO `json:"media"`
}

// hooksDTO is GET /hooks
type hooksDTO struct {
	Hooks []string `json:"hooks"`
}

// hookRunDTO is the POST /hooks request body
type hookRunDTO struct {
	Name     string   `json:"name"`
	Commands []string `json:"commands"`
	GameID   int      `json:"gameId"`
}

// playDTO is the PUT /games/play/{gameId} request body
type playDTO struct {
	AltExe string `json:"altExe,omitempty"`
	Option string `json:"option,omitempty"`
}

// systemDTO is GET /system
type systemDTO struct {
	SystemName string `json:"systemName"`
	Version    string `json:"version"`
}

// frontendDTO is GET /frontend
type frontendDTO struct {
	Name         string `json:"name"`
	FrontendType string `json:"frontendType"`
}

// scoresDTO is GET /games/scores/{gameId}
type scoresDTO struct {
	Raw string `json:"raw"`
}
