package vpin

import (
	"encoding/json"
	"strings"

	"pincab/internal/domain"
)

// MapEmulators converts emulator DTOs to domain entities
func MapEmulators(dtos []emulatorDTO) []domain.Emulator {
	emus := make([]domain.Emulator, 0, len(dtos))
	for _, d := range dtos {
		emus = append(emus, domain.Emulator{
			ID:       d.ID,
			Name:     d.Name,
			SafeName: d.SafeName,
			Type:     d.Type,
		})
	}
	return emus
}

// MapTables converts table DTOs to domain entities. The display name falls
// back from gameDisplayName to name to empty, resolved here so rendering code
// never has to.
func MapTables(dtos []tableDTO) []domain.Table {
	tables := make([]domain.Table, 0, len(dtos))
	for _, d := range dtos {
		name := d.GameDisplayName
		if name == "" {
			name = d.Name
		}
		tables = append(tables, domain.Table{
			ID:          d.ID.String(),
			DisplayName: name,
		})
	}
	return tables
}

// MapDetails converts a details DTO to the domain record, filling defaults
// for every optional field at this boundary.
func MapDetails(d detailsDTO) *domain.TableDetails {
	notes := d.GDetails
	if notes == "" {
		notes = d.GNotes
	}
	if notes == "" {
		notes = d.Notes
	}
	rom := d.RomName
	if rom == "" {
		rom = d.RomAlt
	}
	return &domain.TableDetails{
		ID:           d.ID.String(),
		DisplayName:  d.GameDisplayName,
		GameName:     d.GameName,
		FileName:     d.GameFileName,
		Manufacturer: d.Manufacturer,
		Year:         numberString(d.GameYear),
		Version:      d.GameVersion,
		DesignedBy:   d.DesignedBy,
		Authors:      d.Author,
		Themes:       splitCSV(d.GameTheme),
		Tags:         splitCSV(d.Tags),
		Players:      numberInt(d.NumberOfPlayers),
		PlayCount:    numberInt(d.NumberPlays),
		LastPlayed:   d.LastPlayed,
		DateAdded:    d.DateAdded,
		DateModified: d.DateModified,
		ROMName:      rom,
		IPDBNumber:   numberString(d.IPDBNum),
		URL:          d.URL,
		URL2:         d.WebLink2URL,
		Launchers:    d.LauncherList,
		Notes:        notes,
	}
}

// MapMediaIndex converts the media listing, dropping nameless candidates.
func MapMediaIndex(d mediaIndexDTO) *domain.MediaIndex {
	idx := &domain.MediaIndex{Media: make(map[string][]domain.MediaFile, len(d.Media))}
	for category, files := range d.Media {
		mapped := make([]domain.MediaFile, 0, len(files))
		for _, f := range files {
			if f.Name == "" {
				continue
			}
			mapped = append(mapped, domain.MediaFile{
				Name:     f.Name,
				MimeType: f.MimeType,
				GameID:   f.GameID,
			})
		}
		if len(mapped) > 0 {
			idx.Media[category] = mapped
		}
	}
	return idx
}

// splitCSV splits a comma-joined backend string into trimmed non-empty parts.
func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), ",")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// numberString renders a json.Number as its literal text, "" when absent.
func numberString(n json.Number) string {
	return n.String()
}

// numberInt reads a json.Number as an int, 0 when absent or non-integral.
func numberInt(n json.Number) int {
	v, err := n.Int64()
	if err != nil {
		return 0
	}
	return int(v)
}
