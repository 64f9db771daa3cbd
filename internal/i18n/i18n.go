// Package i18n holds the message catalogs for the interactive surface.
// English is the reference catalog; missing keys in other languages fall
// back to it.
package i18n

import "strings"

var messages = map[string]map[string]string{
	"en": {
		"title":           "Pinball Tables",
		"baseApi":         "Base API",
		"emulator":        "Emulator",
		"refresh":         "Refresh",
		"searchPrompt":    "Search a table or ID…",
		"restartGeneric":  "Restart Frontend",
		"restartWithName": "Restart {name}",
		"noTables":        "No tables to display.",
		"loadingTables":   "Loading tables…",

		"thHash":   "#",
		"thTable":  "Table",
		"thID":     "ID",
		"thAction": "Action",

		"playEmu":      "Play / Emulator",
		"playFrontend": "Play / Frontend",
		"mute":         "Mute",
		"unmute":       "Unmute",
		"noHooks":      "No hooks available",

		"techSheet":     "Technical sheet",
		"mName":         "Name",
		"mFile":         "File",
		"mManufacturer": "Manufacturer",
		"mYear":         "Year",
		"mVersion":      "Version",
		"mDesigner":     "Designer",
		"mAuthors":      "Authors",
		"mThemes":       "Themes",
		"mTags":         "Tags",
		"mPlayers":      "Players",
		"mPlays":        "Plays",
		"mLastPlayed":   "Last played",
		"mAdded":        "Added",
		"mModified":     "Modified",
		"mROM":          "ROM",
		"mIPDB":         "IPDB",
		"mLink":         "Link",
		"mLink2":        "Link 2",
		"mLaunchers":    "Launchers",
		"mNotes":        "Notes",
		"mHighscores":   "Highscores",
		"close":         "Close",

		"okLaunched":      "Table launched",
		"okFrontendSent":  "Frontend launch sent",
		"okRestarted":     "Frontend restarted",
		"okMuted":         "Sound muted",
		"okUnmuted":       "Sound on",
		"okHook":          "Hook executed",
		"errPlay":         "Play error",
		"errLaunch":       "Frontend launch error",
		"errRestart":      "Restart error",
		"errMute":         "Mute error",
		"errHook":         "Hook error",
		"errEmulators":    "Error loading emulators",
		"errTables":       "Error loading tables",
		"errHooks":        "Error loading hooks",
		"errDetails":      "Error loading table details",
	},
	"fr": {
		"title":           "Gestion des Tables",
		"baseApi":         "Base API",
		"emulator":        "Émulateur",
		"refresh":         "Actualiser",
		"searchPrompt":    "Rechercher une table ou un ID…",
		"restartGeneric":  "Redémarrer le Frontend",
		"restartWithName": "Redémarrer {name}",
		"noTables":        "Aucune table à afficher.",
		"loadingTables":   "Chargement des tables…",

		"thHash":   "#",
		"thTable":  "Table",
		"thID":     "ID",
		"thAction": "Action",

		"playEmu":      "Jouer / Emulateur",
		"playFrontend": "Jouer / Frontend",
		"mute":         "Muet",
		"unmute":       "Son",
		"noHooks":      "Aucun hook disponible",

		"techSheet":     "Fiche technique",
		"mName":         "Nom",
		"mFile":         "Fichier",
		"mManufacturer": "Fabricant",
		"mYear":         "Année",
		"mVersion":      "Version",
		"mDesigner":     "Concepteur",
		"mAuthors":      "Auteurs",
		"mThemes":       "Thèmes",
		"mTags":         "Tags",
		"mPlayers":      "Joueurs",
		"mPlays":        "Parties jouées",
		"mLastPlayed":   "Dernière partie",
		"mAdded":        "Ajouté le",
		"mModified":     "Modifié le",
		"mROM":          "ROM",
		"mIPDB":         "IPDB",
		"mLink":         "Lien",
		"mLink2":        "Lien 2",
		"mLaunchers":    "Lanceurs",
		"mNotes":        "Notes",
		"mHighscores":   "Meilleurs scores",
		"close":         "Fermer",

		"okLaunched":      "Table lancée",
		"okFrontendSent":  "Lancement via Frontend",
		"okRestarted":     "Frontend redémarré",
		"okMuted":         "Son coupé",
		"okUnmuted":       "Son activé",
		"okHook":          "Hook exécuté",
		"errPlay":         "Erreur Play",
		"errLaunch":       "Erreur Frontend Launch",
		"errRestart":      "Erreur lors du redémarrage",
		"errMute":         "Erreur Mute",
		"errHook":         "Erreur Hook",
		"errEmulators":    "Erreur chargement émulateurs",
		"errTables":       "Erreur chargement tables",
		"errHooks":        "Erreur chargement hooks",
		"errDetails":      "Erreur chargement fiche",
	},
}

// T returns the message for key in lang, falling back to English, then to
// the key itself.
func T(lang, key string) string {
	if dict, ok := messages[lang]; ok {
		if s, ok := dict[key]; ok {
			return s
		}
	}
	if s, ok := messages["en"][key]; ok {
		return s
	}
	return key
}

// Tf returns the message for key with {name}-style placeholders substituted.
func Tf(lang, key string, vars map[string]string) string {
	s := T(lang, key)
	for k, v := range vars {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "fr"}
}
