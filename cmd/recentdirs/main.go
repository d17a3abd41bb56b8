package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/dastanaron/recentdirs/internal/commands"
	"github.com/dastanaron/recentdirs/internal/config"
	"github.com/dastanaron/recentdirs/internal/desktop"
	"github.com/dastanaron/recentdirs/internal/extract"
	"github.com/dastanaron/recentdirs/internal/history"
	"github.com/dastanaron/recentdirs/internal/launcher"
	"github.com/dastanaron/recentdirs/internal/picker"
	"github.com/dastanaron/recentdirs/internal/store"
	"github.com/dastanaron/recentdirs/internal/ui"
)

func main() {
	storePath := flag.String("store", "", "Path to recently-used store (default: $XDG_DATA_HOME/recently-used.xbel)")
	dbPath := flag.String("db", "", "Path to history database file (default: ~/.recentdirs/history.db)")
	pickerName := flag.String("picker", config.PickerAuto, "Chooser backend: auto, zenity, kdialog or tui")
	historyLimit := flag.Int("history", 0, "Print the N most recently opened folders and exit")
	flag.Parse()

	cfg := config.NewConfig()
	if *storePath != "" {
		cfg.WithStorePath(*storePath)
	}
	if *dbPath != "" {
		cfg.WithDBPath(*dbPath)
	}
	cfg.WithPicker(*pickerName)

	repo := openHistory(cfg.DBPath)
	if repo != nil {
		defer repo.Close()
	}

	// Handle history command
	if *historyLimit > 0 {
		if repo == nil {
			log.Fatalf("History database unavailable")
		}
		historyCmd := commands.NewHistoryCommand(repo)
		if err := historyCmd.Execute(*historyLimit); err != nil {
			log.Fatalf("History failed: %v", err)
		}
		return
	}

	doc, err := store.Load(cfg.StorePath)
	if err != nil {
		log.Fatalf("Cannot read recently used folders: %v", err)
	}

	chooser := newChooser(cfg.Picker)

	for {
		folders, maxLen := extract.Folders(doc)

		choice, err := chooser.Choose(folders, maxLen)
		if errors.Is(err, picker.ErrDismissed) {
			return
		}
		if err != nil {
			log.Fatalf("Chooser failed: %v", err)
		}

		if choice == picker.ClearChoice {
			confirmed, err := chooser.ConfirmClear()
			if err != nil {
				log.Fatalf("Confirmation failed: %v", err)
			}
			if confirmed {
				doc.Clear()
				if err := store.Save(cfg.StorePath, doc); err != nil {
					log.Fatalf("Cannot clear recently used folders: %v", err)
				}
			}
			continue
		}

		path := launcher.ExpandHome(choice)
		launcher.Open(path)
		if repo != nil {
			_ = repo.Record(path)
		}
		return
	}
}

// newChooser picks the dialog backend: an explicit override wins, the
// terminal chooser serves sessions without a display, otherwise the
// desktop environment decides between kdialog and zenity. Dialog backends
// fall back to the terminal chooser when they cannot be spawned.
func newChooser(name string) picker.Chooser {
	switch name {
	case config.PickerZenity:
		return &picker.Fallback{Primary: picker.Zenity{}, Secondary: ui.NewApp()}
	case config.PickerKDialog:
		return &picker.Fallback{Primary: picker.KDialog{}, Secondary: ui.NewApp()}
	case config.PickerTUI:
		return ui.NewApp()
	}

	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return ui.NewApp()
	}
	switch desktop.Detect() {
	case desktop.KDE, desktop.LXQt:
		return &picker.Fallback{Primary: picker.KDialog{}, Secondary: ui.NewApp()}
	default:
		return &picker.Fallback{Primary: picker.Zenity{}, Secondary: ui.NewApp()}
	}
}

// openHistory opens the open-history database, creating its directory on
// first use. History is best-effort: on failure the program runs without it.
func openHistory(dbPath string) *history.SQLiteRepository {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil
	}
	repo, err := history.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil
	}
	return repo
}
