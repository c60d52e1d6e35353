package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/vi-snake/persistence"
	"github.com/lixenwraith/vi-snake/score"
)

// Store backends selectable with -store
const (
	storeJSON     = "json"
	storeMemory   = "memory"
	storePostgres = "postgres"
)

var errNoDSN = errors.New("postgres store needs -dsn or DATABASE_URL")

type options struct {
	difficulty *score.Difficulty // nil starts on the menu
	store      string
	dataPath   string
	dsn        string
	spectate   string
	mute       bool
	debug      bool
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("vi-snake", flag.ContinueOnError)

	difficulty := fs.String("difficulty", "", "Start immediately: easy, normal, hard")
	store := fs.String("store", storeJSON, "Persistence backend: json, postgres, memory")
	dataPath := fs.String("data", defaultDataPath(), "JSON store file")
	dsn := fs.String("dsn", "", "Postgres connection string (default $DATABASE_URL)")
	spectate := fs.String("spectate", "", "Spectator websocket listen address, empty disables")
	mute := fs.Bool("mute", false, "Start with audio muted")
	debug := fs.Bool("debug", false, "Write logs to logs/vi-snake.log and show metrics")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		store:    *store,
		dataPath: *dataPath,
		dsn:      *dsn,
		spectate: *spectate,
		mute:     *mute,
		debug:    *debug,
	}
	if *difficulty != "" {
		d, err := score.ParseDifficulty(*difficulty)
		if err != nil {
			return options{}, err
		}
		opts.difficulty = &d
	}
	if opts.dsn == "" {
		opts.dsn = os.Getenv("DATABASE_URL")
	}
	switch opts.store {
	case storeJSON, storeMemory, storePostgres:
	default:
		return options{}, fmt.Errorf("unknown store %q", opts.store)
	}
	return opts, nil
}

func defaultDataPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "vi-snake", "data.json")
	}
	return "vi-snake.json"
}

// openStore creates the selected persistence backend
func openStore(opts options) (persistence.Store, error) {
	switch opts.store {
	case storeMemory:
		return persistence.NewMemoryStore(), nil
	case storePostgres:
		if opts.dsn == "" {
			return nil, errNoDSN
		}
		return persistence.NewPostgresStore(opts.dsn)
	default:
		return persistence.NewJSONStore(opts.dataPath)
	}
}
