// flatrepl is a small interactive shell over a flathash.Map[string,string],
// useful for poking at the table's behavior by hand.
//
// Usage:
//
//	flatrepl [--capacity N] [--hasher fasthash|xxhash] [--config path]
//
// Commands (in REPL):
//
//	put <key> <value>   Insert or update an entry
//	get <key>           Retrieve an entry by key
//	del <key>           Delete an entry
//	has <key>           Report whether a key is present
//	len                 Count live entries
//	stats               Show occupancy stats
//	rehash <n>          Force a rehash to at least n slots
//	clear               Remove every entry
//	dump <path>         Atomically snapshot all entries to a JSON file
//	help                Show this help
//	exit / quit / q     Exit
package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// config holds flatrepl's tunables. Capacity and Hasher may come from a
// config file; command-line flags always take precedence.
type config struct {
	Capacity int    `json:"capacity,omitempty"`
	Hasher   string `json:"hasher,omitempty"`
}

func defaultConfig() config {
	return config{Capacity: 0, Hasher: "fasthash"}
}

// defaultConfigPath returns ~/.flatrepl.jsonc, or "" if the home
// directory cannot be determined.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flatrepl.jsonc")
}

// loadConfig reads a hujson (JSON-with-comments) config file, falling
// back silently to defaults when the file does not exist. A present but
// malformed file is reported as an error.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	standard, err := hujson.Standardize(raw)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(standard, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mergeFlags applies flag overrides on top of a loaded config: the
// capacity flag counts as set when it is non-zero, the hasher flag when
// hasherFlagSet reports that it was given.
func mergeFlags(cfg config, capacityFlag int, hasherFlag string, hasherFlagSet bool) config {
	if capacityFlag != 0 {
		cfg.Capacity = capacityFlag
	}
	if hasherFlagSet {
		cfg.Hasher = hasherFlag
	}
	return cfg
}
