package file

import (
	"time"

	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driven"
)

// Configuration keys.
const (
	KeyServerBaseURL  = "server.base_url"
	KeyServerTimeout  = "server.timeout_seconds"
	KeyDebounceMillis = "editor.debounce_ms"
	KeyHistoryEnabled = "history.enabled"
	KeyHistoryLimit   = "history.limit"
)

// Default values used when a key is absent from the config file.
const (
	DefaultHistoryLimit = 50
)

// Settings are the typed application settings assembled from a
// ConfigStore. Zero-valued fields mean "use the adapter default".
type Settings struct {
	// ServerBaseURL is the rule-engine base URL.
	ServerBaseURL string

	// ServerTimeout is the per-request timeout.
	ServerTimeout time.Duration

	// Debounce is the editor quiet period before validation dispatch.
	Debounce time.Duration

	// HistoryEnabled controls whether validation runs are recorded.
	HistoryEnabled bool

	// HistoryLimit caps history listings.
	HistoryLimit int
}

// LoadSettings reads typed settings from a config store, applying
// defaults for absent keys.
func LoadSettings(store driven.ConfigStore) Settings {
	s := Settings{
		ServerBaseURL: store.GetString(KeyServerBaseURL),
		HistoryLimit:  DefaultHistoryLimit,
	}

	if secs := store.GetInt(KeyServerTimeout); secs > 0 {
		s.ServerTimeout = time.Duration(secs) * time.Second
	}
	if ms := store.GetInt(KeyDebounceMillis); ms > 0 {
		s.Debounce = time.Duration(ms) * time.Millisecond
	}
	if _, ok := store.Get(KeyHistoryEnabled); ok {
		s.HistoryEnabled = store.GetBool(KeyHistoryEnabled)
	} else {
		s.HistoryEnabled = true
	}
	if limit := store.GetInt(KeyHistoryLimit); limit > 0 {
		s.HistoryLimit = limit
	}

	return s
}
