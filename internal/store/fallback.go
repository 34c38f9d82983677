package store

import (
	_ "embed"
	"encoding/json"
	"sync"
)

// fallbackData is the static dataset shipped at build time. When aggregation
// fails outright the store serves this instead of an error: stale demo
// content over a broken page, deliberately.
//
//go:embed fallback.json
var fallbackData []byte

var (
	fallbackOnce sync.Once
	fallback     Snapshot
)

// Fallback returns a fresh copy of the bundled dataset.
func Fallback() *Snapshot {
	fallbackOnce.Do(func() {
		// The embedded dataset is validated by tests; a decode error here
		// still yields a total (all-empty) snapshot.
		_ = json.Unmarshal(fallbackData, &fallback)
		fallback.fillDefaults()
	})
	return fallback.Clone()
}
