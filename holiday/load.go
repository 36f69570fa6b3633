package holiday

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// ErrSourceUnavailable is returned when a holiday table cannot be read.
// Classification still works without one, using the rest day alone.
var ErrSourceUnavailable = errors.New("holiday source unavailable")

// Parse decodes a JSON or YAML mapping of date to holiday name.
func Parse(data []byte) (Set, error) {
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return Set{}, fmt.Errorf("failed to parse holidays: %w", err)
	}
	return NewSet(entries)
}

// ReadFile reads a holiday table from path. A missing or unreadable file
// yields an error wrapping ErrSourceUnavailable. Malformed entries are
// reported but the returned Set holds all entries that could be parsed.
func ReadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Set{}, fmt.Errorf("%w: %s does not exist", ErrSourceUnavailable, path)
		}
		return Set{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	set, err := Parse(data)
	if err != nil {
		return set, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Load is like ReadFile but never fails: problems are logged as warnings
// on the context's logger and whatever could be read is returned.
func Load(ctx context.Context, path string) Set {
	logger := ctxlog.Logger(ctx)
	if path == "" {
		logger.Warn("no holiday file configured, only the rest day is marked")
		return Set{}
	}
	set, err := ReadFile(path)
	if err != nil {
		logger.Warn("could not load holidays file", "path", path, "error", err)
	}
	logger.Debug("loaded holidays", "path", path, "count", set.Len())
	return set
}
