// Package holidayapi downloads official Iranian holidays for a Jalali year
// and caches them on disk.
package holidayapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/schollz/progressbar/v3"

	"github.com/Aria-Ghojavand/shamsy-picker/jalali"
)

const DefaultBaseURL = "https://pnldev.com/api/calender"

type calendarResponse struct {
	Status bool                 `json:"status"`
	Result map[string]monthData `json:"result"`
}

type monthData map[string]dayData

type dayData struct {
	Solar   dateInfo `json:"solar"`
	Holiday bool     `json:"holiday"`
	Event   []string `json:"event"`
}

type dateInfo struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Client fetches holidays. The zero value uses DefaultBaseURL,
// http.DefaultClient and no cache.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	// CacheDir holds one holidays_<year>.json file per year.
	CacheDir string
	// Progress, if set, receives a spinner while a download is running.
	Progress io.Writer
}

// DefaultCacheDir returns the per-user cache directory for holiday files.
func DefaultCacheDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get cache directory: %w", err)
	}
	return filepath.Join(dir, "shamsy_calendar"), nil
}

func (c *Client) cacheFile(year int) string {
	if c.CacheDir == "" {
		return ""
	}
	return filepath.Join(c.CacheDir, fmt.Sprintf("holidays_%d.json", year))
}

// Fetch returns the holidays of a Jalali year keyed "Y/M/D".
func (c *Client) Fetch(ctx context.Context, year int) (map[string]string, error) {
	logger := ctxlog.Logger(ctx)
	cacheFile := c.cacheFile(year)
	if cacheFile != "" {
		if cached, err := readFromCache(cacheFile); err == nil {
			logger.Debug("using cached holidays", "year", year, "file", cacheFile)
			return cached, nil
		}
	}

	if c.Progress != nil {
		bar := progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(c.Progress),
			progressbar.OptionSetDescription("Fetching holidays..."),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetWidth(20),
		)
		defer bar.Close()
	}

	holidays, err := c.download(ctx, year)
	if err != nil {
		return nil, err
	}
	if cacheFile != "" {
		if err := saveToCache(cacheFile, holidays); err != nil {
			logger.Warn("failed to save holidays to cache", "file", cacheFile, "error", err)
		}
	}
	return holidays, nil
}

// FetchYears merges the holidays of several years. Years that fail are
// reported in the error while the others are still returned.
func (c *Client) FetchYears(ctx context.Context, years ...int) (map[string]string, error) {
	all := map[string]string{}
	errs := &errors.M{}
	for _, y := range years {
		h, err := c.Fetch(ctx, y)
		if err != nil {
			errs.Append(fmt.Errorf("year %d: %w", y, err))
			continue
		}
		for k, v := range h {
			all[k] = v
		}
	}
	return all, errs.Err()
}

func (c *Client) download(ctx context.Context, year int) (map[string]string, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid holiday url %q: %w", base, err)
	}
	q := u.Query()
	q.Set("year", strconv.Itoa(year))
	q.Set("holiday", "true")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	var calendar calendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&calendar); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if !calendar.Status {
		return nil, fmt.Errorf("API returned status false")
	}
	holidays := make(map[string]string)
	for _, days := range calendar.Result {
		for _, day := range days {
			if !day.Holiday {
				continue
			}
			key := jalali.Date{Year: day.Solar.Year, Month: day.Solar.Month, Day: day.Solar.Day}.String()
			if len(day.Event) > 0 {
				holidays[key] = strings.Join(day.Event, "; ")
			} else {
				holidays[key] = "Holiday"
			}
		}
	}
	return holidays, nil
}

func readFromCache(cacheFile string) (map[string]string, error) {
	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, err
	}
	var holidays map[string]string
	if err := json.Unmarshal(data, &holidays); err != nil {
		return nil, err
	}
	return holidays, nil
}

func saveToCache(cacheFile string, holidays map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(cacheFile), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	data, err := json.Marshal(holidays)
	if err != nil {
		return fmt.Errorf("failed to marshal holidays to JSON: %w", err)
	}
	if err := os.WriteFile(cacheFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}
