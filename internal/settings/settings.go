// Package settings persists user-level dashboard state: the ordered
// list of selected periods and the per-period origin to URL mapping.
package settings

import (
	"fmt"
	"strings"

	"rcampos/grana/internal/dateutils"
	"rcampos/grana/internal/models"
	"rcampos/grana/internal/store"
)

// SourceLinks maps each fetchable origin to its spreadsheet export URL
// for one period. Empty string means the origin is not configured.
type SourceLinks map[models.Origin]string

// Settings is the persisted user configuration.
type Settings struct {
	kv store.KV

	SelectedPeriods []string
	Sources         map[string]SourceLinks
}

// Load reads settings from the store. A fresh store yields the current
// month as the only selected period.
func Load(kv store.KV) (*Settings, error) {
	s := &Settings{
		kv:      kv,
		Sources: make(map[string]SourceLinks),
	}

	if err := kv.Load(store.KeySelectedPeriods, &s.SelectedPeriods); err != nil {
		return nil, fmt.Errorf("error loading selected periods: %w", err)
	}
	if err := kv.Load(store.KeyPeriodSources, &s.Sources); err != nil {
		return nil, fmt.Errorf("error loading source links: %w", err)
	}

	if len(s.SelectedPeriods) == 0 {
		s.SelectedPeriods = []string{dateutils.CurrentPeriod()}
	}
	if s.Sources == nil {
		s.Sources = make(map[string]SourceLinks)
	}
	return s, nil
}

// SelectPeriods replaces the ordered selected-period list.
func (s *Settings) SelectPeriods(periods []string) error {
	for _, p := range periods {
		if !dateutils.ValidPeriod(p) {
			return fmt.Errorf("invalid period key %q, want YYYY-MM", p)
		}
	}
	s.SelectedPeriods = periods
	return s.kv.Save(store.KeySelectedPeriods, s.SelectedPeriods)
}

// SetSourceURL configures the fetch URL of one origin for one period.
// The manual origin never has a URL; non-http URLs are rejected up
// front rather than failing at sync time. An empty URL clears the link.
func (s *Settings) SetSourceURL(period string, origin models.Origin, url string) error {
	if !dateutils.ValidPeriod(period) {
		return fmt.Errorf("invalid period key %q, want YYYY-MM", period)
	}
	if !origin.IsFetchable() {
		return fmt.Errorf("origin %s cannot have a source link", origin)
	}
	if url != "" && !strings.HasPrefix(url, "http") {
		return fmt.Errorf("source link must be an http(s) URL, got %q", url)
	}

	links := s.Sources[period]
	if links == nil {
		links = make(SourceLinks)
		s.Sources[period] = links
	}
	if url == "" {
		delete(links, origin)
	} else {
		links[origin] = url
	}

	return s.kv.Save(store.KeyPeriodSources, s.Sources)
}

// SourceURLs returns the configured links for one period, skipping
// blanks. Origins appear in models.AllOrigins order.
func (s *Settings) SourceURLs(period string) []ConfiguredSource {
	links := s.Sources[period]
	if len(links) == 0 {
		return nil
	}

	var out []ConfiguredSource
	for _, origin := range models.AllOrigins {
		url := links[origin]
		if url == "" || !origin.IsFetchable() {
			continue
		}
		out = append(out, ConfiguredSource{Origin: origin, URL: url})
	}
	return out
}

// ConfiguredSource pairs an origin with its fetch URL.
type ConfiguredSource struct {
	Origin models.Origin
	URL    string
}
