// Package repository owns the partitioned transaction state: remote
// sheet caches and manually entered records keyed by period, plus the
// soft-ignore set. It is the sole mutator of that state; every mutation
// is a whole-value replacement persisted through the injected store.
package repository

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"rcampos/grana/internal/dateutils"
	"rcampos/grana/internal/models"
	"rcampos/grana/internal/store"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Repository holds fetched and manual transactions partitioned by
// YYYY-MM period. All methods are safe for concurrent use; a sync pass
// replaces a period's fetched set in one step, so readers never observe
// a partially written period.
type Repository struct {
	mu      sync.RWMutex
	kv      store.KV
	fetched map[string][]models.Transaction
	manual  map[string][]models.Transaction
	ignored map[string]bool
}

// New creates a repository backed by kv and loads any persisted state.
func New(kv store.KV) (*Repository, error) {
	r := &Repository{
		kv:      kv,
		fetched: make(map[string][]models.Transaction),
		manual:  make(map[string][]models.Transaction),
		ignored: make(map[string]bool),
	}

	if err := kv.Load(store.KeySheetCache, &r.fetched); err != nil {
		return nil, fmt.Errorf("error loading sheet cache: %w", err)
	}
	if err := kv.Load(store.KeyManualTxs, &r.manual); err != nil {
		return nil, fmt.Errorf("error loading manual transactions: %w", err)
	}

	var ignoredIDs []string
	if err := kv.Load(store.KeyIgnoredIDs, &ignoredIDs); err != nil {
		return nil, fmt.Errorf("error loading ignore list: %w", err)
	}
	for _, id := range ignoredIDs {
		r.ignored[id] = true
	}

	return r, nil
}

// ReplaceFetchedForPeriod atomically overwrites the fetched set for one
// period. Manual transactions and other periods are untouched; calling
// twice leaves only the second batch present.
func (r *Repository) ReplaceFetchedForPeriod(period string, txs []models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fetched[period] = txs
	log.WithFields(logrus.Fields{
		"period": period,
		"count":  len(txs),
	}).Info("Replaced fetched transactions for period")

	return r.kv.Save(store.KeySheetCache, r.fetched)
}

// UpsertManual adds or edits a manual transaction. The owning period is
// derived from the transaction's date at call time, so editing the date
// relocates the record to the new period's bucket. An in-place edit
// preserves the record's position. A date that cannot be split into
// day/month/year rejects the whole operation.
func (r *Repository) UpsertManual(tx models.Transaction) error {
	period, err := dateutils.PeriodOf(tx.Date)
	if err != nil {
		return fmt.Errorf("cannot derive period: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	edited := r.replaceManualLocked(period, tx)
	if !edited {
		r.manual[period] = append(r.manual[period], tx)
	}

	log.WithFields(logrus.Fields{
		"id":     tx.ID,
		"period": period,
		"edited": edited,
	}).Info("Upserted manual transaction")

	return r.kv.Save(store.KeyManualTxs, r.manual)
}

// replaceManualLocked swaps tx in place when its id already lives in the
// target period. When the id lives in a different period the stale copy
// is removed and false is returned so the caller appends to the new
// bucket. Returns true only on an in-place replacement.
func (r *Repository) replaceManualLocked(period string, tx models.Transaction) bool {
	for p, txs := range r.manual {
		for i, existing := range txs {
			if existing.ID != tx.ID {
				continue
			}
			if p == period {
				txs[i] = tx
				return true
			}
			r.manual[p] = append(txs[:i:i], txs[i+1:]...)
			return false
		}
	}
	return false
}

// SetIgnored toggles membership of an id in the ignore set. Records are
// never physically removed; ignoring is reversible and idempotent.
func (r *Repository) SetIgnored(id string, ignored bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ignored {
		r.ignored[id] = true
	} else {
		delete(r.ignored, id)
	}

	return r.kv.Save(store.KeyIgnoredIDs, r.ignoredIDsLocked())
}

// IsIgnored reports whether an id is currently soft-ignored.
func (r *Repository) IsIgnored(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ignored[id]
}

// IgnoredIDs returns the ignore set as a sorted slice.
func (r *Repository) IgnoredIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ignoredIDsLocked()
}

func (r *Repository) ignoredIDsLocked() []string {
	ids := make([]string, 0, len(r.ignored))
	for id := range r.ignored {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Combined returns the union of fetched and manual transactions for the
// given periods, sorted descending by date. Rows whose date fails to
// parse sort as the earliest possible value; they stay visible at the
// bottom of the listing instead of silently disappearing.
func (r *Repository) Combined(periods []string) []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var combined []models.Transaction
	for _, period := range periods {
		combined = append(combined, r.fetched[period]...)
		combined = append(combined, r.manual[period]...)
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return dateutils.SortKey(combined[i].Date).After(dateutils.SortKey(combined[j].Date))
	})
	return combined
}

// Active is Combined minus soft-ignored transactions.
func (r *Repository) Active(periods []string) []models.Transaction {
	combined := r.Combined(periods)

	r.mu.RLock()
	defer r.mu.RUnlock()

	active := combined[:0]
	for _, tx := range combined {
		if !r.ignored[tx.ID] {
			active = append(active, tx)
		}
	}
	return active
}

// FindManual looks up a manual transaction by id across all periods.
func (r *Repository) FindManual(id string) (models.Transaction, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, txs := range r.manual {
		for _, tx := range txs {
			if tx.ID == id {
				return tx, true
			}
		}
	}
	return models.Transaction{}, false
}
