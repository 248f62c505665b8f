// Package importer handles user-initiated CSV imports from local files.
// Unlike background sync, an import that yields nothing is an error the
// user should see, with guidance about the expected column layout.
package importer

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"rcampos/grana/internal/categorizer"
	"rcampos/grana/internal/csvparse"
	"rcampos/grana/internal/dateutils"
	"rcampos/grana/internal/models"
	"rcampos/grana/internal/normalize"
	"rcampos/grana/internal/parsererror"
	"rcampos/grana/internal/repository"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Importer ingests local CSV files into the repository.
type Importer struct {
	repo *repository.Repository
	cat  *categorizer.Categorizer
}

// New creates an importer. cat may be nil.
func New(repo *repository.Repository, cat *categorizer.Categorizer) *Importer {
	return &Importer{repo: repo, cat: cat}
}

// ImportFile parses a CSV file as the given origin and stores the result
// grouped by period. File imports use the label-sniffing column
// strategy, so exports with arbitrary header layouts still load.
//
// Each affected period's fetched set is replaced with the imported
// batch; importing a file is the offline equivalent of syncing that
// origin for those months.
func (im *Importer) ImportFile(path string, origin models.Origin) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("error reading import file: %w", err)
	}

	return im.ImportText(string(data), origin, path)
}

// ImportText runs the import pipeline over raw CSV text. source names
// the input in the empty-result error ("upload", a file path, a URL).
func (im *Importer) ImportText(text string, origin models.Origin, source string) (int, error) {
	rows := csvparse.Parse(text, csvparse.Options{Strategy: csvparse.LabelSniffing})
	txs := normalize.Rows(rows, origin)
	if len(txs) == 0 {
		return 0, &parsererror.EmptyImportError{Source: source}
	}
	im.cat.Apply(txs)

	byPeriod := make(map[string][]models.Transaction)
	for _, tx := range txs {
		period, err := dateutils.PeriodOf(tx.Date)
		if err != nil {
			log.WithField("date", tx.Date).Warn("Skipping row with underivable period")
			continue
		}
		byPeriod[period] = append(byPeriod[period], tx)
	}

	imported := 0
	for period, periodTxs := range byPeriod {
		if err := im.repo.ReplaceFetchedForPeriod(period, periodTxs); err != nil {
			return imported, err
		}
		imported += len(periodTxs)
	}

	log.WithFields(logrus.Fields{
		"source":  source,
		"periods": len(byPeriod),
		"count":   imported,
	}).Info("Imported transactions")
	return imported, nil
}
