// Package seed loads optional JSON seed documents used to populate the entity
// store when the durable slot holds no snapshot yet.
package seed

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"mandoob/internal/domain/entity"
)

// Seed document file names, looked up inside the configured directory.
const (
	invoicesFile = "invoices.json"
	driversFile  = "drivers.json"
	stockFile    = "stock.json"
)

// Data carries the decoded seed collections. Absent or unreadable documents
// leave their collection empty; seeding is always best-effort.
type Data struct {
	Invoices []*entity.Invoice
	Drivers  []*entity.Driver
	Stock    []*entity.StockItem
}

// Load reads the three seed documents from dir. A missing directory or file
// is not an error; a malformed document is logged and skipped.
func Load(dir string, logger *slog.Logger) *Data {
	if dir == "" {
		return nil
	}

	data := &Data{}
	loadDocument(filepath.Join(dir, invoicesFile), &data.Invoices, logger)
	loadDocument(filepath.Join(dir, driversFile), &data.Drivers, logger)
	loadDocument(filepath.Join(dir, stockFile), &data.Stock, logger)

	return data
}

func loadDocument[T any](path string, dst *T, logger *slog.Logger) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read seed document", slog.String("path", path), slog.Any("error", err))
		}

		return
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn("malformed seed document, skipping", slog.String("path", path), slog.Any("error", err))
	}
}
