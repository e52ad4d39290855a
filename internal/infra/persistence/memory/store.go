// Package memory contains the in-memory entity store. It owns the four
// business collections plus the chat history for the lifetime of the process
// and snapshots them as JSON into a durable key-value slot. The slot only
// ever holds serialised copies; the in-memory state stays authoritative.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"mandoob/config"
	"mandoob/internal/domain/entity"
	"mandoob/internal/domain/repository"
	"mandoob/internal/errors"
	"mandoob/internal/infra/seed"
)

// ID prefixes for the three sequentially numbered collections.
const (
	invoicePrefix = "INV"
	driverPrefix  = "DRV"
	stockPrefix   = "STK"
)

// Slot key suffixes. Every key is namespaced with the configured prefix,
// e.g. "mandoob:invoices".
const (
	keyInvoices = "invoices"
	keyArchived = "archived_invoices"
	keyDrivers  = "drivers"
	keyStock    = "stock"
	keyChat     = "chat_history"
	dateLayout  = "2006-01-02"
)

// Store is the single source of truth for invoices, drivers, stock items and
// the chat history. One instance is constructed per session and handed to
// every consumer; there are no package-level collections.
type Store struct {
	mu       sync.RWMutex
	invoices []*entity.Invoice
	archived []*entity.Invoice
	drivers  []*entity.Driver
	stock    []*entity.StockItem
	chat     []entity.ChatTurn

	slot   repository.Slot
	seed   *seed.Data
	cfg    *config.StoreConfig
	logger *slog.Logger
	now    func() time.Time
}

// New creates an empty store. Call Restore before serving traffic.
// seedData may be nil; it is only consulted when the slot holds no snapshot.
func New(cfg *config.StoreConfig, slot repository.Slot, seedData *seed.Data, logger *slog.Logger) *Store {
	return &Store{
		slot:   slot,
		seed:   seedData,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Store) key(suffix string) string {
	return s.cfg.KeyPrefix + ":" + suffix
}

// ---- invoices ----

// CreateInvoice assigns a fresh sequential ID and defaults, stores the invoice
// and returns it. Any caller-supplied ID is overwritten. The sequence number
// counts active plus archived invoices so archival never recycles an ID.
func (s *Store) CreateInvoice(ctx context.Context, invoice *entity.Invoice) (*entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	invoice.ID = fmt.Sprintf("%s%03d", invoicePrefix, len(s.invoices)+len(s.archived)+1)
	if !invoice.Status.Valid() {
		invoice.Status = entity.StatusPendingDelivery
	}
	if invoice.Date == "" {
		invoice.Date = now.Format(dateLayout)
	}
	invoice.UpdatedAt = now
	invoice.ArchivedAt = time.Time{}

	s.invoices = append(s.invoices, invoice)
	s.persistLocked(ctx, keyInvoices)

	return invoice, nil
}

// ListInvoices returns all active invoices in insertion order.
func (s *Store) ListInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Invoice, len(s.invoices))
	copy(out, s.invoices)

	return out, nil
}

// ListArchivedInvoices returns all archived invoices in archival order.
func (s *Store) ListArchivedInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Invoice, len(s.archived))
	copy(out, s.archived)

	return out, nil
}

// FindInvoiceByID retrieves an active invoice by ID.
func (s *Store) FindInvoiceByID(ctx context.Context, id string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}

	return nil, repository.ErrInvoiceNotFound
}

// FindArchivedInvoiceByID retrieves an archived invoice by ID.
func (s *Store) FindArchivedInvoiceByID(ctx context.Context, id string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.archived {
		if inv.ID == id {
			return inv, nil
		}
	}

	return nil, repository.ErrInvoiceNotFound
}

// UpdateInvoiceStatus mutates the status and update timestamp in place.
// A lookup miss leaves every collection untouched.
func (s *Store) UpdateInvoiceStatus(ctx context.Context, id string, status entity.InvoiceStatus) (*entity.Invoice, error) {
	if !status.Valid() {
		return nil, repository.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, inv := range s.invoices {
		if inv.ID != id {
			continue
		}
		inv.Status = status
		inv.UpdatedAt = s.now()
		s.persistLocked(ctx, keyInvoices)

		return inv, nil
	}

	return nil, repository.ErrInvoiceNotFound
}

// ArchiveInvoice moves an invoice from the active to the archived collection,
// stamping the archival timestamp. The record never exists in both.
func (s *Store) ArchiveInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, inv := range s.invoices {
		if inv.ID != id {
			continue
		}
		s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
		inv.ArchivedAt = s.now()
		s.archived = append(s.archived, inv)
		s.persistLocked(ctx, keyInvoices, keyArchived)

		return inv, nil
	}

	return nil, repository.ErrInvoiceNotFound
}

// SearchInvoices matches the query case-insensitively against customer name,
// ID, phone and address. Order is preserved and nothing is mutated.
func (s *Store) SearchInvoices(ctx context.Context, query string) ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	matches := make([]*entity.Invoice, 0)
	for _, inv := range s.invoices {
		if strings.Contains(strings.ToLower(inv.CustomerName), needle) ||
			strings.Contains(strings.ToLower(inv.ID), needle) ||
			strings.Contains(strings.ToLower(inv.Phone), needle) ||
			strings.Contains(strings.ToLower(inv.Address), needle) {
			matches = append(matches, inv)
		}
	}

	return matches, nil
}

// FilterInvoicesByStatus returns active invoices with the given status.
func (s *Store) FilterInvoicesByStatus(ctx context.Context, status entity.InvoiceStatus) ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]*entity.Invoice, 0)
	for _, inv := range s.invoices {
		if inv.Status == status {
			matches = append(matches, inv)
		}
	}

	return matches, nil
}

// FilterInvoicesByDriver returns active invoices assigned to the driver.
func (s *Store) FilterInvoicesByDriver(ctx context.Context, driverID string) ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]*entity.Invoice, 0)
	for _, inv := range s.invoices {
		if inv.DriverID == driverID {
			matches = append(matches, inv)
		}
	}

	return matches, nil
}

// DelayedInvoices evaluates the staleness window against wall-clock time at
// call time, never a cached value.
func (s *Store) DelayedInvoices(ctx context.Context) ([]*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.delayedLocked(), nil
}

func (s *Store) delayedLocked() []*entity.Invoice {
	now := s.now()
	matches := make([]*entity.Invoice, 0)
	for _, inv := range s.invoices {
		if inv.Delayed(now, s.cfg.DelayedAfter) {
			matches = append(matches, inv)
		}
	}

	return matches
}

// ---- drivers ----

// CreateDriver assigns a fresh sequential ID, zeroes the counters and stores
// the driver.
func (s *Store) CreateDriver(ctx context.Context, driver *entity.Driver) (*entity.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	driver.ID = fmt.Sprintf("%s%03d", driverPrefix, len(s.drivers)+1)
	if !driver.Availability.Valid() {
		driver.Availability = entity.DriverAvailable
	}
	driver.Deliveries = 0
	driver.Returns = 0

	s.drivers = append(s.drivers, driver)
	s.persistLocked(ctx, keyDrivers)

	return driver, nil
}

// ListDrivers returns all drivers in insertion order.
func (s *Store) ListDrivers(ctx context.Context) ([]*entity.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Driver, len(s.drivers))
	copy(out, s.drivers)

	return out, nil
}

// FindDriverByID retrieves a driver by ID.
func (s *Store) FindDriverByID(ctx context.Context, id string) (*entity.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.drivers {
		if d.ID == id {
			return d, nil
		}
	}

	return nil, repository.ErrDriverNotFound
}

// UpdateDriverAvailability flips the availability status.
func (s *Store) UpdateDriverAvailability(ctx context.Context, id string, availability entity.DriverAvailability) (*entity.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.drivers {
		if d.ID != id {
			continue
		}
		d.Availability = availability
		s.persistLocked(ctx, keyDrivers)

		return d, nil
	}

	return nil, repository.ErrDriverNotFound
}

// IncrementDriverDeliveries bumps the cumulative delivery counter.
func (s *Store) IncrementDriverDeliveries(ctx context.Context, id string) error {
	return s.incrementDriverCounter(ctx, id, func(d *entity.Driver) { d.Deliveries++ })
}

// IncrementDriverReturns bumps the cumulative return counter.
func (s *Store) IncrementDriverReturns(ctx context.Context, id string) error {
	return s.incrementDriverCounter(ctx, id, func(d *entity.Driver) { d.Returns++ })
}

func (s *Store) incrementDriverCounter(ctx context.Context, id string, bump func(*entity.Driver)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.drivers {
		if d.ID != id {
			continue
		}
		bump(d)
		s.persistLocked(ctx, keyDrivers)

		return nil
	}

	return repository.ErrDriverNotFound
}

// ---- stock ----

// CreateStockItem assigns a fresh sequential ID and stores the item.
func (s *Store) CreateStockItem(ctx context.Context, item *entity.StockItem) (*entity.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = fmt.Sprintf("%s%03d", stockPrefix, len(s.stock)+1)

	s.stock = append(s.stock, item)
	s.persistLocked(ctx, keyStock)

	return item, nil
}

// ListStockItems returns all stock items in insertion order.
func (s *Store) ListStockItems(ctx context.Context) ([]*entity.StockItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.StockItem, len(s.stock))
	copy(out, s.stock)

	return out, nil
}

// FindStockItemByID retrieves a stock item by ID.
func (s *Store) FindStockItemByID(ctx context.Context, id string) (*entity.StockItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.stock {
		if item.ID == id {
			return item, nil
		}
	}

	return nil, repository.ErrStockItemNotFound
}

// UpdateStockQuantity sets the on-hand quantity of an item.
func (s *Store) UpdateStockQuantity(ctx context.Context, id string, quantity int) (*entity.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.stock {
		if item.ID != id {
			continue
		}
		item.Quantity = quantity
		s.persistLocked(ctx, keyStock)

		return item, nil
	}

	return nil, repository.ErrStockItemNotFound
}

// LowStockItems returns items below their minimum threshold. Low stock is a
// derived predicate, recomputed on every call.
func (s *Store) LowStockItems(ctx context.Context) ([]*entity.StockItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]*entity.StockItem, 0)
	for _, item := range s.stock {
		if item.LowStock() {
			matches = append(matches, item)
		}
	}

	return matches, nil
}

// ---- chat history ----

// AppendExchange records a question/answer pair, truncates the history to the
// configured cap (oldest first) and persists it as a whole.
func (s *Store) AppendExchange(ctx context.Context, question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.chat = append(s.chat,
		entity.ChatTurn{Role: entity.RoleUser, Content: question, Timestamp: now},
		entity.ChatTurn{Role: entity.RoleAssistant, Content: answer, Timestamp: now},
	)
	if limit := s.cfg.ChatHistoryLimit; len(s.chat) > limit {
		s.chat = s.chat[len(s.chat)-limit:]
	}
	s.persistLocked(ctx, keyChat)

	return nil
}

// ChatHistory returns the full retained history, oldest first.
func (s *Store) ChatHistory(ctx context.Context) ([]entity.ChatTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.ChatTurn, len(s.chat))
	copy(out, s.chat)

	return out, nil
}

// RecentChatTurns returns at most n of the newest turns, oldest first.
func (s *Store) RecentChatTurns(ctx context.Context, n int) ([]entity.ChatTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := len(s.chat) - n
	if n <= 0 || start < 0 {
		start = 0
	}
	out := make([]entity.ChatTurn, len(s.chat)-start)
	copy(out, s.chat[start:])

	return out, nil
}

// ClearChatHistory drops all retained turns and removes the persisted copy.
func (s *Store) ClearChatHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chat = nil
	if err := s.slot.Delete(ctx, s.key(keyChat)); err != nil && !errors.Is(err, repository.ErrKeyNotFound) {
		s.logger.Error("failed to delete chat history from slot", slog.Any("error", err))
	}

	return nil
}

// ---- statistics ----

// Statistics recomputes the snapshot from current collection state on every
// call; there are no incremental counters to go stale.
func (s *Store) Statistics(ctx context.Context) (*entity.Statistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &entity.Statistics{
		TotalInvoices:    len(s.invoices),
		ArchivedInvoices: len(s.archived),
		Drivers:          len(s.drivers),
		StockItems:       len(s.stock),
		DelayedInvoices:  len(s.delayedLocked()),
	}
	for _, inv := range s.invoices {
		switch inv.Status {
		case entity.StatusPendingDelivery:
			stats.PendingDelivery++
		case entity.StatusDelivered:
			stats.Delivered++
		case entity.StatusReturned:
			stats.Returned++
		}
	}
	for _, item := range s.stock {
		if item.LowStock() {
			stats.LowStockItems++
		}
	}

	return stats, nil
}

// ---- persistence round-trip ----

// Persist snapshots every collection. Slot faults are logged and swallowed:
// the in-memory state stays correct and the next mutation or the periodic
// ticker retries the write.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.persistLocked(ctx, keyInvoices, keyArchived, keyDrivers, keyStock, keyChat)

	return nil
}

// persistLocked writes the named collections. Callers hold the mutex; the
// mutation has fully applied in memory before any persistence attempt.
func (s *Store) persistLocked(ctx context.Context, keys ...string) {
	for _, k := range keys {
		var value any
		switch k {
		case keyInvoices:
			value = s.invoices
		case keyArchived:
			value = s.archived
		case keyDrivers:
			value = s.drivers
		case keyStock:
			value = s.stock
		case keyChat:
			value = s.chat
		}

		encoded, err := json.Marshal(value)
		if err != nil {
			s.logger.Error("failed to encode snapshot", slog.String("key", k), slog.Any("error", err))

			continue
		}
		if err := s.slot.Set(ctx, s.key(k), string(encoded)); err != nil {
			s.logger.Error("failed to write snapshot", slog.String("key", k), slog.Any("error", err))
		}
	}
}

// Restore rebuilds the collections from the slot. A missing key is not a
// fault; a corrupt value is logged and replaced by the default. When the slot
// holds no business snapshot at all, seed data (if configured) is loaded
// instead. Restore never fails the application start.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := 0
	found += restoreCollection(ctx, s, keyInvoices, &s.invoices)
	found += restoreCollection(ctx, s, keyArchived, &s.archived)
	found += restoreCollection(ctx, s, keyDrivers, &s.drivers)
	found += restoreCollection(ctx, s, keyStock, &s.stock)
	restoreCollection(ctx, s, keyChat, &s.chat)

	if found == 0 && s.seed != nil {
		s.invoices = s.seed.Invoices
		s.drivers = s.seed.Drivers
		s.stock = s.seed.Stock
		s.logger.Info("slot empty, loaded seed data",
			slog.Int("invoices", len(s.invoices)),
			slog.Int("drivers", len(s.drivers)),
			slog.Int("stock", len(s.stock)),
		)
	}

	return nil
}

// restoreCollection loads one key into dst. Returns 1 when a snapshot was
// found and decoded, 0 otherwise.
func restoreCollection[T any](ctx context.Context, s *Store, suffix string, dst *T) int {
	raw, err := s.slot.Get(ctx, s.key(suffix))
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.logger.Warn("failed to read snapshot, using defaults",
				slog.String("key", suffix), slog.Any("error", err))
		}

		return 0
	}

	var decoded T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		s.logger.Warn("corrupt snapshot, using defaults",
			slog.String("key", suffix), slog.Any("error", err))

		return 0
	}
	*dst = decoded

	return 1
}
