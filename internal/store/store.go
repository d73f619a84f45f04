// Package store owns the authoritative wishlist collection. Every
// mutation rewrites the whole collection to durable storage, so a
// restart always sees the result of the last completed write.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"wishlog/internal/core"
	wlcsv "wishlog/internal/csv"
)

// ItemsKey is the storage key holding the collection as a JSON array.
const ItemsKey = "wishlog.items"

// DefaultCooldown is the minimum gap between export/import actions.
const DefaultCooldown = 2 * time.Second

// Store holds the in-memory collection and persists it through an
// injected Storage. A single mutex guards the collection; there is at
// most one writer at a time.
type Store struct {
	mu      sync.Mutex
	items   []core.Item
	storage Storage
	clock   Clock

	// cooldown throttles export and import triggers together, the
	// guard exists to stop accidental double submission.
	cooldown *rate.Limiter
}

// New creates a store over the given storage. A nil clock falls back
// to the system clock; a non-positive cooldown falls back to
// DefaultCooldown.
func New(storage Storage, clock Clock, cooldown time.Duration) *Store {
	if clock == nil {
		clock = SystemClock{}
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Store{
		storage:  storage,
		clock:    clock,
		cooldown: rate.NewLimiter(rate.Every(cooldown), 1),
	}
}

// Load reads the persisted collection. A missing key yields an empty
// collection. Corrupt data also yields an empty collection and a
// wrapped ErrCorruptData so the caller can surface a warning; it is
// never fatal.
func (s *Store) Load(ctx context.Context) error {
	blob, ok, err := s.storage.Get(ctx, ItemsKey)
	if err != nil {
		return fmt.Errorf("read collection: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	if !ok || blob == "" {
		return nil
	}

	var items []core.Item
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		slog.WarnContext(ctx, "Persisted collection is unreadable, starting empty", "error", err)
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	s.items = items
	return nil
}

// Create sanitizes the draft, assigns a fresh id and timestamps, and
// prepends the item (newest first is the insertion convention).
func (s *Store) Create(ctx context.Context, d core.Draft) (core.Item, error) {
	now := s.clock.Now().UnixMilli()
	it := s.clean(d)
	if it.Name == "" {
		return core.Item{}, core.ErrEmptyName
	}
	it.ID = uuid.NewString()
	it.CreatedAt = now
	it.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]core.Item{it}, s.items...)
	if err := s.persist(ctx); err != nil {
		return core.Item{}, err
	}
	slog.InfoContext(ctx, "Item created", "item_id", it.ID, "category", it.Category, "price", it.Price)
	return it, nil
}

// Update merges the sanitized draft over the existing item. The id
// and createdAt never change; updatedAt refreshes.
func (s *Store) Update(ctx context.Context, id string, d core.Draft) (core.Item, error) {
	clean := s.clean(d)
	if clean.Name == "" {
		return core.Item{}, core.ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		clean.ID = s.items[i].ID
		clean.CreatedAt = s.items[i].CreatedAt
		clean.UpdatedAt = s.clock.Now().UnixMilli()
		s.items[i] = clean
		if err := s.persist(ctx); err != nil {
			return core.Item{}, err
		}
		slog.InfoContext(ctx, "Item updated", "item_id", id)
		return s.items[i], nil
	}
	return core.Item{}, ErrNotFound
}

// Delete removes the item with id. An unknown id is a no-op, not an
// error.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	removed := false
	for _, it := range s.items {
		if it.ID == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	if err := s.persist(ctx); err != nil {
		return err
	}
	if removed {
		slog.InfoContext(ctx, "Item deleted", "item_id", id)
	}
	return nil
}

// ImportBatch appends pre-validated items to the end of the
// collection and returns the count appended.
func (s *Store) ImportBatch(ctx context.Context, items []core.Item) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, items...)
	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "Items imported", "count", len(items))
	return len(items), nil
}

// ImportCSV decodes CSV text and appends the resulting items.
// Throttled by the shared cooldown; payloads over the size cap are
// rejected before parsing; zero valid rows leave the store unchanged.
func (s *Store) ImportCSV(ctx context.Context, content string) (int, error) {
	if !s.cooldown.AllowN(s.clock.Now(), 1) {
		return 0, ErrRateLimited
	}
	if len(content) > wlcsv.MaxImportBytes {
		return 0, ErrFileTooLarge
	}
	items := wlcsv.Decode(content, s.clock.Now())
	if len(items) == 0 {
		return 0, ErrImportEmpty
	}
	return s.ImportBatch(ctx, items)
}

// ExportCSV renders the collection as CSV. Throttled by the shared
// cooldown.
func (s *Store) ExportCSV(ctx context.Context) (filename, content string, err error) {
	now := s.clock.Now()
	if !s.cooldown.AllowN(now, 1) {
		return "", "", ErrRateLimited
	}
	s.mu.Lock()
	content = wlcsv.Encode(s.items)
	s.mu.Unlock()
	slog.InfoContext(ctx, "Collection exported", "bytes", len(content))
	return wlcsv.ExportFilename(now), content, nil
}

// Items returns a snapshot copy of the collection.
func (s *Store) Items() []core.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Item(nil), s.items...)
}

// View derives the filtered, sorted list plus display stats.
func (s *Store) View(search string, f core.Filters, sortBy core.SortField) ([]core.Item, core.ViewStats) {
	return core.DeriveView(s.Items(), search, f, sortBy)
}

// Analytics aggregates the full, unfiltered collection.
func (s *Store) Analytics() core.Summary {
	return core.Aggregate(s.Items())
}

// clean applies the sanitizer, enum defaulting and price clamping to
// a draft. URL fields get scheme repair (form path), then must pass
// the allow check or are cleared.
func (s *Store) clean(d core.Draft) core.Item {
	link := core.NormalizeURL(d.Link)
	if !core.IsAllowedURL(link) {
		link = ""
	}
	image := core.NormalizeURL(d.ImageURL)
	if !core.IsAllowedURL(image) {
		image = ""
	}
	return core.Item{
		Name:     core.SanitizeText(strings.TrimSpace(d.Name), core.NameMax),
		Category: core.CategoryOrDefault(d.Category),
		Price:    core.ClampPrice(d.Price),
		Priority: core.PriorityOrDefault(d.Priority),
		Status:   core.StatusOrDefault(d.Status),
		Platform: core.SanitizeText(d.Platform, core.PlatformMax),
		Notes:    core.SanitizeText(d.Notes, core.NotesMax),
		Link:     core.SanitizeText(link, core.URLMax),
		ImageURL: core.SanitizeText(image, core.URLMax),
	}
}

// persist rewrites the whole collection. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	blob, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := s.storage.Set(ctx, ItemsKey, string(blob)); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	return nil
}
