package services

import (
	"cpd/internal/models"
	"cpd/internal/providers"
	"cpd/internal/storage"
	"cpd/internal/storage/interfaces"
	"cpd/internal/structures"
)

type LibraryServiceInterface interface {
	Add(item models.ContentItem) error
	ListAll() []models.ContentItem
	ListByInstructor(instructorID string) []models.ContentItem
	Snapshot(instructorID string) ([]models.ContentItem, uint64, error)
	Get(id string) (models.ContentItem, bool)
	IncrementViews(id string) (models.ContentItem, bool, error)
	DecrementViews(id string) error
	Remove(id string) (bool, error)
	Trim(keep int) (int, error)
	Count() int
	Revision() uint64
}

// LibraryService holds published content, most recent first.
type LibraryService struct {
	items    *storage.Collection[models.ContentItem]
	maxItems int
}

func NewLibraryService(conf *structures.Config, store interfaces.StoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) LibraryServiceInterface {
	return &LibraryService{
		items:    storage.NewCollection[models.ContentItem](storage.BucketLibrary, store, logger, metrics),
		maxItems: orDefault(conf.Library.MaxItems, DefaultLibraryMaxItems),
	}
}

// Add puts a new item at the head of the library and drops the oldest
// entries beyond the cap. An item whose id is already present is updated in
// place and keeps its view count and publication time, which makes repeated
// publication of the same id idempotent.
func (ls *LibraryService) Add(item models.ContentItem) error {
	return ls.items.Update(func(items []models.ContentItem) ([]models.ContentItem, bool) {
		for i := range items {
			if items[i].ID == item.ID {
				item.ViewCount = items[i].ViewCount
				item.PublishedAt = items[i].PublishedAt
				items[i] = item
				return items, true
			}
		}
		items = append([]models.ContentItem{item}, items...)
		if len(items) > ls.maxItems {
			items = items[:ls.maxItems]
		}
		return items, true
	})
}

func (ls *LibraryService) ListAll() []models.ContentItem {
	return ls.items.Load()
}

func (ls *LibraryService) ListByInstructor(instructorID string) []models.ContentItem {
	return byInstructor(ls.items.Load(), instructorID)
}

// Snapshot reads the library once and returns it, filtered by instructor
// unless instructorID is empty, with the checksum of the stored bucket.
func (ls *LibraryService) Snapshot(instructorID string) ([]models.ContentItem, uint64, error) {
	all, sum, err := ls.items.Snapshot()
	if err != nil || instructorID == "" {
		return all, sum, err
	}
	return byInstructor(all, instructorID), sum, nil
}

func byInstructor(all []models.ContentItem, instructorID string) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(all))
	for _, item := range all {
		if item.InstructorID == instructorID {
			out = append(out, item)
		}
	}
	return out
}

func (ls *LibraryService) Get(id string) (models.ContentItem, bool) {
	for _, item := range ls.items.Load() {
		if item.ID == id {
			return item, true
		}
	}
	return models.ContentItem{}, false
}

// IncrementViews adds one view to the item. A missing id is not an error and
// leaves the bucket untouched.
func (ls *LibraryService) IncrementViews(id string) (models.ContentItem, bool, error) {
	var (
		found   bool
		updated models.ContentItem
	)
	err := ls.items.Update(func(items []models.ContentItem) ([]models.ContentItem, bool) {
		for i := range items {
			if items[i].ID == id {
				items[i].ViewCount++
				updated, found = items[i], true
				return items, true
			}
		}
		return items, false
	})
	if err != nil {
		return models.ContentItem{}, false, err
	}
	return updated, found, nil
}

// DecrementViews takes back a view recorded by IncrementViews whose paired
// ledger update failed.
func (ls *LibraryService) DecrementViews(id string) error {
	return ls.items.Update(func(items []models.ContentItem) ([]models.ContentItem, bool) {
		for i := range items {
			if items[i].ID == id && items[i].ViewCount > 0 {
				items[i].ViewCount--
				return items, true
			}
		}
		return items, false
	})
}

func (ls *LibraryService) Remove(id string) (bool, error) {
	removed := false
	err := ls.items.Update(func(items []models.ContentItem) ([]models.ContentItem, bool) {
		out := items[:0]
		for _, item := range items {
			if item.ID == id {
				removed = true
				continue
			}
			out = append(out, item)
		}
		return out, removed
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// Trim keeps the keep most recent items and reports how many were dropped.
func (ls *LibraryService) Trim(keep int) (int, error) {
	dropped := 0
	err := ls.items.Update(func(items []models.ContentItem) ([]models.ContentItem, bool) {
		if keep < 0 || len(items) <= keep {
			return items, false
		}
		dropped = len(items) - keep
		return items[:keep], true
	})
	if err != nil {
		return 0, err
	}
	return dropped, nil
}

func (ls *LibraryService) Count() int {
	return len(ls.items.Load())
}

func (ls *LibraryService) Revision() uint64 {
	return ls.items.Revision()
}
