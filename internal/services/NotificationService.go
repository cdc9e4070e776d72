package services

import (
	"time"

	"cpd/internal/models"
	"cpd/internal/providers"
	"cpd/internal/storage"
	"cpd/internal/storage/interfaces"
	"cpd/internal/structures"
)

type NotificationServiceInterface interface {
	Append(stream models.Stream, n models.Notification) error
	ListAll(stream models.Stream) ([]models.Notification, error)
	ListUnread(stream models.Stream) ([]models.Notification, error)
	UnreadCount(stream models.Stream) (int, error)
	MarkRead(stream models.Stream, id string) (bool, error)
	MarkAllRead(stream models.Stream) (int, error)
	Delete(stream models.Stream, id string) (bool, error)
	Prune(stream models.Stream, olderThan time.Time) (int, error)
	Revision(stream models.Stream) uint64
}

type notificationStream struct {
	records *storage.Collection[models.Notification]
	max     int
}

// NotificationService keeps the audience and admin streams, newest first,
// each bounded at write time.
type NotificationService struct {
	streams map[models.Stream]*notificationStream
	clock   func() time.Time
}

func NewNotificationService(conf *structures.Config, store interfaces.StoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) NotificationServiceInterface {
	newStream := func(s models.Stream, max int) *notificationStream {
		return &notificationStream{
			records: storage.NewCollection[models.Notification](s.Bucket(), store, logger, metrics),
			max:     max,
		}
	}
	return &NotificationService{
		streams: map[models.Stream]*notificationStream{
			models.StreamAudience: newStream(models.StreamAudience, orDefault(conf.Notifications.AudienceMax, DefaultAudienceMax)),
			models.StreamAdmin:    newStream(models.StreamAdmin, orDefault(conf.Notifications.AdminMax, DefaultAdminMax)),
		},
		clock: time.Now,
	}
}

func (ns *NotificationService) stream(s models.Stream) (*notificationStream, error) {
	st, ok := ns.streams[s]
	if !ok {
		_, err := models.ParseStream(string(s))
		return nil, err
	}
	return st, nil
}

func (ns *NotificationService) Append(s models.Stream, n models.Notification) error {
	st, err := ns.stream(s)
	if err != nil {
		return err
	}
	return st.records.Update(func(items []models.Notification) ([]models.Notification, bool) {
		items = append([]models.Notification{n}, items...)
		if len(items) > st.max {
			items = items[:st.max]
		}
		return items, true
	})
}

func (ns *NotificationService) ListAll(s models.Stream) ([]models.Notification, error) {
	st, err := ns.stream(s)
	if err != nil {
		return nil, err
	}
	return st.records.Load(), nil
}

func (ns *NotificationService) ListUnread(s models.Stream) ([]models.Notification, error) {
	all, err := ns.ListAll(s)
	if err != nil {
		return nil, err
	}
	unread := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if !n.IsRead {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (ns *NotificationService) UnreadCount(s models.Stream) (int, error) {
	unread, err := ns.ListUnread(s)
	return len(unread), err
}

// MarkRead reports false for an unknown or already read id; neither is an
// error.
func (ns *NotificationService) MarkRead(s models.Stream, id string) (bool, error) {
	st, err := ns.stream(s)
	if err != nil {
		return false, err
	}
	marked := false
	now := ns.clock()
	err = st.records.Update(func(items []models.Notification) ([]models.Notification, bool) {
		for i := range items {
			if items[i].ID == id && !items[i].IsRead {
				items[i].IsRead = true
				items[i].ReadAt = &now
				marked = true
				break
			}
		}
		return items, marked
	})
	if err != nil {
		return false, err
	}
	return marked, nil
}

func (ns *NotificationService) MarkAllRead(s models.Stream) (int, error) {
	st, err := ns.stream(s)
	if err != nil {
		return 0, err
	}
	marked := 0
	now := ns.clock()
	err = st.records.Update(func(items []models.Notification) ([]models.Notification, bool) {
		for i := range items {
			if !items[i].IsRead {
				items[i].IsRead = true
				items[i].ReadAt = &now
				marked++
			}
		}
		return items, marked > 0
	})
	if err != nil {
		return 0, err
	}
	return marked, nil
}

func (ns *NotificationService) Delete(s models.Stream, id string) (bool, error) {
	st, err := ns.stream(s)
	if err != nil {
		return false, err
	}
	deleted := false
	err = st.records.Update(func(items []models.Notification) ([]models.Notification, bool) {
		out := items[:0]
		for _, n := range items {
			if n.ID == id {
				deleted = true
				continue
			}
			out = append(out, n)
		}
		return out, deleted
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// Prune removes notifications created before olderThan.
func (ns *NotificationService) Prune(s models.Stream, olderThan time.Time) (int, error) {
	st, err := ns.stream(s)
	if err != nil {
		return 0, err
	}
	removed := 0
	err = st.records.Update(func(items []models.Notification) ([]models.Notification, bool) {
		out := items[:0]
		for _, n := range items {
			if n.CreatedAt.Before(olderThan) {
				removed++
				continue
			}
			out = append(out, n)
		}
		return out, removed > 0
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (ns *NotificationService) Revision(s models.Stream) uint64 {
	st, err := ns.stream(s)
	if err != nil {
		return 0
	}
	return st.records.Revision()
}
