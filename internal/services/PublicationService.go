package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"cpd/internal/models"
	"cpd/internal/providers"

	"github.com/google/uuid"
	"github.com/gookit/validate"
)

var errInvalidPublishRequest = errors.New("invalid publish request")

type PublicationServiceInterface interface {
	Publish(req models.PublishRequest) (*models.PublishResult, error)
	Unpublish(contentID string) (bool, error)
}

// PublicationService turns a publish request into a library entry and one
// notification per stream.
//
// Only the library write is authoritative. Notification writes are best
// effort: their failures are logged and reported in the result, never as
// the returned error. Publishing an id again leaves the library entry as it
// was but appends fresh notifications to both streams.
type PublicationService struct {
	library       LibraryServiceInterface
	notifications NotificationServiceInterface
	playback      PlaybackServiceInterface
	resolver      *ReferenceResolver
	logger        providers.Logger
	metrics       providers.MetricsProviderInterface
	clock         func() time.Time
	newID         func() string
}

func NewPublicationService(library LibraryServiceInterface, notifications NotificationServiceInterface, playback PlaybackServiceInterface, resolver *ReferenceResolver, logger providers.Logger, metrics providers.MetricsProviderInterface) PublicationServiceInterface {
	return &PublicationService{
		library:       library,
		notifications: notifications,
		playback:      playback,
		resolver:      resolver,
		logger:        logger,
		metrics:       metrics,
		clock:         time.Now,
		newID:         func() string { return uuid.NewString() },
	}
}

func (ps *PublicationService) Publish(req models.PublishRequest) (*models.PublishResult, error) {
	req.Normalize()
	if err := validateRequest(&req); err != nil {
		ps.metrics.IncPublished(providers.OutcomeInvalid)
		return nil, err
	}

	now := ps.clock()
	item := models.ContentItem{
		ID:                req.ID,
		Title:             req.Title,
		Description:       req.Description,
		InstructorID:      req.InstructorID,
		InstructorName:    req.InstructorName,
		PlayableReference: ps.resolver.Resolve(req.ID, req.Reference),
		ViewCount:         0,
		PublishedAt:       now,
		Duration:          req.Duration,
		Thumbnail:         req.Thumbnail,
	}
	if item.PlayableReference != req.Reference {
		ps.logger.Debugf(providers.TypePost, "Content %s: ephemeral reference replaced by %s", item.ID, item.PlayableReference)
	}

	if err := ps.library.Add(item); err != nil {
		ps.metrics.IncPublished(providers.OutcomeFailed)
		return nil, fmt.Errorf("publish %s: %w", item.ID, err)
	}
	if stored, ok := ps.library.Get(item.ID); ok {
		item = stored
	}

	result := &models.PublishResult{LibraryItem: item}

	audience := ps.audienceNotification(item, now)
	if err := ps.notifications.Append(models.StreamAudience, audience); err != nil {
		result.Failures = append(result.Failures, ps.dropped(models.StreamAudience, item.ID, err))
	} else {
		result.AudienceNotification = &audience
	}

	admin := ps.adminNotification(item, now)
	if err := ps.notifications.Append(models.StreamAdmin, admin); err != nil {
		result.Failures = append(result.Failures, ps.dropped(models.StreamAdmin, item.ID, err))
	} else {
		result.AdminNotification = &admin
	}

	if result.Complete() {
		ps.metrics.IncPublished(providers.OutcomeOK)
	} else {
		ps.metrics.IncPublished(providers.OutcomePartial)
	}
	ps.logger.Infof(providers.TypePost, "Published %s %q by %s", item.ID, item.Title, item.InstructorID)
	return result, nil
}

// Unpublish removes the content and its revenue record. It goes through
// playback so it is serialized with views.
func (ps *PublicationService) Unpublish(contentID string) (bool, error) {
	return ps.playback.Remove(contentID)
}

func (ps *PublicationService) audienceNotification(item models.ContentItem, now time.Time) models.Notification {
	return models.Notification{
		ID:             ps.newID(),
		Kind:           models.KindContentPublished,
		Title:          "New content available",
		Message:        fmt.Sprintf("%s published %q", instructorLabel(item), item.Title),
		InstructorName: item.InstructorName,
		ContentTitle:   item.Title,
		ContentID:      item.ID,
		CreatedAt:      now,
	}
}

func (ps *PublicationService) adminNotification(item models.ContentItem, now time.Time) models.Notification {
	return models.Notification{
		ID:             ps.newID(),
		Kind:           models.KindContentPublished,
		Title:          "Content published",
		Message:        fmt.Sprintf("Instructor %s (%s) published %q (%s)", instructorLabel(item), item.InstructorID, item.Title, item.ID),
		InstructorName: item.InstructorName,
		ContentTitle:   item.Title,
		ContentID:      item.ID,
		CreatedAt:      now,
		InstructorID:   item.InstructorID,
		Priority:       models.PriorityMedium,
	}
}

func (ps *PublicationService) dropped(stream models.Stream, contentID string, err error) models.DeliveryFailure {
	ps.logger.Errorf(providers.TypeApp, "Notification for %s not delivered to %s stream: %s", contentID, stream, err)
	ps.metrics.IncNotificationDropped(string(stream))
	return models.DeliveryFailure{Stream: stream, Message: err.Error(), Err: err}
}

func instructorLabel(item models.ContentItem) string {
	if item.InstructorName != "" {
		return item.InstructorName
	}
	return item.InstructorID
}

func validateRequest(req *models.PublishRequest) error {
	v := validate.Struct(req)
	if v.Validate() {
		return nil
	}

	fields := make([]models.FieldError, 0, len(v.Errors))
	for field, msgs := range v.Errors {
		for _, msg := range msgs {
			fields = append(fields, models.FieldError{Field: field, Error: msg})
		}
	}
	sort.Slice(fields, func(i, j int) bool {
		if fields[i].Field != fields[j].Field {
			return fields[i].Field < fields[j].Field
		}
		return fields[i].Error < fields[j].Error
	})
	return models.NewValidationError(errInvalidPublishRequest, fields...)
}
