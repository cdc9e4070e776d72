package controllers

import (
	"net/http"

	"cpd/internal/models"
	"cpd/internal/providers"
	"cpd/internal/services"
)

type NotificationController struct {
	logger        providers.Logger
	notifications services.NotificationServiceInterface
}

type notificationList struct {
	Stream models.Stream         `json:"stream"`
	Unread int                   `json:"unread"`
	Items  []models.Notification `json:"items"`
}

func NewNotificationController(logger providers.Logger, notifications services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		logger:        logger,
		notifications: notifications,
	}
}

func (nc *NotificationController) stream(w http.ResponseWriter, r *http.Request) (models.Stream, bool) {
	s, err := models.ParseStream(r.URL.Query().Get("s"))
	if err != nil {
		writeError(w, err)
		return "", false
	}
	return s, true
}

func (nc *NotificationController) List(w http.ResponseWriter, r *http.Request) {
	s, ok := nc.stream(w, r)
	if !ok {
		return
	}

	items, err := nc.notifications.ListAll(s)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := notificationList{Stream: s, Items: make([]models.Notification, 0, len(items))}
	for _, n := range items {
		if !n.IsRead {
			resp.Unread++
		}
		if r.URL.Query().Get("unread") == "1" && n.IsRead {
			continue
		}
		resp.Items = append(resp.Items, n)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (nc *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	s, ok := nc.stream(w, r)
	if !ok {
		return
	}
	id, ok := requireParam(w, r, "id")
	if !ok {
		return
	}
	if _, err := nc.notifications.MarkRead(s, id); err != nil {
		nc.logger.Errorf(providers.TypePost, "Mark read %s/%s failed: %s", s, id, err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (nc *NotificationController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	s, ok := nc.stream(w, r)
	if !ok {
		return
	}
	marked, err := nc.notifications.MarkAllRead(s)
	if err != nil {
		nc.logger.Errorf(providers.TypePost, "Mark all read on %s failed: %s", s, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"marked": marked})
}

func (nc *NotificationController) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := nc.stream(w, r)
	if !ok {
		return
	}
	id, ok := requireParam(w, r, "id")
	if !ok {
		return
	}
	if _, err := nc.notifications.Delete(s, id); err != nil {
		nc.logger.Errorf(providers.TypePost, "Delete %s/%s failed: %s", s, id, err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
