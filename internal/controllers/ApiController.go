package controllers

import (
	"net/http"
	"strconv"

	"cpd/internal/models"
	"cpd/internal/providers"
	"cpd/internal/services"

	json "github.com/goccy/go-json"
)

// ApiController serves the catalog: listing, publishing, removal and views.
type ApiController struct {
	logger      providers.Logger
	library     services.LibraryServiceInterface
	publication services.PublicationServiceInterface
	playback    services.PlaybackServiceInterface
	cache       providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, library services.LibraryServiceInterface, publication services.PublicationServiceInterface, playback services.PlaybackServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:      logger,
		library:     library,
		publication: publication,
		playback:    playback,
		cache:       cache,
	}
}

// serveFromCacheOrCompute caches rendered responses. Keys carry the checksum
// of the stored library, so any write makes every earlier entry unreachable.
func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		writeRaw(w, http.StatusOK, data)
		return
	}

	result, err := compute()
	if err != nil {
		writeError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)
	writeRaw(w, http.StatusOK, gson)
}

func libraryCacheKey(sum uint64, instructor string) string {
	key := "library:" + strconv.FormatUint(sum, 16)
	if instructor != "" {
		key += ":i:" + instructor
	}
	return key
}

// GetLibrary reads the store on every call. An unreadable library is served
// as empty and never cached.
func (ac *ApiController) GetLibrary(w http.ResponseWriter, r *http.Request) {
	instructor := r.URL.Query().Get("i")
	items, sum, err := ac.library.Snapshot(instructor)
	if err != nil {
		writeJSON(w, http.StatusOK, items)
		return
	}
	ac.serveFromCacheOrCompute(w, libraryCacheKey(sum, instructor), func() (any, error) {
		return items, nil
	})
}

func (ac *ApiController) Publish(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := ac.publication.Publish(payload)
	if err != nil {
		if !models.IsValidationError(err) {
			ac.logger.Errorf(providers.TypePost, "Publish of %s failed: %s", payload.ID, err)
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (ac *ApiController) RemoveContent(w http.ResponseWriter, r *http.Request) {
	id, ok := requireParam(w, r, "id")
	if !ok {
		return
	}
	if _, err := ac.publication.Unpublish(id); err != nil {
		ac.logger.Errorf(providers.TypePost, "Removal of %s failed: %s", id, err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// View always answers 204 for a well-formed request; playback must not
// depend on the outcome.
func (ac *ApiController) View(w http.ResponseWriter, r *http.Request) {
	id, ok := requireParam(w, r, "id")
	if !ok {
		return
	}
	ac.playback.View(id)
	w.WriteHeader(http.StatusNoContent)
}
