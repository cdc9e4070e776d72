package services

import (
	"net/url"
	"strings"

	"cpd/internal/structures"

	"github.com/cespare/xxhash/v2"
)

// DefaultReferencePool is the rotation used when publication.referencePool
// is not configured.
var DefaultReferencePool = []string{
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
}

// Schemes whose references only resolve inside the session that created them.
var ephemeralSchemes = map[string]struct{}{
	"blob":       {},
	"filesystem": {},
	"file":       {},
}

// ReferenceResolver turns the reference supplied at publish time into one
// every consumer can play.
type ReferenceResolver struct {
	pool []string
}

func NewReferenceResolver(conf *structures.Config) *ReferenceResolver {
	pool := conf.Publication.ReferencePool
	if len(pool) == 0 {
		pool = DefaultReferencePool
	}
	return &ReferenceResolver{pool: append([]string(nil), pool...)}
}

// IsEphemeral reports whether ref cannot be handed to other consumers: it is
// empty, has no scheme, or uses a session-scoped scheme.
func (r *ReferenceResolver) IsEphemeral(ref string) bool {
	if ref == "" {
		return true
	}
	scheme, _, found := strings.Cut(ref, ":")
	if !found {
		return true
	}
	if _, ok := ephemeralSchemes[strings.ToLower(scheme)]; ok {
		return true
	}
	u, err := url.Parse(ref)
	return err != nil || u.Scheme == ""
}

// Index is xxhash64(id) mod len(pool).
func (r *ReferenceResolver) Index(id string) int {
	return int(xxhash.Sum64String(id) % uint64(len(r.pool)))
}

// Substitute returns the pool entry for id; the same id always maps to the
// same entry.
func (r *ReferenceResolver) Substitute(id string) string {
	return r.pool[r.Index(id)]
}

// Resolve passes durable references through and substitutes ephemeral ones.
func (r *ReferenceResolver) Resolve(id, ref string) string {
	if r.IsEphemeral(ref) {
		return r.Substitute(id)
	}
	return ref
}

func (r *ReferenceResolver) Pool() []string {
	return append([]string(nil), r.pool...)
}
