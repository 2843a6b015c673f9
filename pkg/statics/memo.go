package statics

import (
	"log/slog"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/lacuna-lang/lacuna/pkg/syntax"
	"github.com/lacuna-lang/lacuna/pkg/typ"
)

// DefaultCacheSize bounds a session's memo cache when no size is
// configured.
const DefaultCacheSize = 1000

// Session memoizes whole-tree checks. The traversal is pure, so caching
// is transparent: structurally equal roots yield equal maps whether
// computed or replayed, and eviction only ever costs a recomputation.
// A session is safe for concurrent use.
type Session struct {
	ctx   typ.Ctx
	cache *lru.Cache[uint64, sessionEntry]
	group singleflight.Group
}

type sessionEntry struct {
	root  syntax.Exp
	infos InfoMap
}

// NewSession returns a session checking under the built-in context. A
// non-positive size falls back to DefaultCacheSize.
func NewSession(size int) (*Session, error) {
	return NewSessionInCtx(Builtins(), size)
}

// NewSessionInCtx returns a session checking under an explicit context.
func NewSessionInCtx(ctx typ.Ctx, size int) (*Session, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[uint64, sessionEntry](size)
	if err != nil {
		return nil, errors.Wrap(err, "build statics cache")
	}
	return &Session{ctx: ctx, cache: cache}, nil
}

// Compute returns the statics of root, replaying a prior traversal when a
// structurally equal tree was already checked. Fingerprints key the
// cache; a hit is confirmed by structural comparison before it is
// trusted, so a colliding fingerprint costs a recomputation, never a
// wrong map.
func (s *Session) Compute(root syntax.Exp) InfoMap {
	key := syntax.Fingerprint(root)
	if entry, ok := s.cache.Get(key); ok && syntax.Equal(entry.root, root) {
		slog.Debug("statics cache hit", "key", key)
		return entry.infos
	}

	// concurrent checks of the same tree collapse into one traversal
	v, _, _ := s.group.Do(strconv.FormatUint(key, 16), func() (any, error) {
		if entry, ok := s.cache.Get(key); ok && syntax.Equal(entry.root, root) {
			return entry, nil
		}
		entry := sessionEntry{root: root, infos: CheckInCtx(s.ctx, root)}
		s.cache.Add(key, entry)
		slog.Debug("statics cache miss", "key", key, "nodes", len(entry.infos))
		return entry, nil
	})

	entry := v.(sessionEntry)
	if syntax.Equal(entry.root, root) {
		return entry.infos
	}
	// fingerprint collision with a different tree in flight
	infos := CheckInCtx(s.ctx, root)
	s.cache.Add(key, sessionEntry{root: root, infos: infos})
	return infos
}

// Len reports how many trees the session currently remembers.
func (s *Session) Len() int { return s.cache.Len() }

// Purge drops every memoized traversal.
func (s *Session) Purge() { s.cache.Purge() }
