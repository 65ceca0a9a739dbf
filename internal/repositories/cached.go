package repositories

import (
	"context"
	"github.com/maxaizer/recruit-dashboard/internal/entities"
	gocache "github.com/patrickmn/go-cache"
	"sync"
	"time"
)

// lookupCache caches entity values by id. Nested slices of a cached value are
// shared between callers, who must not modify them in place.
type lookupCache[T any] struct {
	items      *gocache.Cache
	mu         sync.Mutex
	generation uint64
}

func newLookupCache[T any]() *lookupCache[T] {
	return &lookupCache[T]{items: gocache.New(10*time.Minute, 20*time.Minute)}
}

// readThrough stores a loaded value only if no invalidation ran while it was loading.
func (c *lookupCache[T]) readThrough(ctx context.Context, id string,
	load func(context.Context, string) (*T, error)) (*T, error) {

	if value, found := c.items.Get(id); found {
		item := value.(T)
		return &item, nil
	}

	c.mu.Lock()
	generation := c.generation
	c.mu.Unlock()

	item, err := load(ctx, id)
	if item == nil {
		return item, err
	}

	c.mu.Lock()
	if c.generation == generation {
		c.items.Set(id, *item, gocache.DefaultExpiration)
	}
	c.mu.Unlock()
	return item, err
}

func (c *lookupCache[T]) invalidate(id string) {
	c.mu.Lock()
	c.generation++
	c.items.Delete(id)
	c.mu.Unlock()
}

type CachedCandidates struct {
	*Candidates
	cache *lookupCache[entities.Candidate]
}

func NewCachedCandidates(repo *Candidates) *CachedCandidates {
	return &CachedCandidates{Candidates: repo, cache: newLookupCache[entities.Candidate]()}
}

func (c *CachedCandidates) FindByID(ctx context.Context, id string) (*entities.Candidate, error) {
	return c.cache.readThrough(ctx, id, c.Candidates.FindByID)
}

func (c *CachedCandidates) Update(ctx context.Context, id string,
	patch entities.CandidatePatch) (*entities.Candidate, error) {
	defer c.cache.invalidate(id)
	return c.Candidates.Update(ctx, id, patch)
}

func (c *CachedCandidates) Delete(ctx context.Context, id string) error {
	defer c.cache.invalidate(id)
	return c.Candidates.Delete(ctx, id)
}

type CachedJobRoles struct {
	*JobRoles
	cache *lookupCache[entities.JobRole]
}

func NewCachedJobRoles(repo *JobRoles) *CachedJobRoles {
	return &CachedJobRoles{JobRoles: repo, cache: newLookupCache[entities.JobRole]()}
}

func (c *CachedJobRoles) FindByID(ctx context.Context, id string) (*entities.JobRole, error) {
	return c.cache.readThrough(ctx, id, c.JobRoles.FindByID)
}

func (c *CachedJobRoles) Update(ctx context.Context, id string,
	patch entities.JobRolePatch) (*entities.JobRole, error) {
	defer c.cache.invalidate(id)
	return c.JobRoles.Update(ctx, id, patch)
}

func (c *CachedJobRoles) Delete(ctx context.Context, id string) error {
	defer c.cache.invalidate(id)
	return c.JobRoles.Delete(ctx, id)
}
