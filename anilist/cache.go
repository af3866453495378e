// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"sync"
	"time"

	"github.com/Sac-94/AniSubDl/filesystem"
	"github.com/Sac-94/AniSubDl/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

// titleCacher persists resolved search-term to title mappings so repeated
// lookups do not re-query the API.
var titleCacher = &cacher{
	internal: gache.New[map[string]string](&gache.Options{
		Path:       where.Titles(),
		Lifetime:   time.Hour * 24 * 7,
		FileSystem: &filesystem.GacheFs{},
	}),
}

type cacher struct {
	internal *gache.Cache[map[string]string]
	mu       sync.RWMutex
}

// Get retrieves a cached title for the given search term.
func (c *cacher) Get(term string) mo.Option[string] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[string]()
	}

	if title, ok := data[term]; ok {
		return mo.Some(title)
	}

	return mo.None[string]()
}

// Set persists a search-term to title mapping.
func (c *cacher) Set(term, title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		data = make(map[string]string)
	}

	data[term] = title
	return c.internal.Set(data)
}
