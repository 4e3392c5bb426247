package adapters

import (
	"time"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/application/ports/outbound"
	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
	gocache "github.com/patrickmn/go-cache"
)

const (
	researchCacheTTL     = time.Hour
	researchCacheCleanup = 10 * time.Minute
)

type memoryResearchCache struct {
	cache *gocache.Cache
}

func NewMemoryResearchCache() outbound.ResearchCachePort {
	return &memoryResearchCache{
		cache: gocache.New(researchCacheTTL, researchCacheCleanup),
	}
}

func (c *memoryResearchCache) Get(key string) (domain.ResearchOutput, bool) {
	value, found := c.cache.Get(key)
	if !found {
		return domain.ResearchOutput{}, false
	}
	output, ok := value.(domain.ResearchOutput)
	if !ok {
		return domain.ResearchOutput{}, false
	}
	return output, true
}

func (c *memoryResearchCache) Set(key string, output domain.ResearchOutput) {
	c.cache.Set(key, output, gocache.DefaultExpiration)
}
