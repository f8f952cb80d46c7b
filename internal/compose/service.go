package compose

import (
	"github.com/Stephen-Psaradellis/avatarforge/internal/avatar"
	"github.com/Stephen-Psaradellis/avatarforge/internal/cache"
	"github.com/Stephen-Psaradellis/avatarforge/internal/registry"
)

// Service is the cached render path: look up the composed SVG, compose on
// a miss, and write the result back through both tiers.
type Service struct {
	comp  *Composer
	cache *cache.AvatarCache
}

// NewService wires a composer over reg with the given cache.
func NewService(reg *registry.Registry, c *cache.AvatarCache) *Service {
	return &Service{comp: New(reg), cache: c}
}

// Avatar returns the composed SVG for the pair and the tier that served
// it; SourceMiss means it was composed just now and cached.
func (s *Service) Avatar(cfg avatar.Configuration, view avatar.View) (string, cache.Source) {
	if res := s.cache.Get(cfg, view); res.Source != cache.SourceMiss {
		return res.SVG, res.Source
	}
	svg := s.comp.Render(cfg, view)
	s.cache.Put(cfg, view, svg)
	return svg, cache.SourceMiss
}

// Invalidate drops cached renders for the configuration.
func (s *Service) Invalidate(cfg avatar.Configuration, views ...avatar.View) {
	s.cache.Invalidate(cfg, views...)
}

// Stats exposes the underlying cache counters.
func (s *Service) Stats() cache.Stats {
	return s.cache.Stats()
}
