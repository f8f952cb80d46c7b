// Package registry is the process-wide catalog of SVG part templates,
// organized by layer name then part identifier. Templates carry {{token}}
// color placeholders resolved later by the colorizer.
package registry

import (
	"sort"
	"sync"
)

// Registry maps (layer, partID) to an SVG template fragment. It has no
// I/O and never fails; lookups on unknown parts report a plain miss.
// Registration normally happens once at startup, but all operations are
// guarded so dynamic registration from other goroutines stays safe.
type Registry struct {
	mu     sync.RWMutex
	layers map[string]map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{layers: make(map[string]map[string]string)}
}

// NewSeeded returns a registry pre-populated with the placeholder part for
// every known layer, so the system is renderable before real art loads.
func NewSeeded() *Registry {
	r := New()
	r.SeedDefaults()
	return r
}

// Register upserts one template; the last write for a (layer, partID) wins.
func (r *Registry) Register(layer, partID, svgTemplate string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	parts, ok := r.layers[layer]
	if !ok {
		parts = make(map[string]string)
		r.layers[layer] = parts
	}
	parts[partID] = svgTemplate
}

// RegisterAll upserts every template in parts under the given layer.
func (r *Registry) RegisterAll(layer string, parts map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	dst, ok := r.layers[layer]
	if !ok {
		dst = make(map[string]string, len(parts))
		r.layers[layer] = dst
	}
	for id, tpl := range parts {
		dst[id] = tpl
	}
}

// PartSVG returns the template for (layer, partID), or ok=false on a miss.
func (r *Registry) PartSVG(layer, partID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tpl, ok := r.layers[layer][partID]
	return tpl, ok
}

// HasPart reports whether (layer, partID) is registered.
func (r *Registry) HasPart(layer, partID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.layers[layer][partID]
	return ok
}

// LayerPartIDs returns the sorted part ids registered under layer.
func (r *Registry) LayerPartIDs(layer string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	parts := r.layers[layer]
	ids := make([]string, 0, len(parts))
	for id := range parts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Layers returns the sorted layer names that have at least one part.
func (r *Registry) Layers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.layers))
	for name, parts := range r.layers {
		if len(parts) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// PartCount returns the total number of registered templates.
func (r *Registry) PartCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, parts := range r.layers {
		n += len(parts)
	}
	return n
}

// Clear removes every registered part.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.layers = make(map[string]map[string]string)
}

// ClearLayer removes every part under one layer.
func (r *Registry) ClearLayer(layer string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.layers, layer)
}
