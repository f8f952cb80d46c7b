package avatar

import (
	"strconv"
	"unicode/utf16"
)

// CacheKey derives the deterministic cache key for a (configuration, view)
// pair: the view, an underscore, then a base-36 djb2 hash of the canonical
// configuration plus the view. The hash is fast and non-cryptographic;
// distinct configurations could in principle collide, which the cache
// accepts rather than guarding against.
func CacheKey(cfg Configuration, view View) string {
	h := djb2(CanonicalForm(cfg) + string(view))
	return string(view) + "_" + strconv.FormatUint(uint64(h), 36)
}

// djb2 xor-variant accumulated over UTF-16 code units.
func djb2(s string) uint32 {
	h := uint32(5381)
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*33 ^ uint32(u)
	}
	return h
}
