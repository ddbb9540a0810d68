// Package textcache memoizes text measurements.
//
// The GUI measures every label on every frame, and measuring means running
// the shaper. A [Cache] keeps the most recently used measurements and
// evicts the least recently used one when full.
//
//	c := textcache.New(1024)
//	m, err := c.GetOrCompute(key, measure)
//
// A Cache is safe for concurrent use.
package textcache
