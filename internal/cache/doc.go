// Package cache provides a generic LRU cache.
//
// It backs the parsed-font cache of the outline generator: font files are
// parsed once per (backend, font) pair and reused across requests.
//
//	c := cache.New[string, *Font](8)
//	f, err := c.GetOrLoad("goregular", func() (*Font, error) {
//	    return parse(data)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
