package sparse

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/cwbudde/algo-wavelet/dsp/pad"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

// Kind distinguishes analysis from synthesis matrices.
type Kind int

const (
	KindAnalysis Kind = iota
	KindSynthesis
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindAnalysis:
		return "analysis"
	case KindSynthesis:
		return "synthesis"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Key identifies a cached matrix. Synthesis keys leave Mode empty.
type Key struct {
	Wavelet string
	Mode    pad.Mode
	Kind    Kind
	Length  int
	Level   int
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%s|%s|%d|%d", k.Wavelet, k.Mode, k.Kind, k.Length, k.Level)
}

// Cache holds constructed matrices. Entries are inserted once and never
// modified; concurrent requests for a missing key share one construction.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]*CSR
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*CSR)}
}

// Get returns the matrix stored under key, calling build on a miss.
func (c *Cache) Get(key Key, build func() (*CSR, error)) (*CSR, error) {
	c.mu.RLock()
	m, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		c.mu.RLock()
		m, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return m, nil
		}

		m, err := build()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = m
		c.mu.Unlock()
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*CSR), nil
}

// Analysis returns the analysis matrix of w for n samples at the given level.
func (c *Cache) Analysis(w wavelet.Source, n, level int, mode pad.Mode) (*CSR, error) {
	mode, err := pad.ParseMode(string(mode))
	if err != nil {
		return nil, err
	}
	key := Key{Wavelet: wavelet.Fingerprint(w), Mode: mode, Kind: KindAnalysis, Length: n, Level: level}
	return c.Get(key, func() (*CSR, error) {
		return ConstructAnalysis(w, n, mode)
	})
}

// Synthesis returns the synthesis matrix of w for n samples at the given
// level.
func (c *Cache) Synthesis(w wavelet.Source, n, level int) (*CSR, error) {
	key := Key{Wavelet: wavelet.Fingerprint(w), Kind: KindSynthesis, Length: n, Level: level}
	return c.Get(key, func() (*CSR, error) {
		return ConstructSynthesis(w, n)
	})
}

// Len returns the number of cached matrices.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops every entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[Key]*CSR)
	c.mu.Unlock()
}

var defaultCache = NewCache()

// DefaultCache returns the process-wide cache used when no cache option is
// given.
func DefaultCache() *Cache {
	return defaultCache
}
