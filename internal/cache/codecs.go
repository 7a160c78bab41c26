// Package cache keeps recently used codecs so that repeated calls with the
// same configuration do not rebuild the tree and code table.
package cache

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/arloliu/hufftext/codec"
	"github.com/arloliu/hufftext/errs"
)

// DefaultSize is the number of codecs retained by the package-level cache.
const DefaultSize = 64

// Codecs is a bounded, concurrency-safe cache of codecs keyed by the
// fingerprint of their configuration.
//
// Concurrent requests for the same missing configuration build the codec
// once; the other callers wait for and share the result.
type Codecs struct {
	entries *lru.Cache[uint64, *codec.Codec]
	group   singleflight.Group
}

// New creates a cache holding at most size codecs.
//
// Returns errs.ErrConfiguration if size is not positive.
func New(size int) (*Codecs, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: cache size %d", errs.ErrConfiguration, size)
	}

	entries, err := lru.New[uint64, *codec.Codec](size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrConfiguration, err)
	}

	return &Codecs{entries: entries}, nil
}

// Get returns the codec for opts, building and caching it on a miss.
//
// Parameters:
//   - opts: Codec options, validated by codec.NewConfig
//
// Returns:
//   - *codec.Codec: Cached or newly built codec
//   - error: Configuration error from codec.NewConfig; failed builds are not cached
func (c *Codecs) Get(opts ...codec.Option) (*codec.Codec, error) {
	cfg, err := codec.NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	key := cfg.Fingerprint()
	if cd, ok := c.entries.Get(key); ok {
		return cd, nil
	}

	v, err, _ := c.group.Do(strconv.FormatUint(key, 16), func() (any, error) {
		if cd, ok := c.entries.Get(key); ok {
			return cd, nil
		}

		cd, err := codec.NewFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, cd)

		return cd, nil
	})
	if err != nil {
		return nil, err
	}

	cd, _ := v.(*codec.Codec)

	return cd, nil
}

// Len returns the number of cached codecs.
func (c *Codecs) Len() int {
	return c.entries.Len()
}

// Purge removes every cached codec.
func (c *Codecs) Purge() {
	c.entries.Purge()
}
