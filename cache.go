package main

import (
	"sync/atomic"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/logger"
	"github.com/VictoriaMetrics/fastcache"
)

// literalCache maps literal text to the msgpack encoding of its parsed value.
type literalCache struct {
	hits   uint64
	misses uint64
	cache  *fastcache.Cache
}

func newLiteralCache(megabytes int) *literalCache {
	return &literalCache{cache: fastcache.New(megabytes * 1024 * 1024)}
}

func (lc *literalCache) parse(literal string) (common.Rational, error) {
	key := []byte(literal)
	val := lc.cache.Get(nil, key)
	if len(val) > 0 {
		var r common.Rational
		err := common.MsgpackUnmarshal(val, &r)
		if err == nil {
			atomic.AddUint64(&lc.hits, 1)
			logger.Debugf("cache hit %s => %s", literal, r)
			return r, nil
		}
		logger.Verbosef("cache corrupted entry %s %s", literal, err)
		lc.cache.Del(key)
	}

	r, err := common.Parse(literal)
	if err != nil {
		return common.Zero, err
	}
	atomic.AddUint64(&lc.misses, 1)
	lc.cache.Set(key, common.MsgpackMarshalPanic(r))
	logger.Debugf("cache miss %s => %s", literal, r)
	return r, nil
}

func (lc *literalCache) stats() (hits, misses, entries uint64) {
	var s fastcache.Stats
	lc.cache.UpdateStats(&s)
	return atomic.LoadUint64(&lc.hits), atomic.LoadUint64(&lc.misses), s.EntriesCount
}
