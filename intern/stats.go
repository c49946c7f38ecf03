package intern

// Stats counts how a Table resolved its Add calls.
type Stats struct {
	LocalHits  uint64 // served by the Table
	SharedHits uint64 // served by the Shared table and promoted
	Misses     uint64 // materialized and published
	Bypassed   uint64 // hash 0, materialized without caching
	Evictions  uint64 // misses that overwrote a live Shared entry
}

// Lookups returns the number of Add calls that consulted the cache.
func (s Stats) Lookups() uint64 {
	return s.LocalHits + s.SharedHits + s.Misses
}

// HitRatio returns the fraction of lookups served from either tier.
func (s Stats) HitRatio() float64 {
	n := s.Lookups()
	if n == 0 {
		return 0
	}
	return float64(s.LocalHits+s.SharedHits) / float64(n)
}

// Merge returns the sum of s and o.
func (s Stats) Merge(o Stats) Stats {
	return Stats{
		LocalHits:  s.LocalHits + o.LocalHits,
		SharedHits: s.SharedHits + o.SharedHits,
		Misses:     s.Misses + o.Misses,
		Bypassed:   s.Bypassed + o.Bypassed,
		Evictions:  s.Evictions + o.Evictions,
	}
}

// Stats returns the counters accumulated since the Table was created.
func (t *Table) Stats() Stats {
	return t.stats
}
