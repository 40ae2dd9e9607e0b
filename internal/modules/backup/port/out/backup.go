package out

// CollectionCache is any component holding an in-memory copy of a
// persisted slot. Import rewrites the slots wholesale, so every cache
// must be dropped afterwards or the next mutation would persist stale
// data over the imported records.
type CollectionCache interface {
	Invalidate()
}
