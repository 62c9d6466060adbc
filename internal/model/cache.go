package model

// CacheVersion is bumped whenever the persisted cache layout or the
// extraction rules change, invalidating every stored record.
const CacheVersion = 1

// Fingerprint identifies the content of a file.
type Fingerprint struct {
	Hash string
	Size int64
}

// CacheRecord is the stored extraction of one file.
type CacheRecord struct {
	Path        Path
	Fingerprint Fingerprint
	Extraction  Extraction
}

// Cache is the persisted set of records keyed by absolute file path.
type Cache struct {
	Version int
	Records map[Path]CacheRecord
}

// NewCache returns an empty cache at the current version.
func NewCache() *Cache {
	return &Cache{
		Version: CacheVersion,
		Records: make(map[Path]CacheRecord),
	}
}
