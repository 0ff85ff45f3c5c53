package template

// CacheView is the read-only slice of a geocache that templates consume.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: accessors must not panic; unknown values return "".
type CacheView interface {
	// Geocode returns the cache's code (e.g. "GC1234"), used for
	// connector dispatch.
	Geocode() string

	// Name returns the cache's title.
	Name() string

	// OwnerDisplayName returns the cache owner's display name.
	OwnerDisplayName() string

	// URL returns the cache's browse URL, or "" if unknown.
	URL() string
}

// TrackableView is the read-only slice of a trackable that templates consume.
type TrackableView interface {
	// Name returns the trackable's title.
	Name() string

	// Owner returns the trackable owner's name.
	Owner() string

	// URL returns the trackable's browse URL.
	URL() string
}

// EntryView is the read-only slice of a prior log entry that templates consume.
type EntryView interface {
	// DisplayText returns the entry's rendered text.
	DisplayText() string
}

// LogContext carries the optional domain references for one resolution call.
//
// Any reference may be nil; templates treat absence as a valid case and fall
// back to empty output, never an error. A LogContext is immutable once
// constructed and lives for a single Apply call.
type LogContext struct {
	// Cache is the geocache being logged, if any.
	Cache CacheView

	// Trackable is the trackable being logged, if any.
	Trackable TrackableView

	// LogEntry is the prior log entry, if any.
	LogEntry EntryView

	// Offline is true when no network call may be made during resolution.
	Offline bool
}

// CacheContext builds a LogContext for logging a geocache.
func CacheContext(cache CacheView, entry EntryView) LogContext {
	return LogContext{Cache: cache, LogEntry: entry}
}

// OfflineCacheContext builds a LogContext for composing an offline cache log.
func OfflineCacheContext(cache CacheView, entry EntryView) LogContext {
	return LogContext{Cache: cache, LogEntry: entry, Offline: true}
}

// TrackableContext builds a LogContext for logging a trackable.
func TrackableContext(trackable TrackableView, entry EntryView) LogContext {
	return LogContext{Trackable: trackable, LogEntry: entry}
}
