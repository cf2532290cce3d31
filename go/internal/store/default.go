package store

// The process-wide store is plain package state with an explicit
// lifecycle: main sets it once, tests reset it. Nothing here constructs a
// store behind the caller's back.

var defaultStore *Store

// SetDefault installs s as the process-wide store. Load callers use this
// to swap in a freshly loaded snapshot.
func SetDefault(s *Store) {
	defaultStore = s
}

// Default returns the process-wide store, or nil when none was installed.
func Default() *Store {
	return defaultStore
}

// ResetDefault clears the process-wide store. Test isolation hook.
func ResetDefault() {
	defaultStore = nil
}
