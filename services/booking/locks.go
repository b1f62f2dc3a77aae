package booking

import "sync"

// listingLockEntry pairs a listing's mutex with the number of bookings
// holding or waiting on it, so the store can drop entries nobody wants.
type listingLockEntry struct {
	mu   sync.Mutex
	refs int
}

// listingLockStore holds a map of listing ids to their lock entries.
// Serializing the read-modify-write of a listing's availability index per
// listing is what prevents two overlapping bookings from both reading the
// same index and the later write silently dropping the earlier booking's
// days. Entries are evicted when their last holder releases, so ids that
// never resolve to a listing don't accumulate.
type listingLockStore struct {
	locks map[string]*listingLockEntry
	mu    sync.Mutex
}

var listingLocks = &listingLockStore{
	locks: make(map[string]*listingLockEntry),
}

func (s *listingLockStore) acquire(listingID string) *listingLockEntry {
	s.mu.Lock()
	entry, exists := s.locks[listingID]
	if !exists {
		entry = &listingLockEntry{}
		s.locks[listingID] = entry
	}
	entry.refs++
	s.mu.Unlock()

	entry.mu.Lock()
	return entry
}

func (s *listingLockStore) release(listingID string, entry *listingLockEntry) {
	entry.mu.Unlock()

	s.mu.Lock()
	entry.refs--
	if entry.refs == 0 {
		delete(s.locks, listingID)
	}
	s.mu.Unlock()
}

// lockListing serializes booking creation per listing and returns the unlock.
func lockListing(listingID string) func() {
	entry := listingLocks.acquire(listingID)
	return func() {
		listingLocks.release(listingID, entry)
	}
}
