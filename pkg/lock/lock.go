// Package lock defines exclusive per-account access used by the account
// service to serialize check-then-apply mutations.
package lock

import (
	"context"
	"slices"
)

// Locker grants exclusive access to a set of account numbers.
//
// Lock acquires every key in ascending order, collapsing duplicates, and
// blocks until all are held or ctx is done. The returned unlock releases
// everything that was acquired and must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, keys ...int64) (unlock func(), err error)
}

// OrderedKeys returns keys sorted ascending without duplicates.
// Acquiring in this order is what keeps opposite transfers from deadlocking.
func OrderedKeys(keys []int64) []int64 {
	ordered := slices.Clone(keys)
	slices.Sort(ordered)
	return slices.Compact(ordered)
}
