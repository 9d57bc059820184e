// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

import "github.com/taibuivan/blogadmin/pkg/slice"

// AddIfMissing merges candidates into collection, keyed by identifier.
//
// Absent candidates, and candidates without an identifier, are dropped. When
// nothing is left, collection itself is returned so callers can skip a
// refresh. Otherwise the candidates whose identifier is not yet known are
// kept in input order, each one extending the known set, and the result is
// the kept candidates followed by the untouched collection.
func AddIfMissing[T any, P Entity[T]](collection []P, candidates ...P) []P {
	present := slice.Filter(candidates, func(candidate P) bool {
		return candidate != nil && candidate.Key() != nil
	})
	if len(present) == 0 {
		return collection
	}

	known := make(map[int64]struct{}, len(collection)+len(present))
	for _, item := range collection {
		if key := item.Key(); key != nil {
			known[*key] = struct{}{}
		}
	}

	added := slice.Filter(present, func(candidate P) bool {
		key := *candidate.Key()
		if _, ok := known[key]; ok {
			return false
		}
		known[key] = struct{}{}
		return true
	})

	return slice.Concat(added, collection)
}
