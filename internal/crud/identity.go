// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package crud

// Equal reports whether two references denote the same entity.
//
// Two absent references are equal, an absent and a present one are not, and
// two present references are equal when both carry the same non-nil
// identifier. Selection controls must use it instead of pointer equality: a
// re-fetched entity is a different object with the same identity.
func Equal[T any, P Entity[T]](a, b P) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	keyA, keyB := a.Key(), b.Key()
	return keyA != nil && keyB != nil && *keyA == *keyB
}
