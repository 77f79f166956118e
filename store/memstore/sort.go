package memstore

import "sort"

func sortByID[T any](s []T, id func(T) uint) {
	sort.Slice(s, func(i, j int) bool { return id(s[i]) < id(s[j]) })
}
