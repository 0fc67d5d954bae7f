// Package search runs the matching cascade over a corpus snapshot.
//
// A Searcher takes one snapshot per query and runs the tiers in priority
// order: EXACT, AND, OR, PARTIAL, COURSE. Each profile appears at most once
// in the merged list, tagged with the highest tier that found it. When fewer
// than three profiles were found the query text is embedded and the vector
// index supplies SEMANTIC matches, in similarity order, until three profiles
// are present. The merged list is then handed to rank.Select.
//
// A failing fallback does not fail the query: Result.FallbackErr wraps
// ErrFallbackUnavailable and the symbolic matches are returned as usual.
package search
