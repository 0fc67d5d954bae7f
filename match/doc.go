// Package match implements the symbolic matching strategies run against a
// corpus snapshot.
//
// A skill phrase arrives with natural-language conjunctions already rewritten
// to Delimiter. ParsePhrase splits it into normalized parts; each strategy
// scans every profile in corpus order and records at most one Match per
// profile, stopping at the first qualifying skill or course.
//
// Strategies are pure: they read the corpus and never modify it.
package match
