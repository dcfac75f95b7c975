package catalog

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
)

// Comparator orders two version strings, returning -1, 0 or +1
type Comparator func(a, b string) int

// Comparator names accepted by ComparatorByName
const (
	ComparatorLexical  = "lexical"
	ComparatorSemantic = "semantic"
)

// LexicalComparator compares versions as plain strings, so "10.0.0" sorts before "2.0.0".
// It is the default policy and matches the historical filtering behavior.
func LexicalComparator(a, b string) int {
	return strings.Compare(a, b)
}

// SemanticComparator compares versions by their numeric components.
// When either side is not a valid version it falls back to LexicalComparator.
func SemanticComparator(a, b string) int {
	va, vb := "v"+a, "v"+b
	if !semver.IsValid(va) || !semver.IsValid(vb) {
		return LexicalComparator(a, b)
	}

	return semver.Compare(va, vb)
}

// ComparatorByName resolves a comparator from its configuration name
func ComparatorByName(name string) (Comparator, error) {
	switch strings.ToLower(name) {
	case "", ComparatorLexical:
		return LexicalComparator, nil
	case ComparatorSemantic:
		return SemanticComparator, nil
	}

	return nil, errors.Errorf("unknown version comparator %q", name)
}

// SortVersions returns a sorted copy of versions
func SortVersions(versions []string, cmp Comparator) []string {
	if cmp == nil {
		cmp = LexicalComparator
	}

	sorted := make([]string, len(versions))
	copy(sorted, versions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j]) < 0
	})

	return sorted
}
