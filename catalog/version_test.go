package catalog_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/mylxsw/redis-compat/catalog"
)

func TestComparators(t *testing.T) {
	cases := []struct {
		a, b     string
		lexical  int
		semantic int
	}{
		{"1.0.0", "1.0.0", 0, 0},
		{"10.0.0", "2.0.0", -1, 1},
		{"2.8.13", "2.8.9", -1, 1},
		{"3.2", "3.2.0", -1, 0},
		{"6.2.0", "7.0.0", -1, -1},
		{"abc", "1.0.0", 1, 1},
	}

	for _, c := range cases {
		if got := catalog.LexicalComparator(c.a, c.b); got != c.lexical {
			t.Errorf("lexical %s %s: got %d", c.a, c.b, got)
		}

		if got := catalog.SemanticComparator(c.a, c.b); got != c.semantic {
			t.Errorf("semantic %s %s: got %d", c.a, c.b, got)
		}
	}
}

func TestComparatorByName(t *testing.T) {
	for _, name := range []string{"", "lexical", "LEXICAL", "semantic"} {
		if _, err := catalog.ComparatorByName(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	if _, err := catalog.ComparatorByName("numeric"); err == nil {
		t.Error("expected unknown comparator error")
	}
}

func TestSortVersions(t *testing.T) {
	versions := []string{"2.8.9", "10.0.0", "2.8.13", "1.0.0"}

	if diff := deep.Equal(catalog.SortVersions(versions, catalog.SemanticComparator), []string{"1.0.0", "2.8.9", "2.8.13", "10.0.0"}); diff != nil {
		t.Error(diff)
	}

	if diff := deep.Equal(catalog.SortVersions(versions, nil), []string{"1.0.0", "10.0.0", "2.8.13", "2.8.9"}); diff != nil {
		t.Error(diff)
	}

	if versions[0] != "2.8.9" {
		t.Error("input was modified")
	}
}
