package catalog_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/mylxsw/redis-compat/catalog"
)

func names(cmds []catalog.Command) []string {
	res := make([]string, len(cmds))
	for i, c := range cmds {
		res[i] = c.Name
	}

	return res
}

func TestMatch(t *testing.T) {
	c := newTestCatalog(t)

	cases := []struct {
		text string
		want []string
	}{
		{"", []string{}},
		{"get", []string{"GET"}},
		{"ge", []string{"GET", "GETDEL"}},
		{"client", []string{"CLIENT", "CLIENT LIST", "CLIENT NO-TOUCH"}},
		{"client l", []string{"CLIENT LIST"}},
		{"client list", []string{"CLIENT LIST"}},
		{"client list type normal", []string{"CLIENT LIST"}},
		{"set key value", []string{"SET"}},
		{"xadd", []string{}},
	}

	for _, cs := range cases {
		if diff := deep.Equal(names(c.Match(cs.text)), cs.want); diff != nil {
			t.Errorf("%q: %v", cs.text, diff)
		}
	}
}

func TestMatchDefaultCatalog(t *testing.T) {
	matched := catalog.Default().Match("client get")
	if len(matched) != 1 || matched[0].Name != "CLIENT GETNAME" {
		t.Errorf("test failed: %v", names(matched))
	}

	if cmds := catalog.Default().Match("cluster s"); len(cmds) != 1 {
		t.Errorf("test failed: %v", names(cmds))
	}
}

func TestHelp(t *testing.T) {
	c := newTestCatalog(t)

	cmd, ok := c.Help("client list type normal")
	if !ok || cmd.Name != "CLIENT LIST" {
		t.Errorf("got %v", cmd.Name)
	}

	cmd, ok = c.Help("  set   foo bar")
	if !ok || cmd.Name != "SET" {
		t.Errorf("got %v", cmd.Name)
	}

	if _, ok := c.Help(""); ok {
		t.Error("empty line should not resolve")
	}

	if _, ok := c.Help("nope nope"); ok {
		t.Error("unknown command should not resolve")
	}
}

func TestSearch(t *testing.T) {
	c := newTestCatalog(t)

	cmds, err := c.Search("client *")
	if err != nil {
		t.Fatal(err)
	}

	if diff := deep.Equal(names(cmds), []string{"CLIENT LIST", "CLIENT NO-TOUCH"}); diff != nil {
		t.Error(diff)
	}

	cmds, _ = c.Search("?et")
	if diff := deep.Equal(names(cmds), []string{"GET", "SET"}); diff != nil {
		t.Error(diff)
	}

	if _, err := c.Search("[get"); err == nil {
		t.Error("expected invalid pattern error")
	}
}
