package ltcheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"
)

func withWord(w string) *Error {
	return &Error{Message: w, Context: &Context{Proximity: w, Start: 0, End: len(w), Word: w}, Rule: spellRule()}
}

func flags(errs []*Error) []bool {
	out := make([]bool, len(errs))
	for i, e := range errs {
		out[i] = e.Whitelisted
	}
	return out
}

func TestUpdateWhitelisted(t *testing.T) {
	errs := []*Error{withWord("Wrld"), withWord("teh"), withWord("GOLANG"), {Message: "no context"}}
	got := UpdateWhitelisted(errs, []string{"wrld", "golang"})

	if &got[0] != &errs[0] {
		t.Error("UpdateWhitelisted must return the same slice")
	}
	if diff := deep.Equal(flags(errs), []bool{true, false, true, false}); diff != nil {
		t.Error(diff)
	}

	// Idempotent.
	UpdateWhitelisted(errs, []string{"wrld", "golang"})
	if diff := deep.Equal(flags(errs), []bool{true, false, true, false}); diff != nil {
		t.Error(diff)
	}

	// Shrinking the list clears stale flags.
	UpdateWhitelisted(errs, []string{"teh"})
	if diff := deep.Equal(flags(errs), []bool{false, true, false, false}); diff != nil {
		t.Error(diff)
	}
}

func TestUpdateWhitelisted_UnicodeCase(t *testing.T) {
	errs := []*Error{withWord("ÉCOLE")}
	UpdateWhitelisted(errs, []string{"école"})
	if !errs[0].Whitelisted {
		t.Fatal("ÉCOLE should match école")
	}
}

func TestWhitelistFiltered(t *testing.T) {
	a, b, c, d := withWord("a"), withWord("b"), withWord("c"), withWord("d")
	b.Whitelisted, d.Whitelisted = true, true
	in := []*Error{a, b, c, d}

	got := WhitelistFiltered(in)
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("WhitelistFiltered() = %v, want [a c]", got)
	}
	for _, e := range got {
		if e.Whitelisted {
			t.Error("whitelisted entry survived")
		}
	}
	if len(in) != 4 || in[1] != b || !b.Whitelisted {
		t.Error("input mutated")
	}
}

func TestWhitelist_AddRemove(t *testing.T) {
	wl := NewWhitelist("  Kafka ", "kafka", "", "Go")
	if diff := deep.Equal(wl.Words(), []string{"kafka", "go"}); diff != nil {
		t.Error(diff)
	}
	if wl.Add("KAFKA") {
		t.Error("Add of an existing word reported new")
	}
	if !wl.Add("rust") || wl.Len() != 3 {
		t.Error("Add of a new word failed")
	}
	if !wl.Contains("Rust ") {
		t.Error("Contains should fold case and trim")
	}
	if !wl.Remove("GO") || wl.Contains("go") || wl.Remove("go") {
		t.Error("Remove misbehaved")
	}
	if diff := deep.Equal(wl.Words(), []string{"kafka", "rust"}); diff != nil {
		t.Error(diff)
	}
}

func TestLoadWhitelist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "whitelist.txt")
	if err := os.WriteFile(path, []byte("Kafka\n\nltcheck\r\n  spaced  \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	wl, err := LoadWhitelist(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(wl.Words(), []string{"kafka", "ltcheck", "spaced"}); diff != nil {
		t.Error(diff)
	}

	missing, err := LoadWhitelist(filepath.Join(dir, "nope.txt"))
	if err != nil || missing.Len() != 0 {
		t.Errorf("LoadWhitelist(missing) = %v, %v; want empty, nil", missing.Words(), err)
	}
}

func TestWhitelist_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "whitelist.txt")

	if err := NewWhitelist("alpha", "Beta").Save(path, true); err != nil {
		t.Fatal(err)
	}
	if got := read(t, path); got != "alpha\nbeta\n" {
		t.Fatalf("after first save = %q", got)
	}
	if _, err := os.Stat(path + ".bak"); !os.IsNotExist(err) {
		t.Error("backup created for a file that did not exist")
	}

	if err := NewWhitelist("gamma").Save(path, false); err != nil {
		t.Fatal(err)
	}
	if got := read(t, path); got != "alpha\nbeta\ngamma\n" {
		t.Fatalf("after append = %q", got)
	}
	if got := read(t, path+".bak"); got != "alpha\nbeta\n" {
		t.Fatalf("backup = %q", got)
	}

	if err := NewWhitelist("delta").Save(path, true); err != nil {
		t.Fatal(err)
	}
	if got := read(t, path); got != "delta\n" {
		t.Fatalf("after overwrite = %q", got)
	}

	wl, err := LoadWhitelist(path)
	if err != nil || strings.Join(wl.Words(), ",") != "delta" {
		t.Fatalf("round trip = %v, %v", wl.Words(), err)
	}
}

func TestWhitelist_SaveAppendNoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whitelist.txt")
	if err := os.WriteFile(path, []byte("foo\nbar"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewWhitelist("baz", "Bar").Save(path, false); err != nil {
		t.Fatal(err)
	}
	if got := read(t, path); got != "foo\nbar\nbaz\n" {
		t.Fatalf("after append = %q", got)
	}

	// Nothing new: the file is left as is.
	if err := NewWhitelist("foo", "baz").Save(path, false); err != nil {
		t.Fatal(err)
	}
	wl, err := LoadWhitelist(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(wl.Words(), []string{"foo", "bar", "baz"}); diff != nil {
		t.Error(diff)
	}
	if got := read(t, path); got != "foo\nbar\nbaz\n" {
		t.Errorf("repeated append = %q", got)
	}
}

func read(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
