package bigram

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"
)

func vocab(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func TestParseCorpusNorvigFormat(t *testing.T) {
	in := "of the\t2766332391\nin the\t1610420357\nnot a line\n"
	pairs, err := ParseCorpus(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 {
		t.Fatalf("want 2 pairs, got %d", len(pairs))
	}
	if pairs[0] != (Pair{"of", "the", 2766332391}) {
		t.Errorf("pairs[0] = %+v", pairs[0])
	}
}

func TestParseCorpusThreeColumn(t *testing.T) {
	in := "The Quick 100\nquick brown 50\nbroken line\n\n"
	pairs, err := ParseCorpus(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 {
		t.Fatalf("want 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Context != "the" || pairs[0].Follower != "quick" {
		t.Errorf("words should be lowercased: %+v", pairs[0])
	}
}

func TestLoadVocabulary(t *testing.T) {
	in := "The 500\nquick\nBROWN 10 extra\n\n"
	words, err := LoadVocabulary(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"the", "quick", "brown"} {
		if _, ok := words[w]; !ok {
			t.Errorf("missing word %q", w)
		}
	}
	if len(words) != 3 {
		t.Errorf("want 3 words, got %d", len(words))
	}
}

func TestBuildFiltersAndRanks(t *testing.T) {
	pairs := []Pair{
		{"the", "cat", 10},
		{"the", "dog", 30},
		{"the", "xyzzy", 99}, // follower not in vocabulary
		{"cat", "sat", 5},
		{"cat", "cat", 50},   // self-pair dropped
		{"xyzzy", "dog", 99}, // context not in vocabulary
	}
	entries := Build(pairs, vocab("the", "cat", "dog", "sat"), Options{})

	if len(entries) != 2 {
		t.Fatalf("want 2 contexts, got %d: %+v", len(entries), entries)
	}
	// "the" totals 40, "cat" totals 5.
	if entries[0].Word != "the" || entries[1].Word != "cat" {
		t.Errorf("context ranking wrong: %+v", entries)
	}
	// Followers in frequency order.
	if got := strings.Join(entries[0].Followers, ","); got != "dog,cat" {
		t.Errorf("followers = %q, want %q", got, "dog,cat")
	}
}

func TestBuildTruncation(t *testing.T) {
	pairs := []Pair{
		{"a", "b", 5}, {"a", "c", 4}, {"a", "d", 3},
		{"b", "c", 100},
		{"c", "d", 1},
	}
	entries := Build(pairs, vocab("a", "b", "c", "d"), Options{MaxContexts: 2, MaxFollowers: 2})

	if len(entries) != 2 {
		t.Fatalf("want 2 contexts, got %d", len(entries))
	}
	if entries[0].Word != "b" {
		t.Errorf("highest-total context should rank first: %+v", entries)
	}
	if len(entries[1].Followers) != 2 {
		t.Errorf("followers not truncated: %+v", entries[1])
	}
}

func TestBuildDeterministicTies(t *testing.T) {
	pairs := []Pair{
		{"a", "z", 5}, {"a", "m", 5}, {"a", "b", 5},
		{"x", "y", 15}, {"q", "y", 15},
	}
	v := vocab("a", "z", "m", "b", "x", "y", "q")

	first := Build(pairs, v, Options{})
	for i := 0; i < 10; i++ {
		if got := Build(pairs, v, Options{}); !equalEntries(got, first) {
			t.Fatalf("Build output not deterministic: %+v vs %+v", got, first)
		}
	}
	// Contexts tie on total count and order alphabetically: a, q, x.
	if first[0].Word != "a" || first[1].Word != "q" || first[2].Word != "x" {
		t.Errorf("tied contexts = %+v, want alphabetical", first)
	}
	// Equal-count followers order alphabetically.
	if got := strings.Join(first[0].Followers, ","); got != "b,m,z" {
		t.Errorf("tied followers = %q, want alphabetical", got)
	}
}

func TestEncodeGzip(t *testing.T) {
	entries := []ContextEntry{
		{Word: "the", Followers: []string{"dog", "cat"}},
		{Word: "cat", Followers: []string{"sat"}},
	}
	var buf bytes.Buffer
	if err := EncodeGzip(&buf, entries); err != nil {
		t.Fatal(err)
	}

	gz, err := gzip.NewReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(gz)
	if err != nil {
		t.Fatal(err)
	}
	want := "the\tdog,cat\ncat\tsat\n"
	if string(data) != want {
		t.Errorf("decoded = %q, want %q", data, want)
	}
}

func equalEntries(a, b []ContextEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Word != b[i].Word || strings.Join(a[i].Followers, ",") != strings.Join(b[i].Followers, ",") {
			return false
		}
	}
	return true
}
