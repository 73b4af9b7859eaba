// Package bigram prepares bundled word-pair frequency data for the
// keyboard's word suggestions.
//
// The input corpus is a word-pair frequency list (Norvig's count_2w.txt
// format, "word1 word2<TAB>count", or a generic three-column format).
// Pairs are filtered against a vocabulary list so only known words
// survive, grouped by context word, and reduced to the top followers per
// context. The result serializes as gzip-compressed text:
//
//	contextWord<TAB>follower1,follower2,...,followerN
//
// Followers are in frequency order; counts are omitted since only the
// ordering matters to the consumer.
package bigram

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Pair is one corpus record: a context word, its follower, and how often
// the pair occurs.
type Pair struct {
	Context  string
	Follower string
	Count    int64
}

// ContextEntry is a context word with its followers in frequency order.
type ContextEntry struct {
	Word      string
	Followers []string
}

// Options bounds the output size.
type Options struct {
	MaxContexts  int // contexts kept, ranked by total follower count
	MaxFollowers int // followers kept per context
}

// DefaultOptions matches the bundled data shipped with the keyboard.
var DefaultOptions = Options{MaxContexts: 3000, MaxFollowers: 10}

// ParseCorpus reads word-pair records from r. Lines that do not parse are
// skipped rather than treated as fatal; corpus files routinely contain
// headers and junk. Words are lowercased.
func ParseCorpus(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if p, ok := parseLine(line); ok {
			pairs = append(pairs, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return pairs, nil
}

func parseLine(line string) (Pair, bool) {
	// Norvig format: "word1 word2\tcount"
	if phrase, countStr, ok := strings.Cut(line, "\t"); ok {
		words := strings.Fields(phrase)
		if len(words) == 2 {
			if n, err := strconv.ParseInt(strings.TrimSpace(countStr), 10, 64); err == nil {
				return Pair{
					Context:  strings.ToLower(words[0]),
					Follower: strings.ToLower(words[1]),
					Count:    n,
				}, true
			}
			return Pair{}, false
		}
	}
	// Fallback: space-separated "word1 word2 count"
	parts := strings.Fields(line)
	if len(parts) >= 3 {
		if n, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			return Pair{
				Context:  strings.ToLower(parts[0]),
				Follower: strings.ToLower(parts[1]),
				Count:    n,
			}, true
		}
	}
	return Pair{}, false
}

// LoadVocabulary reads a word list from r: one word per line, where only
// the first whitespace-separated field counts (word lists may carry
// frequency columns). Words are lowercased.
func LoadVocabulary(r io.Reader) (map[string]struct{}, error) {
	words := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			words[strings.ToLower(fields[0])] = struct{}{}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	return words, nil
}

// Build filters pairs to those where both words are in the vocabulary,
// groups them by context word, keeps the top MaxFollowers per context by
// count, and returns the top MaxContexts contexts ranked by their total
// retained count. Output order is fully deterministic: ties break on word
// order.
func Build(pairs []Pair, vocab map[string]struct{}, opts Options) []ContextEntry {
	if opts.MaxContexts <= 0 {
		opts.MaxContexts = DefaultOptions.MaxContexts
	}
	if opts.MaxFollowers <= 0 {
		opts.MaxFollowers = DefaultOptions.MaxFollowers
	}

	grouped := make(map[string][]Pair)
	for _, p := range pairs {
		if p.Context == p.Follower {
			continue
		}
		if _, ok := vocab[p.Context]; !ok {
			continue
		}
		if _, ok := vocab[p.Follower]; !ok {
			continue
		}
		grouped[p.Context] = append(grouped[p.Context], p)
	}

	type ranked struct {
		word      string
		followers []string
		total     int64
	}
	contexts := make([]ranked, 0, len(grouped))
	for word, followers := range grouped {
		sort.SliceStable(followers, func(i, j int) bool {
			if followers[i].Count != followers[j].Count {
				return followers[i].Count > followers[j].Count
			}
			return followers[i].Follower < followers[j].Follower
		})
		if len(followers) > opts.MaxFollowers {
			followers = followers[:opts.MaxFollowers]
		}

		r := ranked{word: word}
		for _, f := range followers {
			r.followers = append(r.followers, f.Follower)
			r.total += f.Count
		}
		contexts = append(contexts, r)
	}

	sort.Slice(contexts, func(i, j int) bool {
		if contexts[i].total != contexts[j].total {
			return contexts[i].total > contexts[j].total
		}
		return contexts[i].word < contexts[j].word
	})
	if len(contexts) > opts.MaxContexts {
		contexts = contexts[:opts.MaxContexts]
	}

	entries := make([]ContextEntry, len(contexts))
	for i, c := range contexts {
		entries[i] = ContextEntry{Word: c.word, Followers: c.followers}
	}
	return entries
}

// Encode writes entries in the compact text format, one context per line.
func Encode(w io.Writer, entries []ContextEntry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", e.Word, strings.Join(e.Followers, ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeGzip writes entries gzip-compressed, the format bundled with the
// keyboard app.
func EncodeGzip(w io.Writer, entries []ContextEntry) error {
	gz := gzip.NewWriter(w)
	if err := Encode(gz, entries); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}
