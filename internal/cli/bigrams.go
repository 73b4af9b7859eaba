package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bluezoo/chordchart/pkg/bigram"
	"github.com/bluezoo/chordchart/pkg/errors"
)

// norvigBigramURL is Peter Norvig's bigram frequency list, derived from
// the Google Web Trillion Word Corpus (~5.6 MB, English).
const norvigBigramURL = "https://norvig.com/ngrams/count_2w.txt"

// bigramsOpts holds the command-line flags for the bigrams command.
type bigramsOpts struct {
	lang         string
	input        string
	wordlistDir  string
	outputDir    string
	maxContexts  int
	maxFollowers int
}

// newBigramsCmd creates the bigrams command, which prepares the bundled
// word-pair suggestion data: it filters a bigram frequency corpus against
// the app's word list and writes a compact gzip file.
//
// For English the Norvig corpus is downloaded on first use and cached in
// the user cache directory. Other languages need a local corpus file via
// --input (space-separated "word1 word2 count" or Norvig format).
func newBigramsCmd() *cobra.Command {
	opts := bigramsOpts{
		maxContexts:  bigram.DefaultOptions.MaxContexts,
		maxFollowers: bigram.DefaultOptions.MaxFollowers,
	}

	cmd := &cobra.Command{
		Use:   "bigrams",
		Short: "Generate bundled bigram suggestion data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBigrams(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.lang, "lang", "en", "language code")
	cmd.Flags().StringVar(&opts.input, "input", "", "local bigram corpus file (default: download Norvig data)")
	cmd.Flags().StringVar(&opts.wordlistDir, "wordlists", "app/src/main/assets/wordlists", "word list directory")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "app/src/main/assets/bigrams", "output directory")
	cmd.Flags().IntVar(&opts.maxContexts, "max-contexts", opts.maxContexts, "context words kept")
	cmd.Flags().IntVar(&opts.maxFollowers, "max-followers", opts.maxFollowers, "followers kept per context")

	return cmd
}

func runBigrams(ctx context.Context, opts *bigramsOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	wordlistPath := filepath.Join(opts.wordlistDir, opts.lang+".txt")
	wf, err := os.Open(wordlistPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "word list %s", wordlistPath)
	}
	vocab, err := bigram.LoadVocabulary(wf)
	wf.Close()
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d words from %s.txt", len(vocab), opts.lang)

	corpusPath := opts.input
	if corpusPath == "" {
		if corpusPath, err = fetchCorpus(ctx); err != nil {
			return err
		}
	}

	cf, err := os.Open(corpusPath)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "corpus %s", corpusPath)
	}
	pairs, err := bigram.ParseCorpus(cf)
	cf.Close()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidCorpus, err, "parse %s", corpusPath)
	}
	logger.Infof("Parsed %d raw bigram entries", len(pairs))

	entries := bigram.Build(pairs, vocab, bigram.Options{
		MaxContexts:  opts.maxContexts,
		MaxFollowers: opts.maxFollowers,
	})
	logger.Debugf("Kept %d context words", len(entries))

	if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
		return err
	}
	outPath := filepath.Join(opts.outputDir, opts.lang+".gz")
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := bigram.EncodeGzip(out, entries); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	printSuccess("%s", outPath)
	prog.done(fmt.Sprintf("Wrote %d context words to %s", len(entries), outPath))
	return nil
}

// fetchCorpus downloads the Norvig bigram corpus, caching it in the user
// cache directory so repeated runs stay offline.
func fetchCorpus(ctx context.Context) (string, error) {
	logger := loggerFromContext(ctx)

	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	cachePath := filepath.Join(cacheDir, "chordchart", "count_2w.txt")
	if _, err := os.Stat(cachePath); err == nil {
		logger.Debugf("Using cached corpus %s", cachePath)
		return cachePath, nil
	}

	logger.Infof("Downloading %s", norvigBigramURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, norvigBigramURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.New(errors.ErrCodeInternal, "download corpus: HTTP %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return "", err
	}
	tmp := cachePath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, cachePath); err != nil {
		return "", err
	}
	logger.Debugf("Cached corpus at %s", cachePath)
	return cachePath, nil
}
