package cli

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	configPath string
	addr       string
	dir        string
}

// newServeCmd creates the serve command, a small preview server for
// generated diagrams: an index page linking every SVG in the output
// directory, plus the files themselves.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview generated diagrams in a browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if opts.dir == "" {
				opts.dir = cfg.OutputDir
			}
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default chordchart.toml if present)")
	cmd.Flags().StringVar(&opts.addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "directory of generated diagrams")

	return cmd
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>chordchart diagrams</title></head>
<body>
<h1>Chord reference diagrams</h1>
<ul>
{{range .}}<li><a href="/diagrams/{{.}}">{{.}}</a></li>
{{end}}</ul>
</body>
</html>
`))

// newServeMux builds the preview router: an index of SVG diagrams under /
// and the static files under /diagrams/.
func newServeMux(dir string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		names, err := listDiagrams(dir)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = indexTemplate.Execute(w, names)
	})

	r.Handle("/diagrams/*", http.StripPrefix("/diagrams/", http.FileServer(http.Dir(dir))))

	return r
}

// listDiagrams returns the SVG filenames in dir, sorted.
func listDiagrams(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read diagrams directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".svg") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// runServe serves until the context is cancelled.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newServeMux(opts.dir),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving %s on http://%s", opts.dir, opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
