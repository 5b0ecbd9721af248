package editor

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Defaults for the editor page.
const (
	DefaultTitle    = "Question Bank Editor"
	DefaultEndpoint = "/questions"
)

// PageData is everything the editor HTML shell needs.
type PageData struct {
	Title     string
	ScriptURL string
	StyleURL  string
	Endpoint  string
}

// Options configures how the page references its assets and API.
type Options struct {
	Title         string
	Endpoint      string
	AssetsBaseURL string
}

// NewPageData resolves asset URLs and fills defaults.
func NewPageData(opts Options) (PageData, error) {
	resolver, err := NewAssetResolver(opts.AssetsBaseURL)
	if err != nil {
		return PageData{}, err
	}
	scriptURL, err := resolver.URL(ScriptAsset)
	if err != nil {
		return PageData{}, err
	}
	styleURL, err := resolver.URL(StyleAsset)
	if err != nil {
		return PageData{}, err
	}
	data := PageData{
		Title:     strings.TrimSpace(opts.Title),
		ScriptURL: scriptURL,
		StyleURL:  styleURL,
		Endpoint:  strings.TrimSpace(opts.Endpoint),
	}
	if data.Title == "" {
		data.Title = DefaultTitle
	}
	if data.Endpoint == "" {
		data.Endpoint = DefaultEndpoint
	}
	return data, nil
}

// Render writes the editor page for data to w.
func Render(ctx context.Context, w io.Writer, data PageData) error {
	return Page(data).Render(ctx, w)
}

// Generate writes index.html and the embedded assets into dir.
// Assets land in dir/assets so the page works when dir is served as a web root.
func Generate(ctx context.Context, dir string, opts Options) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("editor: output directory is required")
	}
	opts.AssetsBaseURL = ""
	data, err := NewPageData(opts)
	if err != nil {
		return nil, err
	}
	assetsDir := filepath.Join(dir, "assets")
	if err := os.MkdirAll(assetsDir, 0o755); err != nil {
		return nil, fmt.Errorf("editor: create output directory: %w", err)
	}

	indexPath := filepath.Join(dir, "index.html")
	index, err := os.Create(indexPath)
	if err != nil {
		return nil, fmt.Errorf("editor: create index: %w", err)
	}
	renderErr := Render(ctx, index, data)
	closeErr := index.Close()
	if renderErr != nil {
		return nil, fmt.Errorf("editor: render index: %w", renderErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("editor: write index: %w", closeErr)
	}
	written := []string{indexPath}

	assets, err := AssetsFS()
	if err != nil {
		return nil, err
	}
	resolver, err := NewAssetResolver("")
	if err != nil {
		return nil, err
	}
	for _, name := range resolver.Files() {
		payload, err := fs.ReadFile(assets, name)
		if err != nil {
			return nil, fmt.Errorf("editor: read asset %s: %w", name, err)
		}
		target := filepath.Join(assetsDir, name)
		if err := os.WriteFile(target, payload, 0o644); err != nil {
			return nil, fmt.Errorf("editor: write asset %s: %w", name, err)
		}
		written = append(written, target)
	}
	return written, nil
}
