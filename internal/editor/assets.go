package editor

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

//go:embed assets/*
var embeddedAssets embed.FS

// Logical asset names listed in assets/manifest.json.
const (
	ScriptAsset = "editor.js"
	StyleAsset  = "editor.css"
)

// AssetResolver maps logical asset names to URLs for the editor HTML shell.
type AssetResolver struct {
	baseURL  string
	manifest map[string]string
}

// NewAssetResolver creates a resolver for embedded or externally hosted assets.
// An empty baseURL serves assets from /assets/.
func NewAssetResolver(baseURL string) (AssetResolver, error) {
	manifest, err := loadEmbeddedManifest()
	if err != nil {
		return AssetResolver{}, err
	}
	return AssetResolver{
		baseURL:  strings.TrimRight(baseURL, "/"),
		manifest: manifest,
	}, nil
}

// URL resolves a logical asset name to a URL using the manifest and base URL.
func (r AssetResolver) URL(logicalName string) (string, error) {
	filename, ok := r.manifest[logicalName]
	if !ok {
		return "", fmt.Errorf("editor: asset not found: %s", logicalName)
	}
	if r.baseURL == "" {
		return "/assets/" + filename, nil
	}
	return r.baseURL + "/" + filename, nil
}

// Files returns the manifest filenames in a stable order.
func (r AssetResolver) Files() []string {
	return []string{r.manifest[ScriptAsset], r.manifest[StyleAsset]}
}

// AssetsFS returns the file system rooted at the embedded assets directory.
func AssetsFS() (fs.FS, error) {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return nil, fmt.Errorf("editor: open embedded assets: %w", err)
	}
	return sub, nil
}

// loadEmbeddedManifest loads the JSON manifest from embedded assets.
func loadEmbeddedManifest() (map[string]string, error) {
	manifestFile, err := embeddedAssets.Open("assets/manifest.json")
	if err != nil {
		return nil, fmt.Errorf("editor: read manifest: %w", err)
	}
	defer manifestFile.Close()

	manifestBytes, err := io.ReadAll(manifestFile)
	if err != nil {
		return nil, fmt.Errorf("editor: read manifest: %w", err)
	}

	var manifest map[string]string
	if err := json.Unmarshal(manifestBytes, &manifest); err != nil {
		return nil, fmt.Errorf("editor: parse manifest: %w", err)
	}
	if len(manifest) == 0 {
		return nil, errors.New("editor: manifest is empty")
	}
	for _, name := range []string{ScriptAsset, StyleAsset} {
		if manifest[name] == "" {
			return nil, fmt.Errorf("editor: manifest is missing %s", name)
		}
	}
	return manifest, nil
}
