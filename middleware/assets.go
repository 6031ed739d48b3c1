package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// LandingAssets are the static files referenced by the landing page
var LandingAssets = []string{
	"css/style.css",
	"js/landing.js",
	"images/favicon.png",
}

var (
	assetVersions   = make(map[string]string)
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes under staticDir for cache busting at startup
func InitAssetVersions(staticDir string) {
	versions := make(map[string]string, len(LandingAssets))
	for _, name := range LandingAssets {
		if version := computeFileHash(filepath.Join(staticDir, name)); version != "" {
			versions[name] = version
		}
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	log.Printf("[INFO] Asset versions initialized: %d of %d files", len(versions), len(LandingAssets))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the version hash of a static file, "1" when unknown.
// ctx is accepted so templ components can call it like the other helpers.
func GetAssetVersion(ctx context.Context, name string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()

	if version, ok := assetVersions[name]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the cache-busted URL of a static file
func AssetURL(ctx context.Context, name string) string {
	return "/static/" + name + "?v=" + GetAssetVersion(ctx, name)
}
