// Package assetcache implements the offline asset cache: a cache-first
// proxy over a versioned bundle of static assets. Install eagerly fetches
// the full manifest into a version-named cache, Activate deletes every other
// generation, and Fetch answers from the cache when it can and falls through
// to the network when it cannot. At most one cache generation survives a
// version bump, so two app versions' assets are never served side by side.
package assetcache

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
)

// Version names the current cache generation. Bump it to invalidate every
// previously installed asset on the next activation.
const Version = "cpu-tracker-v3"

// DefaultManifest lists the assets of the app shell: the markup entry point,
// styles, scripts, icon, manifest, and the pinned remote chart and font
// assets. Relative entries are resolved against the configured origin.
var DefaultManifest = []string{
	"./",
	"./index.html",
	"./style.css",
	"./js/i18n.js",
	"./js/store.js",
	"./js/exporter.js",
	"./js/ui.js",
	"./js/app.js",
	"./icon.png",
	"./manifest.json",
	"https://cdn.jsdelivr.net/npm/chart.js",
	"https://fonts.googleapis.com/css2?family=Outfit:wght@300;400;600;700&display=swap",
}

// Cache is a versioned, disk-backed asset cache. It implements
// http.RoundTripper with cache-first semantics: cached responses are served
// without revalidation, misses go to the network and are not stored (only
// Install writes the cache).
type Cache struct {
	root    string // holds one directory per cache generation
	version string
	base    http.RoundTripper
}

// New creates a cache rooted at root for the given version. A nil transport
// falls back to http.DefaultTransport.
func New(root, version string, transport http.RoundTripper) *Cache {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Cache{root: root, version: version, base: transport}
}

// Dir returns the directory of the current cache generation.
func (c *Cache) Dir() string { return filepath.Join(c.root, c.version) }

// key derives the cache file name for a request. The version is part of the
// key space through the directory, not the hash.
func key(method, rawURL string) string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(method+" "+rawURL)))
}

// Install eagerly fetches every manifest asset into the version's cache
// directory. Relative entries are resolved against origin. Any failed fetch
// aborts the whole install and removes the partial cache, matching the
// all-or-nothing install of a cache-first worker.
func (c *Cache) Install(ctx context.Context, origin *url.URL, manifest []string) error {
	dir := c.Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create cache directory %q: %w", dir, err)
	}

	client := &http.Client{Transport: c.base}
	for _, asset := range manifest {
		if err := c.install(ctx, client, origin, asset); err != nil {
			os.RemoveAll(dir)
			return fmt.Errorf("install aborted at %q: %w", asset, err)
		}
	}
	return nil
}

func (c *Cache) install(ctx context.Context, client *http.Client, origin *url.URL, asset string) error {
	u, err := resolve(origin, asset)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	return c.put(key(http.MethodGet, u.String()), resp)
}

// put stores a full dumped response under the given key.
func (c *Cache) put(k string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.Dir(), k), content, 0644)
}

// get retrieves a cached response for the request, or an error on miss.
func (c *Cache) get(k string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.Dir(), k))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// Activate deletes every cache generation other than this one. It is safe to
// call before the first install.
func (c *Cache) Activate() error {
	entries, err := os.ReadDir(c.root)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() && e.Name() != c.version {
			if err := os.RemoveAll(filepath.Join(c.root, e.Name())); err != nil {
				return err
			}
		}
	}
	return nil
}

// RoundTrip answers from the cache when the request was installed, and falls
// through to the network otherwise. No background revalidation, no write on
// miss.
func (c *Cache) RoundTrip(req *http.Request) (*http.Response, error) {
	if cached, err := c.get(key(req.Method, req.URL.String()), req); err == nil {
		return cached, nil
	}
	return c.base.RoundTrip(req)
}

// Client returns an http client whose transport is this cache.
func (c *Cache) Client() *http.Client {
	return &http.Client{Transport: c}
}

// Handler serves incoming requests by resolving their path against origin
// and fetching cache-first, which makes the app shell available with no
// network at all once installed.
func (c *Cache) Handler(origin *url.URL) http.Handler {
	client := c.Client()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := resolve(origin, r.URL.Path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, u.String(), nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp, err := client.Do(req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		defer resp.Body.Close()

		for k, vs := range resp.Header {
			for _, v := range vs {
				w.Header().Add(k, v)
			}
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.Copy(w, resp.Body)
	})
}

// resolve turns a manifest entry or request path into an absolute URL.
// Absolute entries are taken as-is, everything else is resolved against the
// origin.
func resolve(origin *url.URL, asset string) (*url.URL, error) {
	ref, err := url.Parse(asset)
	if err != nil {
		return nil, fmt.Errorf("invalid asset url %q: %w", asset, err)
	}
	if ref.IsAbs() {
		return ref, nil
	}
	if origin == nil {
		return nil, fmt.Errorf("relative asset %q needs an origin", asset)
	}
	return origin.ResolveReference(ref), nil
}
