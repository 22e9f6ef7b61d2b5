// Package contextcache is the node-local staging area for uploaded build
// contexts. A builder pod spawned on the cluster fetches its context back
// over HTTP from the replica that accepted the build.
package contextcache

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

const archiveName = "context.zip"

// ErrContextTooLarge is returned by Save when r is an *io.LimitedReader and
// its N reaches zero, meaning the context exceeded the caller's configured
// size cap. The archive is never committed in that case.
var ErrContextTooLarge = errors.New("build context exceeds configured size limit")

// Cache roots build contexts under a single directory, one subdirectory
// per build id.
type Cache struct {
	root        string
	podName     string
	serviceName string
	port        int
	log         *zap.Logger
}

func New(root, podName, serviceName string, port int, log *zap.Logger) *Cache {
	return &Cache{root: root, podName: podName, serviceName: serviceName, port: port, log: log}
}

// PathFor is a pure function of (root, buildID).
func (c *Cache) PathFor(buildID string) string {
	return filepath.Join(c.root, buildID, archiveName)
}

func (c *Cache) dirFor(buildID string) string {
	return filepath.Join(c.root, buildID)
}

// Save creates the build's directory (it must not pre-exist), streams r
// into a temp file in that directory, and renames it into place so the
// archive is never observed partially written. If r is an *io.LimitedReader
// that runs out of budget, Save removes everything it wrote and returns
// ErrContextTooLarge instead of committing a truncated archive. Returns the
// URL the builder pod should use to fetch it back.
func (c *Cache) Save(buildID string, r io.Reader) (string, error) {
	dir := c.dirFor(buildID)
	if err := os.Mkdir(dir, 0o755); err != nil {
		return "", fmt.Errorf("context directory for build %s: %w", buildID, err)
	}

	tmp, err := os.CreateTemp(dir, ".context-*.tmp")
	if err != nil {
		os.Remove(dir)
		return "", fmt.Errorf("creating temp context file for build %s: %w", buildID, err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		os.Remove(dir)
		return "", fmt.Errorf("writing context for build %s: %w", buildID, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		os.Remove(dir)
		return "", fmt.Errorf("closing context for build %s: %w", buildID, err)
	}

	if lr, ok := r.(*io.LimitedReader); ok && lr.N <= 0 {
		os.Remove(tmpPath)
		os.Remove(dir)
		return "", ErrContextTooLarge
	}

	if err := os.Rename(tmpPath, c.PathFor(buildID)); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("persisting context for build %s: %w", buildID, err)
	}

	return c.urlFor(buildID), nil
}

func (c *Cache) urlFor(buildID string) string {
	return fmt.Sprintf("http://%s.%s:%d/contexts/%s/%s", c.podName, c.serviceName, c.port, buildID, archiveName)
}

// Clean best-effort removes a build's directory. Errors are logged and
// swallowed: cleanup is never allowed to fail a request.
func (c *Cache) Clean(buildID string) {
	if err := os.RemoveAll(c.dirFor(buildID)); err != nil {
		c.log.Warn("failed to clean build context", zap.String("build_id", buildID), zap.Error(err))
	}
}

// Serve streams the archive for an HTTP GET, responding 404 if it is absent.
func (c *Cache) Serve(w http.ResponseWriter, r *http.Request, buildID string) {
	path := c.PathFor(buildID)
	f, err := os.Open(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, archiveName, info.ModTime(), f)
}
