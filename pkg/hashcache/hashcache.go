// Package hashcache records content hashes of branding inputs for the
// external incremental-build layer. The pipeline only ever registers
// hashes here; it never consults them for its own decisions.
package hashcache

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/brandforge/brandforge/pkg/errors"
	"github.com/brandforge/brandforge/pkg/logging"
	"github.com/brandforge/brandforge/pkg/types"
)

// ManifestFile is the persisted hash manifest inside the cache directory
const ManifestFile = "hashes.toml"

// Cache is a content-hash registry persisted as a TOML manifest.
type Cache struct {
	fsys     types.FS
	manifest string
	entries  map[string]string
}

// manifestDoc is the on-disk shape of the manifest
type manifestDoc struct {
	Hashes map[string]string `toml:"hashes"`
}

// Open loads (or initializes) the cache manifest under cacheDir.
func Open(fsys types.FS, cacheDir string) (*Cache, error) {
	c := &Cache{
		fsys:     fsys,
		manifest: filepath.Join(cacheDir, ManifestFile),
		entries:  make(map[string]string),
	}

	data, err := fsys.ReadFile(c.manifest)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read hash manifest %s", c.manifest)
	}

	var doc manifestDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "corrupt hash manifest %s", c.manifest)
	}
	if doc.Hashes != nil {
		c.entries = doc.Hashes
	}
	return c, nil
}

// Register computes the content hash of path and persists it in the
// manifest keyed by the file's absolute path.
func (c *Cache) Register(path string) error {
	logger := logging.GetLogger("hashcache")

	sum, err := c.checksum(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot hash %s", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	c.entries[abs] = sum

	if err := c.save(); err != nil {
		return err
	}

	logger.Debug().Str("path", abs).Str("hash", sum).Msg("registered content hash")
	return nil
}

// Lookup returns the registered hash for path, if any. Exposed for the
// incremental-build layer; the branding pipeline itself never calls it.
func (c *Cache) Lookup(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	sum, ok := c.entries[abs]
	return sum, ok
}

// checksum calculates the SHA256 checksum of a file
func (c *Cache) checksum(path string) (string, error) {
	data, err := c.fsys.ReadFile(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data)), nil
}

func (c *Cache) save() error {
	data, err := toml.Marshal(manifestDoc{Hashes: c.entries})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode hash manifest")
	}
	if err := c.fsys.MkdirAll(filepath.Dir(c.manifest), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create cache directory for %s", c.manifest)
	}
	if err := c.fsys.WriteFile(c.manifest, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write hash manifest %s", c.manifest)
	}
	return nil
}
