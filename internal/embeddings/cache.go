package embeddings

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Cache stores snippet embedding vectors on disk, keyed by model and content
// hash. A snippet whose content changes gets a new key, so stale vectors are
// never served.
type Cache struct {
	dir string
}

// NewCache opens (and creates if needed) a vector cache directory
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create embedding cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Key derives the cache file name for a snippet's content under a model
func (c *Cache) Key(model, content string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + content))
	return fmt.Sprintf("%x.vec", sum[:16])
}

// Get returns the cached vector for a key, or ok=false on a miss
func (c *Cache) Get(key string) ([]float64, bool) {
	vec, err := readVector(filepath.Join(c.dir, key))
	if err != nil {
		return nil, false
	}
	return vec, true
}

// Put stores a vector under a key. The write goes through a temp file and
// rename so a crash never leaves a truncated vector behind.
func (c *Cache) Put(key string, vec []float64) error {
	if err := ValidateVector(vec); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create embedding file: %w", err)
	}
	defer os.Remove(tmp.Name())

	for _, val := range vec {
		if err := binary.Write(tmp, binary.LittleEndian, val); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write embedding value: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close embedding file: %w", err)
	}

	return os.Rename(tmp.Name(), filepath.Join(c.dir, key))
}

// readVector reads a binary little-endian float64 vector file
func readVector(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedding file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat embedding file: %w", err)
	}

	size := stat.Size()
	if size == 0 {
		return nil, fmt.Errorf("embedding file is empty")
	}
	if size%8 != 0 {
		return nil, fmt.Errorf("invalid embedding file size: %d (not a multiple of 8)", size)
	}

	vec := make([]float64, size/8)
	for i := range vec {
		if err := binary.Read(file, binary.LittleEndian, &vec[i]); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("unexpected EOF at element %d", i)
			}
			return nil, fmt.Errorf("failed to read embedding value at %d: %w", i, err)
		}
	}

	return vec, nil
}
