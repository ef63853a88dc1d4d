package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"vardecl/internal/diag"
	"vardecl/internal/source"
)

// Current schema version - increment when Summary format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит итоги проверки по sha256 содержимого файла.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// Summary is the cacheable outcome of checking one file: everything batch
// output needs, with spans stored as offsets only.
type Summary struct {
	Schema      uint16             `msgpack:"schema"`
	Accepted    bool               `msgpack:"accepted"`
	Symbols     map[string]string  `msgpack:"symbols"`
	Diagnostics []CachedDiagnostic `msgpack:"diagnostics"`
}

type CachedDiagnostic struct {
	Severity uint8        `msgpack:"severity"`
	Code     uint16       `msgpack:"code"`
	Start    uint32       `msgpack:"start"`
	End      uint32       `msgpack:"end"`
	Message  string       `msgpack:"message"`
	Notes    []CachedNote `msgpack:"notes,omitempty"`
	Fixes    []CachedFix  `msgpack:"fixes,omitempty"`
}

type CachedNote struct {
	Start uint32 `msgpack:"start"`
	End   uint32 `msgpack:"end"`
	Msg   string `msgpack:"msg"`
}

type CachedFix struct {
	Title   string `msgpack:"title"`
	Start   uint32 `msgpack:"start"`
	End     uint32 `msgpack:"end"`
	NewText string `msgpack:"new_text"`
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "results", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a summary to the disk cache.
func (c *DiskCache) Put(key [32]byte, payload *Summary) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после Rename файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a summary. A missing entry or one written by another schema
// version is a miss.
func (c *DiskCache) Get(key [32]byte, out *Summary) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// Summarize flattens a result for caching and batch output.
func Summarize(res *CheckResult) *Summary {
	s := &Summary{
		Schema:   diskCacheSchemaVersion,
		Accepted: res.Accepted(),
	}
	if res.Table != nil {
		s.Symbols = res.Table.Strings()
	}
	for _, d := range res.Bag.Items() {
		if d.Code == diag.ObsTimings {
			continue
		}
		cd := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Start: n.Span.Start, End: n.Span.End, Msg: n.Msg})
		}
		for _, fix := range d.Fixes {
			for _, e := range fix.Edits {
				cd.Fixes = append(cd.Fixes, CachedFix{Title: fix.Title, Start: e.Span.Start, End: e.Span.End, NewText: e.NewText})
			}
		}
		s.Diagnostics = append(s.Diagnostics, cd)
	}
	return s
}

// Bag rebuilds the diagnostics of s inside file.
func (s *Summary) Bag(file source.FileID, maxDiagnostics int) *diag.Bag {
	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range s.Diagnostics {
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), source.Span{File: file, Start: cd.Start, End: cd.End}, cd.Message)
		for _, n := range cd.Notes {
			d = d.WithNote(source.Span{File: file, Start: n.Start, End: n.End}, n.Msg)
		}
		for _, f := range cd.Fixes {
			d = d.WithFix(f.Title, diag.FixEdit{Span: source.Span{File: file, Start: f.Start, End: f.End}, NewText: f.NewText})
		}
		bag.Add(d)
	}
	return bag
}
