package filesum

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/idelchi/filesum/internal/log"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrNotADirectory is returned when the scan root exists but is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// Options configures a scan.
type Options struct {
	// Path is the directory to scan.
	Path string
	// ProgressInterval is the minimum time between progress callbacks.
	ProgressInterval time.Duration
}

// ScanResult is the outcome of a single traversal.
type ScanResult struct {
	// Root is the cleaned directory that was scanned.
	Root string
	// Records holds one entry per regular file, in traversal order.
	Records []FileRecord
	// ErrorCount is the number of entries skipped because of errors.
	ErrorCount int
	// Elapsed is the time taken by the traversal.
	Elapsed time.Duration
}

// collector accumulates records from fastwalk callbacks.
type collector struct {
	mu         sync.Mutex
	records    []FileRecord
	totalBytes int64
	errorCount int

	hook     func(files, bytes int64)
	interval time.Duration
	lastTick time.Time
}

func newCollector(hook func(int64, int64), interval time.Duration) *collector {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	return &collector{
		records:  make([]FileRecord, 0),
		hook:     hook,
		interval: interval,
		lastTick: time.Now(),
	}
}

func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorCount++
}

// add records a file and reports progress if the interval has elapsed.
func (c *collector) add(record FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, record)
	c.totalBytes += record.Size

	if c.hook == nil {
		return
	}

	if now := time.Now(); now.Sub(c.lastTick) >= c.interval {
		c.lastTick = now
		c.hook(int64(len(c.records)), c.totalBytes)
	}
}

// fileInfo returns the metadata to record for d, or nil if d is not a file.
// Symlinks are resolved; only links to regular files are kept.
func fileInfo(path string, d fs.DirEntry) (fs.FileInfo, error) {
	switch {
	case d.Type()&fs.ModeSymlink != 0:
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("resolving symlink: %w", err)
		}

		if !info.Mode().IsRegular() {
			return nil, nil //nolint:nilnil // Links to directories are not files
		}

		return info, nil
	case d.Type().IsRegular():
		return d.Info()
	default:
		return nil, nil //nolint:nilnil // Devices, sockets, pipes
	}
}

// Scan walks the directory tree at opt.Path and returns one FileRecord per
// regular file found below it.
//
// The root must be an existing directory; otherwise Scan fails before walking.
// Entries that cannot be read during the walk are skipped and counted in
// ScanResult.ErrorCount. A symlink to a regular file is recorded with the
// target's size and modification time; symlinks to directories are not
// descended into, and dangling links count as errors.
//
// progressHook, if not nil, receives running file and byte totals at most once
// per opt.ProgressInterval. The walk can be cancelled via ctx.
func Scan(ctx context.Context, opt Options, progressHook func(files, bytes int64)) (*ScanResult, error) {
	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	if info, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("path %q: %w", opt.Path, ErrNotADirectory)
	}

	c := newCollector(progressHook, opt.ProgressInterval)

	log.Debug().Str("root", opt.Path).Msg("starting scan")

	start := time.Now()

	// A single worker keeps the traversal sequential.
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug().Str("path", path).Err(err).Msg("skipping unreadable entry")
			c.addError()

			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			return nil
		}

		info, err := fileInfo(path, d)
		if err != nil {
			log.Debug().Str("path", path).Err(err).Msg("skipping file without metadata")
			c.addError()

			return nil //nolint:nilerr // Per-file faults do not abort the scan
		}

		if info == nil {
			return nil
		}

		c.add(FileRecord{
			Path:      path,
			Extension: Extension(d.Name()),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		})

		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %q: %w", opt.Path, walkErr)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	result := &ScanResult{
		Root:       opt.Path,
		Records:    c.records,
		ErrorCount: c.errorCount,
		Elapsed:    time.Since(start),
	}

	log.Debug().
		Int("files", len(result.Records)).
		Int("errors", result.ErrorCount).
		Dur("elapsed", result.Elapsed).
		Msg("scan finished")

	return result, nil
}
