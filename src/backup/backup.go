// Package backup names, writes, lists and restores manifest backups. A backup is
// a byte-for-byte copy of the manifest stored next to it as
// <manifest>.backup.<YYYYMMDD_HHMMSS>. Backups are never deleted here.
package backup

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"redmine-plugin-setup/src/fileutil"
)

// TimestampLayout is the local-time suffix of a backup file name.
const TimestampLayout = "20060102_150405"

const marker = ".backup."

// Entry describes one backup found next to a manifest.
type Entry struct {
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
	Size      int64     `json:"size"`
	SHA256    string    `json:"sha256"`
}

// Path returns the backup path for manifestPath taken at now.
func Path(manifestPath string, now time.Time) string {
	return manifestPath + marker + now.Format(TimestampLayout)
}

// createAttempts bounds how many consecutive seconds Create tries before giving up.
const createAttempts = 5

// Create writes content to the backup path for now and returns that path. An
// existing file with the same name is never overwritten: Create moves on to the
// next second, waiting for the wall clock to reach it, and tries again.
func Create(manifestPath string, content []byte, perm os.FileMode, now time.Time) (string, error) {
	for attempt := 1; ; attempt++ {
		p := Path(manifestPath, now)
		err := fileutil.WriteFileExclusive(p, content, perm.Perm())
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("create backup: %w", err)
		}
		if attempt == createAttempts {
			return "", fmt.Errorf("backup %s already exists", p)
		}
		now = now.Truncate(time.Second).Add(time.Second)
		if d := time.Until(now); d > 0 {
			time.Sleep(d)
		}
	}
}

// Timestamp parses the timestamp suffix of a backup path belonging to manifestPath.
func Timestamp(manifestPath, backupPath string) (time.Time, bool) {
	prefix := filepath.Clean(manifestPath) + marker
	backupPath = filepath.Clean(backupPath)
	if !strings.HasPrefix(backupPath, prefix) {
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(TimestampLayout, strings.TrimPrefix(backupPath, prefix), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// List returns the backups of manifestPath, newest first. Files whose suffix is
// not a valid timestamp are ignored.
func List(manifestPath string) ([]Entry, error) {
	dir := filepath.Dir(manifestPath)
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	base := filepath.Base(manifestPath)
	var entries []Entry
	for _, de := range des {
		if de.IsDir() || !strings.HasPrefix(de.Name(), base+marker) {
			continue
		}
		p := filepath.Join(dir, de.Name())
		ts, ok := Timestamp(filepath.Join(dir, base), p)
		if !ok {
			continue
		}
		info, err := de.Info()
		if err != nil {
			return nil, err
		}
		if !info.Mode().IsRegular() {
			continue
		}
		sum, err := sha256File(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Path: p, Timestamp: ts, Size: info.Size(), SHA256: sum})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].Path > entries[j].Path
	})
	return entries, nil
}

// Restore copies backupPath over manifestPath. The current manifest is first
// backed up itself; the path of that safety backup is returned.
func Restore(manifestPath, backupPath string, now time.Time) (string, error) {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return "", fmt.Errorf("read backup: %w", err)
	}
	info, err := os.Stat(manifestPath)
	if err != nil {
		return "", fmt.Errorf("stat manifest: %w", err)
	}
	current, err := os.ReadFile(manifestPath)
	if err != nil {
		return "", fmt.Errorf("read manifest: %w", err)
	}
	safety, err := Create(manifestPath, current, info.Mode(), now)
	if err != nil {
		return "", err
	}
	if err := fileutil.WriteFileAtomic(manifestPath, data, info.Mode().Perm()); err != nil {
		return safety, fmt.Errorf("write manifest: %w", err)
	}
	return safety, nil
}

func sha256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
