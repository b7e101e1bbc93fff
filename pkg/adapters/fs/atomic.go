package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/noteapp/pkg/core"
)

// TempFilePrefix marks the scratch file a save writes before swapping it in.
const TempFilePrefix = ".noteapp-tmp-"

// fileStamp identifies one version of the store file on disk.
type fileStamp struct {
	modTime time.Time
	size    int64
}

func stampOf(info os.FileInfo) fileStamp {
	return fileStamp{modTime: info.ModTime(), size: info.Size()}
}

func (f fileStamp) isZero() bool {
	return f.modTime.IsZero()
}

// replaceFile swaps the file at path for data in one rename, creating the
// parent directory when it is missing. Readers see the old or the new
// document, never a partial one. Every failure is core.ErrPersistence.
func replaceFile(path string, data []byte, perm os.FileMode) (fileStamp, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fileStamp{}, fmt.Errorf("%w: cannot create %s: %w", core.ErrPersistence, dir, err)
	}

	scratch, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fileStamp{}, fmt.Errorf("%w: cannot stage save of %s: %w", core.ErrPersistence, path, err)
	}
	name := scratch.Name()
	defer os.Remove(name) // gone already once renamed

	if err := fill(scratch, data, perm); err != nil {
		return fileStamp{}, fmt.Errorf("%w: cannot stage save of %s: %w", core.ErrPersistence, path, err)
	}
	if err := os.Rename(name, path); err != nil {
		return fileStamp{}, fmt.Errorf("%w: cannot replace %s: %w", core.ErrPersistence, path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		// The new document is in place; only the stamp is unknown.
		return fileStamp{}, nil
	}
	return stampOf(info), nil
}

// fill writes, syncs and closes f, leaving it with mode perm.
func fill(f *os.File, data []byte, perm os.FileMode) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Chmod(f.Name(), perm)
}

func isTempFile(name string) bool {
	base := filepath.Base(name)
	return len(base) > len(TempFilePrefix) && strings.HasPrefix(base, TempFilePrefix)
}
