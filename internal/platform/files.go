package platform

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/ytget/file-grouper/internal/model"
)

// Seams for tests
var (
	osStat = os.Stat
	osOpen = os.Open
)

// ReadDirectory lists the immediate children of dirPath. Children are
// classified by what they resolve to, so a symlink to a directory is a
// folder. Entries that cannot be resolved, and entries that are neither a
// directory nor a regular file, are skipped.
func ReadDirectory(dirPath string) (*model.DirectoryListing, error) {
	info, err := osStat(dirPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, dirPath)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dirPath)
	}

	dir, err := osOpen(dirPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer dir.Close()

	// Only failing to open the directory is an error. Entries read before a
	// mid-listing failure are kept.
	entries, err := dir.ReadDir(-1)
	if err != nil {
		log.Printf("Partial read of %s: %v", dirPath, err)
	}

	listing := model.NewDirectoryListing()
	for _, entry := range entries {
		switch entryKind(dirPath, entry) {
		case kindFolder:
			listing.Folders = append(listing.Folders, entry.Name())
		case kindFile:
			listing.Files = append(listing.Files, entry.Name())
		}
	}

	slices.Sort(listing.Folders)
	slices.Sort(listing.Files)

	return listing, nil
}

type entryKindType int

const (
	kindSkip entryKindType = iota
	kindFolder
	kindFile
)

// entryKind resolves an entry's type. Plain directories and regular files are
// answered from the directory read; anything else (symlinks, or platforms
// that do not report a type) is stat'ed through its full path.
func entryKind(dirPath string, entry fs.DirEntry) entryKindType {
	mode := entry.Type()
	switch {
	case mode.IsDir():
		return kindFolder
	case mode.IsRegular():
		return kindFile
	case mode&fs.ModeSymlink == 0 && mode&fs.ModeType != 0:
		// device, pipe, socket
		return kindSkip
	}

	info, err := osStat(filepath.Join(dirPath, entry.Name()))
	if err != nil {
		return kindSkip
	}
	switch {
	case info.IsDir():
		return kindFolder
	case info.Mode().IsRegular():
		return kindFile
	default:
		return kindSkip
	}
}
