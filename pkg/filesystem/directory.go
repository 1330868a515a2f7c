package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"syscall"
	"unicode/utf8"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// DirectoryEntry is one successfully inspected member of a directory.
// Owner is empty when the owning uid has no user record; SymlinkTarget is
// empty when the member is not a symbolic link. Neither is an error.
type DirectoryEntry struct {
	Name          string
	Permissions   UnixPermissions
	Kind          EntryKind
	Size          DigitalSize
	Owner         string
	SymlinkTarget string
}

// Directory is an open traversal session over one path. It owns the
// underlying directory stream exclusively; the stream is consumed exactly
// once by Entries and is not restartable.
type Directory struct {
	Log      *logrus.Entry
	path     string
	handle   *os.File
	consumed bool
}

// OpenDirectory opens a traversal session at the given path. This is the
// only fatal failure point of a listing: a path that is missing, unreadable
// or not a directory returns an error.
func OpenDirectory(log *logrus.Entry, path string) (*Directory, error) {
	handle, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	info, err := handle.Stat()
	if err != nil {
		handle.Close()
		return nil, errors.Wrap(err, 0)
	}
	if !info.IsDir() {
		handle.Close()
		return nil, errors.Errorf("%s is not a directory", path)
	}
	return &Directory{Log: log, path: path, handle: handle}, nil
}

func (d *Directory) Path() string {
	return d.path
}

// Entries consumes the stream and returns one record per member whose name
// and metadata could both be obtained, sorted by name in byte order.
// Members that fail either step are dropped silently so that one bad entry
// never hides the rest. A second call returns an empty list.
func (d *Directory) Entries() []DirectoryEntry {
	entries := []DirectoryEntry{}
	if d.consumed {
		return entries
	}
	d.consumed = true

	// a stream error may truncate the batch; whatever came back before the
	// error is still worth reporting
	rawEntries, err := d.handle.ReadDir(-1)
	if err != nil {
		d.Log.Debug(err)
	}

	for _, rawEntry := range rawEntries {
		name := rawEntry.Name()
		if !utf8.ValidString(name) {
			continue
		}
		path := filepath.Join(d.path, name)

		// Stat follows symlinks, matching the report's semantics: a link's
		// kind, size and owner are those of its target, and a dangling link
		// has no metadata at all, so it is dropped like any vanished member.
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		stat, ok := info.Sys().(*syscall.Stat_t)
		if !ok {
			continue
		}

		symlinkTarget, err := os.Readlink(path)
		if err != nil {
			symlinkTarget = ""
		}

		owner, _ := LookupOwner(stat.Uid)

		entries = append(entries, DirectoryEntry{
			Name:          name,
			Permissions:   NewUnixPermissions(uint32(stat.Mode)),
			Kind:          KindFromMode(info.Mode()),
			Size:          NewDigitalSize(uint64(info.Size())),
			Owner:         owner,
			SymlinkTarget: symlinkTarget,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries
}

// Close releases the directory handle.
func (d *Directory) Close() error {
	return d.handle.Close()
}
