package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Disk store errors.
var (
	// ErrNotFound is returned when no entry is stored under a name.
	ErrNotFound = errors.New("cache: not found")

	// ErrInvalidName is returned for names that are not plain file names.
	ErrInvalidName = errors.New("cache: invalid name")
)

// DiskStore keeps entries as files directly inside Dir. The entry name is
// the file name, used verbatim.
type DiskStore struct {
	Dir string
}

// ValidName reports whether name can be used as an entry name: a non-empty
// plain file name without path separators that is not "." or "..".
func ValidName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`+"\x00"):
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Path returns the file that backs name.
func (d DiskStore) Path(name string) (string, error) {
	if err := ValidName(name); err != nil {
		return "", err
	}
	return filepath.Join(d.Dir, name), nil
}

// Load returns the stored bytes for name.
func (d DiskStore) Load(name string) ([]byte, error) {
	path, err := d.Path(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("cache: load %s: %w", name, err)
	}
	return data, nil
}

// Save stores data under name, replacing any previous entry.
// The file is written under a temporary name and renamed into place.
func (d DiskStore) Save(name string, data []byte) error {
	path, err := d.Path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("cache: create %s: %w", d.Dir, err)
	}

	tmp, err := os.CreateTemp(d.Dir, "."+name+".*.tmp")
	if err != nil {
		return fmt.Errorf("cache: save %s: %w", name, err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cache: save %s: %w", name, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cache: save %s: %w", name, err)
	}
	return nil
}

// Remove deletes the entry stored under name.
func (d DiskStore) Remove(name string) error {
	path, err := d.Path(name)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("cache: remove %s: %w", name, err)
	}
	return nil
}
