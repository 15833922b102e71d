package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrEmptyFilename is returned when nothing usable remains of the
// client-supplied filename after sanitizing.
var ErrEmptyFilename = errors.New("empty filename")

// Dir is a filesystem blob store for uploaded stage plans. Files are
// referenced by their generated name only; the name never contains a
// path separator.
type Dir struct {
	root string
}

func New(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Dir{root: root}, nil
}

// Save writes src under a generated name: a timestamp prefix avoids
// collisions, sanitizing defuses path traversal. Returns the stored name.
func (d *Dir) Save(src io.Reader, original string) (string, error) {
	name := Sanitize(original)
	if name == "" {
		return "", ErrEmptyFilename
	}
	name = time.Now().Format("20060102_150405") + "_" + name

	dst, err := os.Create(filepath.Join(d.root, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Path returns the on-disk location of a stored blob, or false when the
// name is not a plain stored filename or the blob does not exist.
func (d *Dir) Path(name string) (string, bool) {
	if name == "" || name != filepath.Base(name) {
		return "", false
	}
	p := filepath.Join(d.root, name)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", false
	}
	return p, true
}

// Remove deletes a stored blob. A missing blob is not an error.
func (d *Dir) Remove(name string) error {
	if name == "" || name != filepath.Base(name) {
		return nil
	}
	err := os.Remove(filepath.Join(d.root, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Sanitize reduces a client-supplied filename to a safe base name:
// directories are stripped and anything outside [A-Za-z0-9._-] becomes
// an underscore. Leading dots are dropped so no hidden or "." names
// come out.
func Sanitize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return strings.TrimLeft(b.String(), ".")
}
