package repository

import "io"

// ImageStore persists uploaded files (product images, artisan
// certificates).
type ImageStore interface {
	// Save writes the file under subdir and returns the relative path to
	// keep on the record, e.g. "products/3f2a9c.jpg".
	Save(subdir, filename string, content io.Reader) (string, error)
	// Remove deletes a previously saved file. Removing a missing file is
	// not an error.
	Remove(relPath string) error
}
