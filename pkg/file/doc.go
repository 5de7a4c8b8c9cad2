// Package file gives read access to files kept on the local filesystem or in
// Amazon S3 (and S3-compatible services) behind a single Storage interface.
//
// LocalStorage confines every path to its base directory; absolute paths and
// paths escaping the root fail with ErrInvalidPath. S3Storage resolves paths
// to object keys under an optional prefix and classifies SDK errors into the
// package sentinels:
//
//	f, err := store.Open(ctx, "books.xml")
//	switch {
//	case errors.Is(err, file.ErrFileNotFound):
//		// 404
//	case errors.Is(err, file.ErrOperationCanceled):
//		// client went away
//	}
//	defer f.Close()
//
// Readers returned by Open are bound to the context passed to Open: once it
// is done, Read fails with ErrOperationCanceled or ErrOperationTimeout.
package file
