package manifest

import "errors"

var (
	// ErrManifestNotFound means no manifest file exists at the given location.
	ErrManifestNotFound = errors.New("manifest not found")
	// ErrNoVersion means the manifest was read but holds no version.
	ErrNoVersion = errors.New("no version found")
	// ErrAmbiguousVersion means the regex scan found more than one version.
	ErrAmbiguousVersion = errors.New("more than one version found")
	// ErrUnknownFormat means a format name is not supported.
	ErrUnknownFormat = errors.New("unknown manifest format")
)
