package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/zoobzio/pluck"
)

// document is a decoded file and the codec it was read with.
type document struct {
	path    string
	codec   pluck.Codec
	capsule *pluck.Capsule
}

// load decodes path. A missing file is an empty document when allowMissing
// is set.
func (a *app) load(path string, allowMissing bool) (*document, error) {
	codec, err := codecFor(a.v.GetString(formatFlagName), path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil && !(allowMissing && errors.Is(err, fs.ErrNotExist)) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	capsule, err := pluck.Decode(codec, data, a.engine)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	a.logger.Debug("document loaded",
		"path", path,
		"content_type", codec.ContentType(),
		"bytes", len(data),
	)
	return &document{path: path, codec: codec, capsule: capsule}, nil
}

// save encodes the document back to its file.
func (a *app) save(doc *document) error {
	data, err := doc.capsule.Encode(doc.codec)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", doc.path, err)
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(doc.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(doc.path, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", doc.path, err)
	}

	a.logger.Debug("document saved", "path", doc.path, "bytes", len(data))
	return nil
}
