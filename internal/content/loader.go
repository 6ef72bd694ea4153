package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/nfrund/hidaya/internal/domain"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// contentPattern selects the files a source contributes.
const contentPattern = "**/*.{yaml,yml}"

// Load decodes every content file from the given sources into a single Site.
// Sources are applied in order and files within a source in lexical order, so
// a later file replaces the lists an earlier one set and adds to its glossary.
func Load(sources ...afero.Fs) (*Site, error) {
	site := &Site{}
	found := 0

	for i, src := range sources {
		files, err := contentFiles(src)
		if err != nil {
			return nil, fmt.Errorf("failed to list content files in source %d: %w", i, err)
		}
		for _, name := range files {
			if err := decodeFile(src, name, site); err != nil {
				return nil, err
			}
			found++
		}
	}

	if found == 0 {
		return nil, domain.ErrContentNotFound
	}
	return site, nil
}

// contentFiles returns the content files of src in lexical order. A source
// whose root does not exist contributes nothing.
func contentFiles(src afero.Fs) ([]string, error) {
	if ok, err := afero.DirExists(src, "/"); err == nil && !ok {
		return nil, nil
	}

	files, err := doublestar.Glob(afero.NewIOFS(src), contentPattern)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func decodeFile(src afero.Fs, name string, site *Site) error {
	data, err := afero.ReadFile(src, name)
	if err != nil {
		return fmt.Errorf("could not read content file %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		slog.Debug("Skipping empty content file", "file", name)
		return nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(site); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidContent, path.Clean(name), err)
	}

	slog.Debug("Loaded content file", "file", name)
	return nil
}
