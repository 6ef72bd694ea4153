package content

import (
	"embed"
	"io/fs"

	"github.com/spf13/afero"
)

//go:embed data/*.yaml
var embedded embed.FS

// EmbeddedFS returns the content compiled into the binary as a read-only afero.Fs.
func EmbeddedFS() afero.Fs {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// The pattern above guarantees the directory exists.
		panic(err)
	}
	return afero.NewReadOnlyFs(afero.FromIOFS{FS: sub})
}

// DirFS returns an afero.Fs rooted at dir on the local disk.
func DirFS(dir string) afero.Fs {
	return afero.NewBasePathFs(afero.NewOsFs(), dir)
}
