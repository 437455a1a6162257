package contacts

import (
	"io/fs"

	vanilla "github.com/goliatone/go-contacts/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the stylesheet and the delete runtime script the
// vanilla page links to.
//
// Typical mount:
//
//	mux.Handle("GET /assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(contacts.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
