// Package web embeds the management page: templates and static assets.
// They only consume the JSON API.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates static
var files embed.FS

func Templates() http.FileSystem { return sub("templates") }

func Static() http.FileSystem { return sub("static") }

func sub(dir string) http.FileSystem {
	s, err := fs.Sub(files, dir)
	if err != nil {
		panic(err) // dir is embedded above
	}
	return http.FS(s)
}
