package ui

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates static
var uiFS embed.FS

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(uiFS, "templates/*.html")
}

// GetFileSystem returns the embedded static asset filesystem
func GetFileSystem() (http.FileSystem, error) {
	// Serve files relative to static/ without including "static" in URLs
	fsys, err := fs.Sub(uiFS, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(fsys), nil
}
