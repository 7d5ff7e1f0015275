package bootstrap5

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*.html
var embeddedAssets embed.FS

// TemplatesFS exposes the embedded chrome template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

func readAsset(name string) string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+name)
	if err != nil {
		return ""
	}
	return string(data)
}
