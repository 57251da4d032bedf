package gol10n

import (
	"path/filepath"
	"strings"
)

// PathTemplate computes a locale-specific output path from an input path.
// It supports a closed set of placeholders, substituted verbatim with no
// recursive expansion:
//
//	${path}  directory of the original path
//	${name}  base name without extension
//	${ext}   extension without the leading dot
//	${lang}  locale identifier
type PathTemplate string

// DefaultPathTemplate turns "test/helloworld.html" + "de_DE" into
// "test/helloworld-de_DE.html".
const DefaultPathTemplate PathTemplate = "${path}/${name}-${lang}.${ext}"

// Render expands the template for the given original path and locale id.
func (t PathTemplate) Render(originalPath, lang string) string {
	dir := filepath.Dir(originalPath)
	base := filepath.Base(originalPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	ext = strings.TrimPrefix(ext, ".")

	rendered := strings.NewReplacer(
		"${path}", dir,
		"${name}", name,
		"${ext}", ext,
		"${lang}", lang,
	).Replace(string(t))

	return filepath.Clean(rendered)
}
