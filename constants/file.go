package constants

import "strings"

// AllowedExtensions holds the file extensions the batch extractor picks up
// when scanning a directory.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// Default file names, relative to the working directory.
const (
	DefaultTemplateFile = "rect_template.json"
	DefaultOutputFile   = "plan_de_salud.csv"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsPDFExt reports whether ext (with or without the dot) names a PDF file.
func IsPDFExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
