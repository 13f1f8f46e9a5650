// Package questions embeds the bundled question data files, one JSON file
// per category.
package questions

import "embed"

//go:embed *.json
var files embed.FS

// Files returns the embedded question data.
func Files() embed.FS { return files }
