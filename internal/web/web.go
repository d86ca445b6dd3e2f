// Package web embeds the HTML templates so the binary and the tests
// need no on-disk asset path.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
