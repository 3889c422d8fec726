// Package views embeds the HTML page templates.
package views

import "embed"

//go:embed *.html
var FS embed.FS
