// Package web holds the storefront replica's templates and static assets.
package web

import "embed"

// FS contains templates/ and static/
//
//go:embed templates static
var FS embed.FS
