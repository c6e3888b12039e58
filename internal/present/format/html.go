package format

import (
	"fmt"
	"html"
	"io"
)

// WriteHTMLPage wraps a rendered fragment in a minimal standalone page.
func WriteHTMLPage(w io.Writer, title, fragment string) error {
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
.markdown-content table { border-collapse: collapse; margin: 1rem 0; }
.markdown-content th, .markdown-content td { border: 1px solid #ccc; padding: .3rem .6rem; }
.markdown-content pre { background: #f5f5f5; padding: .8rem; overflow-x: auto; }
.error { color: #b00020; }
</style>
</head>
<body>
%s
</body>
</html>
`, html.EscapeString(title), fragment)
	return err
}
