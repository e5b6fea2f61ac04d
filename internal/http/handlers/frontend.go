// Frontend shell.
//
// Every GET outside the API that matches no route renders a small HTML page
// that loads the built single page app. The bundler emits hashed files named
// index-<hash>.js and index-<hash>.css under <static>/frontend/assets; they
// are discovered on each request so a redeploy of the assets is picked up
// without a restart.
package handlers

import (
	"html/template"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/rs/zerolog/log"
)

var shellTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Closet</title>
{{- range .Styles}}
<link rel="stylesheet" href="{{.}}">
{{- end}}
</head>
<body>
<div id="root"></div>
{{- range .Scripts}}
<script type="module" src="{{.}}"></script>
{{- end}}
</body>
</html>
`))

// Frontend serves the HTML shell.
type Frontend struct {
	// StaticDir is the directory served under StaticURL.
	StaticDir string
	// StaticURL is the URL prefix of StaticDir, e.g. "/static/".
	StaticURL string
}

// NewFrontend returns a Frontend over dir mounted at url.
func NewFrontend(dir, url string) *Frontend {
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return &Frontend{StaticDir: dir, StaticURL: url}
}

// Assets lists the built entry files relative to StaticDir, sorted. A missing
// assets directory yields an empty list.
func (f *Frontend) Assets() []string {
	dir := filepath.Join(f.StaticDir, "frontend", "assets")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error().Err(err).Str("dir", dir).Msg("read frontend assets")
		} else {
			log.Warn().Str("dir", dir).Msg("frontend assets directory not found")
		}
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "index-") {
			continue
		}
		if strings.HasSuffix(name, ".js") || strings.HasSuffix(name, ".css") {
			out = append(out, path.Join("frontend", "assets", name))
		}
	}
	sort.Strings(out)
	return out
}

// Shell renders the page.
func (f *Frontend) Shell(c *gin.Context) {
	var data struct{ Styles, Scripts []string }
	for _, a := range f.Assets() {
		u := f.StaticURL + a
		if strings.HasSuffix(a, ".css") {
			data.Styles = append(data.Styles, u)
		} else {
			data.Scripts = append(data.Scripts, u)
		}
	}
	c.Render(http.StatusOK, render.HTML{Template: shellTmpl, Name: "index", Data: data})
}
