package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

// PageProps mirrors the props object handed to a server-rendered page.
type PageProps struct {
	Props struct {
		Timestamp string `json:"timestamp"`
	} `json:"props"`
}

// ServerSideProps computes the per-request page props.
func ServerSideProps(now Clock) PageProps {
	var p PageProps
	p.Props.Timestamp = isoNow(now)
	return p
}

type nextData struct {
	Props struct {
		PageProps struct {
			Timestamp string `json:"timestamp"`
		} `json:"pageProps"`
	} `json:"props"`
	Page string `json:"page"`
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<div id="__next"><div><h1>Hello from Next.js SSR</h1><p>Server-side rendered page</p></div></div>
<script id="__NEXT_DATA__" type="application/json">{{.Data}}</script>
</body>
</html>
`))

// Page renders the SSR index page. The props are embedded as page data and
// are not part of the visible markup.
func Page(now Clock, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		props := ServerSideProps(now)

		var data nextData
		data.Props.PageProps.Timestamp = props.Props.Timestamp
		data.Page = "/"

		var buf bytes.Buffer
		err := pageTemplate.Execute(&buf, struct {
			Title string
			Data  nextData
		}{Title: "Next.js SSR", Data: data})
		if err != nil {
			logger.Error("render page", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		writeHTML(w, http.StatusOK, buf.String())
	}
}
