package http

import (
	_ "embed"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const apiDocsPath = "/api-docs"

//go:embed openapi.json
var openAPIDocument []byte

func (h *Handler) apiDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(openAPIDocument)
}

// apiDocsUI serves Swagger UI pointed at the embedded document.
func apiDocsUI() http.HandlerFunc {
	return httpSwagger.Handler(httpSwagger.URL(apiDocsPath + "/doc.json"))
}

func redirectToAPIDocs(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, apiDocsPath+"/index.html", http.StatusMovedPermanently)
}
