// Package web holds the HTML templates of the browser UI.
package web

import (
	"embed"
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"travelstar/internal/services"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var titleCaser = cases.Title(language.English)

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"titleCase":  func(s string) string { return titleCaser.String(strings.TrimSpace(s)) },
		"splitDays":  services.SplitDays,
		"splitItems": services.SplitItems,
		"budget":     services.FormatBudget,
		"join":       strings.Join,
		"contains": func(list []string, v string) bool {
			for _, item := range list {
				if item == v {
					return true
				}
			}
			return false
		},
	}
}

// Templates parses every page template; gin renders them by file name.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.tmpl")
}
