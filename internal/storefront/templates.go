package storefront

import (
	"embed"
	"html/template"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the storefront page templates.
func Templates() (*template.Template, error) {
	return template.New("storefront").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.tmpl")
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"money": func(d decimal.Decimal) string {
			return "$" + d.StringFixed(2)
		},
		"allCategories": func() string { return allCategories },
	}
}
