// Package renderer turns expense tables into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/expenses"
)

//go:embed templates/*.md
var templates embed.FS

// row is the view of a single expense in a rendered table.
type row struct {
	ID       int
	Name     string
	Amount   string
	Category string
}

// Table renders all expenses with their positional ID as a markdown table.
// It does not handle the empty table, callers should print a dedicated
// message instead.
func Table(t *expenses.Table) string {
	data := struct{ Rows []row }{}
	for id, e := range t.All() {
		data.Rows = append(data.Rows, row{
			ID:       id,
			Name:     e.Name,
			Amount:   e.Amount.String(),
			Category: e.Category,
		})
	}
	return renderTemplate("table", "templates/table.md", data)
}

// cell escapes a value so that it stays in a single markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// renderTemplate renders a template file from the embedded templates.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Funcs(template.FuncMap{"cell": cell}).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
