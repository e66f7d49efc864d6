// Package renderer turns ledger read-models into markdown reports. Rendering
// is presentation only: every function takes finished data and produces a
// string, no store access.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate is a generic utility to render a main template that depends
// on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// RenderTransactions renders a transaction listing to a markdown string.
func RenderTransactions(v *Transactions) string {
	partials := map[string]string{
		"transactions_rows": "transactions_rows.md",
	}
	return renderTemplate("transactions", "transactions.md", partials, v)
}

// RenderAccounts renders the account listing to a markdown string.
func RenderAccounts(v *Accounts) string {
	return renderTemplate("accounts", "accounts.md", nil, v)
}

// RenderLabels renders the label catalog listing to a markdown string.
func RenderLabels(v *Labels) string {
	return renderTemplate("labels", "labels.md", nil, v)
}

// RenderBudget renders a monthly budget table to a markdown string.
func RenderBudget(v *Budget) string {
	return renderTemplate("budget", "budget.md", nil, v)
}

// RenderTrend renders a label trend report to a markdown string.
func RenderTrend(v *Trend) string {
	return renderTemplate("trend", "trend.md", nil, v)
}
