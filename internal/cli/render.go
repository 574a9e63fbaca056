// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-service-template/internal/validators"
	"github.com/MKhiriev/go-service-template/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	uiDivider = "──────────────────────────────────────────────────────"

	// descriptionWidth caps the description column of the list table.
	descriptionWidth = 40
)

// renderPage lays out a titled block: title, divider, body, divider and an
// optional faint footer.
func renderPage(title, body, footer string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(body) != "" {
		b.WriteString(body)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)

	if strings.TrimSpace(footer) != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(footer))
	}

	return appStyle.Render(b.String())
}

func renderField(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueOrDash(value))
}

// renderExample shows every field of one item.
func renderExample(example models.ExampleResponse) string {
	rows := []string{
		renderField("ID", strconv.FormatInt(example.ID, 10)),
		renderField("Name", example.Name),
		renderField("Description", example.Description),
		renderField("Active", yesNo(example.IsActive)),
		renderField("Created", example.CreatedAt),
		renderField("Updated", example.UpdatedAt),
	}
	return renderPage(models.Example{}.VerboseName(), strings.Join(rows, "\n"), "")
}

// renderExampleList shows one page of items as a table, with the total
// count and the neighbouring page links in the footer.
func renderExampleList(page int, list models.ExampleListResponse) string {
	body := ""
	if len(list.Results) > 0 {
		rows := make([][]string, 0, len(list.Results))
		for _, example := range list.Results {
			rows = append(rows, []string{
				strconv.FormatInt(example.ID, 10),
				example.Name,
				fitText(example.Description, descriptionWidth),
				yesNo(example.IsActive),
				example.UpdatedAt,
			})
		}

		body = table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "NAME", "DESCRIPTION", "ACTIVE", "UPDATED").
			Rows(rows...).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			String()
	}

	footer := []string{fmt.Sprintf("page %d, %d total", page, list.Count)}
	if list.Previous != nil {
		footer = append(footer, "previous: "+*list.Previous)
	}
	if list.Next != nil {
		footer = append(footer, "next: "+*list.Next)
	}

	return renderPage(models.Example{}.VerboseNamePlural(), body, strings.Join(footer, "\n"))
}

func renderMessage(title, message string) string {
	return renderPage(title, message, "")
}

// RenderError formats err for the terminal. Validation failures are listed
// one rejected value per line.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(errorStyle.Render("Error"))
	b.WriteString("\n\n")

	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		b.WriteString("Request was rejected:\n")
		for _, fe := range validationErrs {
			fmt.Fprintf(&b, "  %s: %s (%s)\n", strings.Join(fe.Loc, "."), fe.Msg, fe.Type)
		}
		return errorBox.Render(strings.TrimRight(b.String(), "\n"))
	}

	b.WriteString(err.Error())
	return errorBox.Render(b.String())
}

// RenderBuildInfo shows the version, date and commit stamped in at build time.
func RenderBuildInfo(version, date, commit string) string {
	rows := []string{
		renderField("Version", valueOrNA(version)),
		renderField("Date", valueOrNA(date)),
		renderField("Commit", valueOrNA(commit)),
	}
	return renderPage("Build info", strings.Join(rows, "\n"), "")
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
