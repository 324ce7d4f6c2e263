// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m quoteModel) View() string {
	switch m.screen {
	case screenAdd:
		return m.viewAdd()
	case screenInfo:
		return renderBuildInfo(m.buildInfo, len(m.quotes.List()))
	default:
		return m.viewQuote()
	}
}

func (m quoteModel) viewQuote() string {
	var body strings.Builder

	body.WriteString("Filter: ")
	body.WriteString(filterStyle.Render(m.filter()))
	body.WriteString("\n\n")

	if m.hasQuote {
		body.WriteString(quoteStyle.Render(m.current.Text))
		body.WriteString("\n")
		body.WriteString(categoryStyle.Render("— " + m.current.Category))
	} else {
		body.WriteString(categoryStyle.Render("Nothing to show"))
	}

	return renderPage("QUOTE KEEPER", body.String(), m.footer(renderHelp(browseHelp)))
}

func (m quoteModel) viewAdd() string {
	labels := []string{"Text:    ", "Category:"}
	rows := make([]string, len(m.addInputs))
	for i, in := range m.addInputs {
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, labels[i], " ", in.View())
	}

	help := helpStyle.Render("tab: next field  enter: save  esc: cancel")
	if m.addSaving {
		help = helpStyle.Render("saving...")
	}

	return renderPage("NEW QUOTE", strings.Join(rows, "\n"), m.footer(help))
}

func (m quoteModel) footer(help string) string {
	var b strings.Builder
	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	case m.syncing:
		b.WriteString(statusStyle.Render("Syncing..."))
		b.WriteString("\n")
	}
	b.WriteString(help)
	return b.String()
}
