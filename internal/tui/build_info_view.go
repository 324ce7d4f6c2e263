// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-quote-keeper/models"
)

func renderBuildInfo(info models.AppBuildInfo, quoteCount int) string {
	var b strings.Builder

	b.WriteString("Application: go-quote-keeper\n")
	b.WriteString(info.String())
	b.WriteString("Quotes stored: ")
	b.WriteString(strconv.Itoa(quoteCount))

	return renderPage("ABOUT", b.String(), helpStyle.Render("esc: back"))
}
