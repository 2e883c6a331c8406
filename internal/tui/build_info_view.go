// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-memories/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	content := "go-memories\n\n" + info.WithDefaults().String() + "\n\n" + helpStyle.Render("esc: back")
	return appStyle.Render(infoBoxStyle.Render(content))
}
