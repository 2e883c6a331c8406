// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up    key.Binding
	down  key.Binding
	sync  key.Binding
	retry key.Binding
	copy  key.Binding
	info  key.Binding
	esc   key.Binding
	quit  key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	sync:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
	retry: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry failed")),
	copy:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy error")),
	info:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	esc:   key.NewBinding(key.WithKeys("esc")),
	quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func helpLine() string {
	bindings := []key.Binding{keys.up, keys.down, keys.sync, keys.retry, keys.copy, keys.info, keys.quit}

	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		out += b.Help().Key + " " + b.Help().Desc
	}
	return out
}
