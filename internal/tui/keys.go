// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next    key.Binding
	filter  key.Binding
	add     key.Binding
	sync    key.Binding
	copy    key.Binding
	info    key.Binding
	quit    key.Binding
	forceQ  key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
}

var keys = keyMap{
	next:    key.NewBinding(key.WithKeys("n", " "), key.WithHelp("n", "next")),
	filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	sync:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "about")),
	quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	forceQ:  key.NewBinding(key.WithKeys("ctrl+c")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
}

var browseHelp = []key.Binding{keys.next, keys.filter, keys.add, keys.sync, keys.copy, keys.info, keys.quit}
