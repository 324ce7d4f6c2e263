// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultQuotes returns the built-in quote list used when local storage is
// empty or cannot be read. A fresh slice is returned on every call.
func DefaultQuotes() []Quote {
	return []Quote{
		{Text: "The only way to do great work is to love what you do.", Category: "Motivation"},
		{Text: "Life is what happens when you're busy making other plans.", Category: "Life"},
		{Text: "In the middle of difficulty lies opportunity.", Category: "Inspiration"},
		{Text: "Simplicity is the soul of efficiency.", Category: "Engineering"},
		{Text: "Talk is cheap. Show me the code.", Category: "Engineering"},
	}
}
