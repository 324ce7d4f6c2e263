// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the quote keeper client runtime.
//
// It wires local storage, the server adapter, client services, the periodic
// sync worker and the terminal UI into a single process lifecycle. Besides the
// interactive UI the client has one-shot modes: print a random quote, sync
// once, import a JSON file and export the list to a JSON file.
package client
