// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncReport describes the outcome of a single fetch-merge-persist cycle.
type SyncReport struct {
	// Fetched is the number of quotes received from the server.
	Fetched int `json:"fetched"`

	// Added is the number of remote quotes that were not present locally
	// and were appended to the local list.
	Added int `json:"added"`

	// Total is the size of the local list after the merge.
	Total int `json:"total"`

	// At is the moment the merge was persisted.
	At time.Time `json:"at"`
}
