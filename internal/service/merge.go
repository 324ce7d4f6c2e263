// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-quote-keeper/models"

// MergeQuotes appends to local every remote quote whose (text, category) pair
// is not in local yet, keeping remote order. Local quotes are neither removed
// nor reordered, and duplicates already present in local stay. added holds
// exactly the appended quotes.
//
// local is not modified; merged is always a fresh slice.
func MergeQuotes(local, remote []models.Quote) (merged, added []models.Quote) {
	seen := make(map[models.QuoteKey]struct{}, len(local)+len(remote))
	for _, q := range local {
		seen[q.Key()] = struct{}{}
	}

	merged = make([]models.Quote, len(local), len(local)+len(remote))
	copy(merged, local)

	for _, q := range remote {
		key := q.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, q)
		added = append(added, q)
	}

	return merged, added
}
