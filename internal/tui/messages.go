// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type syncDoneMsg struct {
	report models.SyncReport
	err    error
}

// backgroundSyncMsg carries a report from the periodic sync job.
type backgroundSyncMsg service.SyncResult

type addDoneMsg struct {
	quote models.Quote
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
