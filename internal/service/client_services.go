// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	QuoteService ClientQuoteService
	SyncService  ClientSyncService
	SyncJob      ClientSyncJob
}

// NewClientServices wires the client services over storages and the server
// adapter.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	quoteSvc := NewClientQuoteService(storages, serverAdapter, cfg.Adapter.RequestTimeout, logger)
	syncSvc := NewClientSyncService(quoteSvc, serverAdapter, 2*cfg.Adapter.RequestTimeout, logger)

	return &ClientServices{
		QuoteService: quoteSvc,
		SyncService:  syncSvc,
		SyncJob:      NewClientSyncJob(syncSvc, cfg.Workers.SyncInterval, logger),
	}
}
