// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/models"
)

// Services groups the server-side services.
type Services struct {
	QuoteService   QuoteService
	AppInfoService AppInfoService
}

// NewServices wires the server services; quote input is validated before it
// reaches storage.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	quoteSvc := NewQuoteValidationService().Wrap(NewQuoteService(storages.QuoteRepository, logger))

	return &Services{
		QuoteService:   quoteSvc,
		AppInfoService: appInfo,
	}, nil
}
