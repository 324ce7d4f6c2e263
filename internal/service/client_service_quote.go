// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/internal/validators"
	"github.com/MKhiriev/go-quote-keeper/models"
)

const defaultPushTimeout = 10 * time.Second

type clientQuoteService struct {
	repo      store.LocalQuoteRepository
	session   store.SessionStorage
	files     store.QuoteFileStorage
	adapter   adapter.ServerAdapter
	validator validators.Validator

	pushTimeout time.Duration
	intN        func(n int) int

	mu     sync.RWMutex
	quotes []models.Quote

	pushes sync.WaitGroup

	logger *logger.Logger
}

// NewClientQuoteService builds the client quote list over the given storages.
// The list is empty until Load is called. pushTimeout bounds each background
// push to the server.
func NewClientQuoteService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, pushTimeout time.Duration, logger *logger.Logger) ClientQuoteService {
	if pushTimeout <= 0 {
		pushTimeout = defaultPushTimeout
	}

	return &clientQuoteService{
		repo:        storages.QuoteRepository,
		session:     storages.Session,
		files:       storages.Files,
		adapter:     serverAdapter,
		validator:   validators.NewQuoteValidator(),
		pushTimeout: pushTimeout,
		intN:        rand.IntN,
		logger:      logger.WithComponent("quotes"),
	}
}

func (s *clientQuoteService) Load(ctx context.Context) {
	quotes, err := s.repo.GetAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err != nil:
		s.logger.Err(err).Msg("failed to load quotes from storage, using built-in quotes")
		s.quotes = models.DefaultQuotes()
	case len(quotes) == 0:
		s.logger.Info().Msg("quote storage is empty, seeding built-in quotes")
		s.quotes = models.DefaultQuotes()
		if seedErr := s.repo.ReplaceAll(ctx, s.quotes); seedErr != nil {
			s.logger.Warn().Err(seedErr).Msg("failed to seed quote storage")
		}
	default:
		s.quotes = quotes
	}

	s.logger.Debug().Int("count", len(s.quotes)).Msg("quotes loaded")
}

func (s *clientQuoteService) List() []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.quotes)
}

func (s *clientQuoteService) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uniqueCategories(s.quotes)
}

func (s *clientQuoteService) Random(ctx context.Context, category string) (models.Quote, error) {
	category = strings.TrimSpace(category)

	s.mu.RLock()
	candidates := make([]int, 0, len(s.quotes))
	for i, q := range s.quotes {
		if q.MatchesCategory(category) {
			candidates = append(candidates, i)
		}
	}

	if len(candidates) == 0 {
		s.mu.RUnlock()
		s.session.Set(ctx, store.SessionLastFilter, category)
		return models.Quote{}, fmt.Errorf("%w in category %q", ErrNoQuotes, category)
	}

	idx := candidates[s.intN(len(candidates))]
	quote := s.quotes[idx]
	s.mu.RUnlock()

	s.session.Set(ctx, store.SessionLastViewed, strconv.Itoa(idx))
	s.session.Set(ctx, store.SessionLastFilter, category)

	return quote, nil
}

func (s *clientQuoteService) Add(ctx context.Context, quote models.Quote) error {
	quote = quote.Normalize()
	if err := s.validator.Validate(ctx, quote); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuote, err)
	}

	s.mu.Lock()
	s.quotes = append(s.quotes, quote)
	persistErr := s.repo.Append(ctx, quote)
	s.mu.Unlock()

	s.push(ctx, quote)

	if persistErr != nil {
		s.logger.Err(persistErr).Msg("failed to persist added quote")
		return fmt.Errorf("%w: %w", ErrNotPersisted, persistErr)
	}

	return nil
}

// push sends quote to the server without blocking the caller.
func (s *clientQuoteService) push(ctx context.Context, quote models.Quote) {
	s.pushes.Add(1)
	go func() {
		defer s.pushes.Done()

		pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.pushTimeout)
		defer cancel()

		if err := s.adapter.PostQuote(pushCtx, quote); err != nil {
			s.logger.Warn().Err(mapAdapterError(err)).Str("category", quote.Category).Msg("failed to push quote to server")
			return
		}
		s.logger.Debug().Str("category", quote.Category).Msg("quote pushed to server")
	}()
}

// acceptRemote keeps the remote quotes that Add and Import would accept, so
// a merged list always exports to a file that imports back.
func (s *clientQuoteService) acceptRemote(ctx context.Context, remote []models.Quote) []models.Quote {
	accepted := make([]models.Quote, 0, len(remote))
	for _, q := range remote {
		q = q.Normalize()
		if q.Category == "" {
			q.Category = models.RemoteCategory
		}
		if err := s.validator.Validate(ctx, q); err != nil {
			s.logger.Warn().Err(err).Msg("skipping invalid remote quote")
			continue
		}
		accepted = append(accepted, q)
	}
	return accepted
}

func (s *clientQuoteService) Merge(ctx context.Context, remote []models.Quote) ([]models.Quote, error) {
	remote = s.acceptRemote(ctx, remote)

	s.mu.Lock()
	defer s.mu.Unlock()

	merged, added := MergeQuotes(s.quotes, remote)
	s.quotes = merged

	if err := s.repo.ReplaceAll(ctx, merged); err != nil {
		s.logger.Err(err).Int("added", len(added)).Msg("failed to persist merged quotes")
		return added, fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}

	return added, nil
}

func (s *clientQuoteService) Import(ctx context.Context, r io.Reader) (int, error) {
	quotes, err := s.decodeImport(ctx, r)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.quotes = append(s.quotes, quotes...)
	persistErr := s.repo.Append(ctx, quotes...)
	s.mu.Unlock()

	if persistErr != nil {
		s.logger.Err(persistErr).Int("count", len(quotes)).Msg("failed to persist imported quotes")
		return len(quotes), fmt.Errorf("%w: %w", ErrNotPersisted, persistErr)
	}

	s.logger.Info().Int("count", len(quotes)).Msg("quotes imported")

	return len(quotes), nil
}

func (s *clientQuoteService) decodeImport(ctx context.Context, r io.Reader) ([]models.Quote, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrInvalidImport, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrInvalidImport)
	}

	var quotes []models.Quote
	if err = json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}

	for i := range quotes {
		quotes[i] = quotes[i].Normalize()
	}

	if err = s.validator.Validate(ctx, quotes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}

	return quotes, nil
}

func (s *clientQuoteService) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := s.files.Open(ctx, path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return s.Import(ctx, f)
}

func (s *clientQuoteService) Export(_ context.Context, w io.Writer) error {
	quotes := s.List()
	if quotes == nil {
		quotes = []models.Quote{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(quotes); err != nil {
		return fmt.Errorf("encode quotes: %w", err)
	}

	return nil
}

func (s *clientQuoteService) ExportFile(ctx context.Context, path string) error {
	return s.files.WriteAtomic(ctx, path, func(w io.Writer) error {
		return s.Export(ctx, w)
	})
}

func (s *clientQuoteService) LastViewed(ctx context.Context) (models.Quote, bool) {
	raw, ok := s.session.Get(ctx, store.SessionLastViewed)
	if !ok {
		return models.Quote{}, false
	}

	idx, err := strconv.Atoi(raw)
	if err != nil {
		return models.Quote{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx < 0 || idx >= len(s.quotes) {
		return models.Quote{}, false
	}

	return s.quotes[idx], true
}

func (s *clientQuoteService) LastFilter(ctx context.Context) (string, bool) {
	return s.session.Get(ctx, store.SessionLastFilter)
}

func (s *clientQuoteService) Close() {
	s.pushes.Wait()
}

func uniqueCategories(quotes []models.Quote) []string {
	categories := make([]string, 0, 8)
	for _, q := range quotes {
		categories = append(categories, q.Category)
	}
	slices.Sort(categories)

	return slices.Compact(categories)
}
