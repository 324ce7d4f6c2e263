// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
)

const statusTTL = 4 * time.Second

const (
	addFieldText = iota
	addFieldCategory
)

type screen int

const (
	screenQuote screen = iota
	screenAdd
	screenInfo
)

type quoteModel struct {
	ctx       context.Context
	quotes    service.ClientQuoteService
	syncer    service.ClientSyncService
	reports   <-chan service.SyncResult
	buildInfo models.AppBuildInfo

	writeClipboard func(string) error

	screen    screen
	filters   []string
	filterIdx int
	current   models.Quote
	hasQuote  bool
	syncing   bool
	lastSync  time.Time

	status    string
	errMsg    string
	statusSeq int

	addInputs []textinput.Model
	addFocus  int
	addSaving bool
}

func newQuoteModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) quoteModel {
	m := quoteModel{
		ctx:            ctx,
		quotes:         services.QuoteService,
		syncer:         services.SyncService,
		buildInfo:      buildInfo,
		writeClipboard: clipboard.WriteAll,
	}
	if services.SyncJob != nil {
		m.reports = services.SyncJob.Reports()
	}

	m.refreshFilters()
	if filter, ok := m.quotes.LastFilter(ctx); ok {
		m.selectFilter(filter)
	}
	if last, ok := m.quotes.LastViewed(ctx); ok && last.MatchesCategory(m.filter()) {
		m.current, m.hasQuote = last, true
	} else {
		m.showRandom()
	}

	return m
}

func (m quoteModel) Init() tea.Cmd {
	return tea.Batch(m.cmdSync(), m.cmdWaitBackgroundSync())
}

func (m quoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case syncDoneMsg:
		m.syncing = false
		return m.applySyncResult(msg.report, msg.err)
	case backgroundSyncMsg:
		next, cmd := m.applySyncResult(msg.Report, msg.Err)
		return next, tea.Batch(cmd, m.cmdWaitBackgroundSync())
	case addDoneMsg:
		return m.applyAddResult(msg)
	case copiedMsg:
		if msg.err != nil {
			return m.setError("Copy failed: " + msg.err.Error())
		}
		return m.setStatus("Copied to clipboard")
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status, m.errMsg = "", ""
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQ) {
			return m, tea.Quit
		}
		switch m.screen {
		case screenAdd:
			return m.updateAdd(msg)
		case screenInfo:
			if key.Matches(msg, keys.esc, keys.quit, keys.info) {
				m.screen = screenQuote
			}
			return m, nil
		default:
			return m.updateQuote(msg)
		}
	}

	if m.screen == screenAdd {
		return m.updateAddInputs(msg)
	}
	return m, nil
}

func (m quoteModel) updateQuote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.next):
		m.showRandom()
		return m, nil
	case key.Matches(msg, keys.filter):
		m.refreshFilters()
		m.filterIdx = (m.filterIdx + 1) % len(m.filters)
		m.showRandom()
		return m, nil
	case key.Matches(msg, keys.add):
		m.startAdd()
		return m, textinput.Blink
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		return m, m.cmdSync()
	case key.Matches(msg, keys.copy):
		if !m.hasQuote {
			return m, nil
		}
		return m, m.cmdCopy(formatQuote(m.current))
	case key.Matches(msg, keys.info):
		m.screen = screenInfo
		return m, nil
	}
	return m, nil
}

func (m quoteModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenQuote
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.tab):
		m.focusAdd((m.addFocus + 1) % len(m.addInputs))
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.focusAdd((m.addFocus + len(m.addInputs) - 1) % len(m.addInputs))
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.addFocus == addFieldText {
			m.focusAdd(addFieldCategory)
			return m, nil
		}
		if m.addSaving {
			return m, nil
		}
		m.addSaving = true
		return m, m.cmdAdd(models.Quote{
			Text:     m.addInputs[addFieldText].Value(),
			Category: m.addInputs[addFieldCategory].Value(),
		})
	}

	return m.updateAddInputs(msg)
}

func (m quoteModel) updateAddInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.addInputs))
	for i := range m.addInputs {
		m.addInputs[i], cmds[i] = m.addInputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *quoteModel) startAdd() {
	text := textinput.New()
	text.Placeholder = "Quote text"
	text.CharLimit = 2000
	text.Width = 60

	category := textinput.New()
	category.Placeholder = "Category"
	category.CharLimit = 64
	category.Width = 30
	if f := m.filter(); f != models.AllCategories {
		category.SetValue(f)
	}

	m.addInputs = []textinput.Model{text, category}
	m.addSaving = false
	m.errMsg = ""
	m.focusAdd(addFieldText)
	m.screen = screenAdd
}

func (m *quoteModel) focusAdd(i int) {
	m.addFocus = i
	for j := range m.addInputs {
		if j == i {
			m.addInputs[j].Focus()
		} else {
			m.addInputs[j].Blur()
		}
	}
}

func (m quoteModel) applyAddResult(msg addDoneMsg) (tea.Model, tea.Cmd) {
	m.addSaving = false

	if errors.Is(msg.err, service.ErrInvalidQuote) {
		return m.setError(humanizeError(msg.err))
	}

	m.screen = screenQuote
	m.refreshFilters()
	m.current, m.hasQuote = msg.quote, true

	if msg.err != nil {
		return m.setError(humanizeError(msg.err))
	}
	return m.setStatus("Quote added")
}

func (m quoteModel) applySyncResult(report models.SyncReport, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		return m.setError(humanizeError(err))
	}

	m.lastSync = report.At
	m.refreshFilters()
	if !m.hasQuote {
		m.showRandom()
	}

	if report.Added == 0 {
		return m.setStatus("Synced: already up to date")
	}
	return m.setStatus(fmt.Sprintf("Synced: %d new quote(s) from server", report.Added))
}

func (m quoteModel) setStatus(s string) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status, m.errMsg = s, ""
	return m, clearStatusAfter(m.statusSeq)
}

func (m quoteModel) setError(s string) (tea.Model, tea.Cmd) {
	m.statusSeq++
	m.status, m.errMsg = "", s
	return m, clearStatusAfter(m.statusSeq)
}

func (m *quoteModel) showRandom() {
	quote, err := m.quotes.Random(m.ctx, m.filter())
	if err != nil {
		m.hasQuote = false
		m.errMsg = humanizeError(err)
		return
	}
	m.current, m.hasQuote = quote, true
	m.errMsg = ""
}

func (m *quoteModel) refreshFilters() {
	current := m.filter()
	m.filters = append([]string{models.AllCategories}, m.quotes.Categories()...)
	m.selectFilter(current)
}

func (m *quoteModel) selectFilter(filter string) {
	m.filterIdx = 0
	for i, f := range m.filters {
		if f == filter {
			m.filterIdx = i
			return
		}
	}
}

func (m quoteModel) filter() string {
	if len(m.filters) == 0 {
		return models.AllCategories
	}
	return m.filters[m.filterIdx]
}

func (m quoteModel) cmdSync() tea.Cmd {
	ctx, syncer := m.ctx, m.syncer
	return func() tea.Msg {
		report, err := syncer.Sync(ctx)
		return syncDoneMsg{report: report, err: err}
	}
}

func (m quoteModel) cmdWaitBackgroundSync() tea.Cmd {
	if m.reports == nil {
		return nil
	}
	ctx, reports := m.ctx, m.reports
	return func() tea.Msg {
		select {
		case res := <-reports:
			return backgroundSyncMsg(res)
		case <-ctx.Done():
			return nil
		}
	}
}

func (m quoteModel) cmdAdd(quote models.Quote) tea.Cmd {
	ctx, quotes := m.ctx, m.quotes
	return func() tea.Msg {
		err := quotes.Add(ctx, quote)
		return addDoneMsg{quote: quote.Normalize(), err: err}
	}
}

func (m quoteModel) cmdCopy(text string) tea.Cmd {
	write := m.writeClipboard
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func formatQuote(q models.Quote) string {
	return fmt.Sprintf("%q (%s)", strings.TrimSpace(q.Text), q.Category)
}
