// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-memories/internal/app"
	"github.com/MKhiriev/go-memories/internal/service"
	"github.com/MKhiriev/go-memories/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// monitorModel shows the outbox and lets the user drain or retry it.
type monitorModel struct {
	ctx       context.Context
	syncQueue service.SyncQueueService
	queues    service.SyncQueuesService
	states    <-chan models.SyncQueueState
	buildInfo models.AppBuildInfo

	state   models.SyncQueueState
	items   []models.SyncQueueItem
	idx     int
	spinner spinner.Model
	running bool
	status  string
	err     error

	showBuildInfo bool
}

func newMonitorModel(ctx context.Context, services *service.ClientServices, states <-chan models.SyncQueueState, buildInfo models.AppBuildInfo) monitorModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return monitorModel{
		ctx:       ctx,
		syncQueue: services.SyncQueueService,
		queues:    services.SyncQueuesService,
		states:    states,
		buildInfo: buildInfo,
		spinner:   s,
	}
}

func (m monitorModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForState(), m.cmdLoad())
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		return m, tea.Batch(m.waitForState(), m.cmdLoad())

	case itemsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.items = msg.items
			if m.idx >= len(m.items) {
				m.idx = max(len(m.items)-1, 0)
			}
		}
		return m, nil

	case syncDoneMsg:
		m.running = false
		if msg.retried {
			m.status = "Failed operations retried"
		} else {
			m.status = "Sync pass finished"
		}
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter(statusTTL))

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m monitorModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.sync):
		if m.running {
			return m, nil
		}
		m.running = true
		m.status = "Syncing..."
		return m, m.cmdSync(false)
	case key.Matches(msg, keys.retry):
		if m.running {
			return m, nil
		}
		m.running = true
		m.status = "Retrying failed operations..."
		return m, m.cmdSync(true)
	case key.Matches(msg, keys.copy):
		item, ok := m.current()
		if !ok || item.Operation.ErrorMessage == nil {
			m.status = "Nothing to copy"
			return m, clearStatusAfter(statusTTL)
		}
		if err := writeClipboard(*item.Operation.ErrorMessage); err != nil {
			m.err = fmt.Errorf("copy to clipboard: %w", err)
			return m, nil
		}
		m.status = "Error message copied"
		return m, clearStatusAfter(statusTTL)
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m monitorModel) current() (models.SyncQueueItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.SyncQueueItem{}, false
	}
	return m.items[m.idx], true
}

func (m monitorModel) syncing() bool {
	return m.running || m.state.IsSyncing
}

func (m monitorModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	title := "Sync queue"
	if m.syncing() {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "pending: %d   failed: %d\n\n", m.state.PendingCount, m.state.FailedCount)

	if len(m.items) == 0 {
		b.WriteString("Queue is empty\n")
	}
	for i, item := range m.items {
		line := fmt.Sprintf("%s %-6s %-6s %s",
			statusTag(item.Operation.Status),
			item.Operation.EntityType,
			item.Operation.OperationType,
			fitText(valueOrDash(item.EntityTitle), 32),
		)
		if i == m.idx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")

		if item.Operation.ErrorMessage != nil {
			b.WriteString("      ")
			b.WriteString(helpStyle.Render(fitText(*item.Operation.ErrorMessage, 60)))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + app.Describe(m.err)))
		b.WriteString("\n")
	}

	return renderPage(title, b.String(), helpLine())
}

func statusTag(status models.SyncOperationStatus) string {
	switch status {
	case models.SyncOperationStatusPending:
		return pendingStyle.Render("[pending]")
	case models.SyncOperationStatusInProgress:
		return syncingStyle.Render("[syncing]")
	case models.SyncOperationStatusFailed:
		return failedStyle.Render("[failed] ")
	default:
		return "[?]"
	}
}

func (m monitorModel) waitForState() tea.Cmd {
	if m.states == nil {
		return nil
	}
	return func() tea.Msg {
		state, ok := <-m.states
		if !ok {
			return nil
		}
		return stateMsg{state: state}
	}
}

func (m monitorModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		items, err := m.queues.List(m.ctx)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m monitorModel) cmdSync(retry bool) tea.Cmd {
	return func() tea.Msg {
		if retry {
			m.syncQueue.RetryFailed(m.ctx)
		} else {
			m.syncQueue.ProcessQueue(m.ctx)
		}
		return syncDoneMsg{retried: retry}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
