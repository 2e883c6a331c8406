// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-memories/internal/app"
	"github.com/MKhiriev/go-memories/models"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The operation ran and failed (offline, rejected by the server, etc.)
	ExitCommandError = 2 // Command error (bad arguments, unreadable files, no session, etc.)
)

// ExitError carries the exit code the process should end with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error describes the wrapped error in terminal wording.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, app.Describe(e.Err))
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results as text or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func newFormatter(opts *RootOptions, w io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w}
}

// Print encodes data as JSON in json mode and calls text otherwise.
func (f *OutputFormatter) Print(data any, text func(w io.Writer)) error {
	if f.Format == formatJSON {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	text(f.Writer)
	return nil
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	pendingStyle = cellStyle.Foreground(lipgloss.Color("11"))
	failedStyle  = cellStyle.Foreground(lipgloss.Color("9"))
)

func renderTable(headers []string, rows [][]string, statusCol int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col != statusCol || row < 0 || row >= len(rows) {
				return cellStyle
			}
			switch rows[row][col] {
			case string(models.SyncStatusPendingCreate), string(models.SyncStatusPendingUpdate), string(models.SyncOperationStatusPending):
				return pendingStyle
			case string(models.SyncStatusFailed): // == string(models.SyncOperationStatusFailed)
				return failedStyle
			}
			return cellStyle
		})
	return t.String()
}

func albumsTable(albums []models.Album) string {
	rows := make([][]string, 0, len(albums))
	for _, a := range albums {
		cover, _ := a.DisplayCoverImage()
		rows = append(rows, []string{a.LocalID.String(), idOrDash(a.ServerID), a.Title, string(a.SyncStatus), orDash(cover)})
	}
	return renderTable([]string{"LOCAL ID", "ID", "TITLE", "STATUS", "COVER"}, rows, 3)
}

func memoriesTable(memories []models.Memory) string {
	rows := make([][]string, 0, len(memories))
	for _, m := range memories {
		image, _ := m.DisplayImage()
		rows = append(rows, []string{m.LocalID.String(), idOrDash(m.ServerID), m.Title, string(m.SyncStatus), orDash(image)})
	}
	return renderTable([]string{"LOCAL ID", "ID", "TITLE", "STATUS", "IMAGE"}, rows, 3)
}

func queueTable(items []models.SyncQueueItem) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		op := item.Operation
		title := ""
		if item.EntityTitle != nil {
			title = *item.EntityTitle
		}
		errMsg := ""
		if op.ErrorMessage != nil {
			errMsg = *op.ErrorMessage
		}
		rows = append(rows, []string{
			op.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			string(op.EntityType),
			string(op.OperationType),
			orDash(title),
			idOrDash(item.EntityID),
			string(op.Status),
			orDash(errMsg),
		})
	}
	return renderTable([]string{"CREATED", "ENTITY", "OPERATION", "TITLE", "ID", "STATUS", "ERROR"}, rows, 5)
}

func printUser(w io.Writer, user models.User) {
	fmt.Fprintf(w, "Name:     %s\n", user.Name)
	fmt.Fprintf(w, "Username: %s\n", user.Username)
	fmt.Fprintf(w, "Birthday: %s\n", orDash(derefOr(user.BirthdayString(), "")))
	avatar := derefOr(user.AvatarURL, derefOr(user.AvatarLocalPath, ""))
	fmt.Fprintf(w, "Avatar:   %s\n", orDash(avatar))
	fmt.Fprintf(w, "Status:   %s\n", user.SyncStatus)
}

func printState(w io.Writer, state models.SyncQueueState) {
	fmt.Fprintf(w, "pending: %d  failed: %d\n", state.PendingCount, state.FailedCount)
}

func idOrDash(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
