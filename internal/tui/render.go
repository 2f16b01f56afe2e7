// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/models"
)

// planPreviewLimit caps how many names of each side a plan preview lists.
const planPreviewLimit = 20

// RenderNames renders a whitelist with its size in the title.
func RenderNames(title string, names []string) string {
	return renderPage(fmt.Sprintf("%s (%d)", title, len(names)), bulletList(names, 0), "")
}

// RenderChange reports the outcome of a single add or remove.
func RenderChange(verb string, change models.NameChange) string {
	var b strings.Builder

	if change.Changed {
		b.WriteString(okStyle.Render(fmt.Sprintf("%s %s", verb, change.Name)))
	} else {
		b.WriteString(fmt.Sprintf("%s: nothing to do", change.Name))
	}
	b.WriteString("\n")

	switch {
	case change.RemoteError != "":
		b.WriteString(warnStyle.Render("game server: " + change.RemoteError))
		b.WriteString("\n")
	case change.RemoteAttempted:
		b.WriteString(helpStyle.Render("game server: " + change.RemoteResponse))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderPlan renders the remote mutations a sync would perform.
func RenderPlan(plan models.ReconciliationPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "to add (%d):\n%s\n", len(plan.ToAdd), bulletList(plan.ToAdd, planPreviewLimit))
	if plan.RemoveExtras {
		fmt.Fprintf(&b, "to remove (%d):\n%s", len(plan.ToRemove), bulletList(plan.ToRemove, planPreviewLimit))
	} else {
		b.WriteString(helpStyle.Render("names only on the game server are kept"))
	}

	title := "Sync plan"
	if plan.Empty() {
		title = "Sync plan: already in sync"
	}
	return renderPage(title, b.String(), "")
}

// RenderResult renders a finished reconciliation run.
func RenderResult(result models.ReconciliationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "run:      %s (%s)\n", result.RunID, result.Trigger)
	fmt.Fprintf(&b, "status:   %s\n", statusLabel(result))
	fmt.Fprintf(&b, "added:    %d\n", result.Added)
	fmt.Fprintf(&b, "removed:  %d\n", result.Removed)
	if result.Failed() > 0 {
		fmt.Fprintf(&b, "failed:   %d\n", result.Failed())
		for _, f := range append(append([]string{}, result.AddFailures...), result.RemoveFailures...) {
			b.WriteString(warnStyle.Render("  ! " + f))
			b.WriteString("\n")
		}
	}
	if result.BackupPath != "" {
		fmt.Fprintf(&b, "backup:   %s\n", result.BackupPath)
	}
	if !result.FinishedAt.IsZero() && !result.StartedAt.IsZero() {
		fmt.Fprintf(&b, "took:     %s\n", result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond))
	}

	return renderPage("Sync", strings.TrimRight(b.String(), "\n"), "")
}

func statusLabel(result models.ReconciliationResult) string {
	switch {
	case result.Partial():
		return warnStyle.Render("completed with failures")
	case result.Status == models.RunStatusCompleted:
		return okStyle.Render(string(result.Status))
	case result.Status == models.RunStatusFetchFailed:
		return errorStyle.Render(string(result.Status))
	default:
		return string(result.Status)
	}
}

// RenderImport renders an import summary.
func RenderImport(result models.ImportResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "parsed:           %d\n", result.Parsed)
	fmt.Fprintf(&b, "added:            %d\n", result.Added)
	fmt.Fprintf(&b, "already present:  %d\n", result.AlreadyPresent)
	if result.ApplyRemote {
		fmt.Fprintf(&b, "remote applied:   %d\n", result.RemoteApplied)
		fmt.Fprintf(&b, "remote skipped:   %d\n", result.RemoteSkipped)
		for _, f := range result.RemoteFailures {
			b.WriteString(warnStyle.Render("  ! " + f))
			b.WriteString("\n")
		}
	}
	if result.BackupPath != "" {
		fmt.Fprintf(&b, "backup:           %s\n", result.BackupPath)
	}

	return renderPage("Import", strings.TrimRight(b.String(), "\n"), "")
}

// RenderStatus renders the server status. Times are shown in loc.
func RenderStatus(status models.Status, loc *time.Location) string {
	var b strings.Builder

	fmt.Fprintf(&b, "local names:     %d\n", status.LocalCount)
	fmt.Fprintf(&b, "remote enabled:  %t\n", status.RemoteEnabled)
	if status.RemoteCount != nil {
		fmt.Fprintf(&b, "remote names:    %d\n", *status.RemoteCount)
	} else {
		b.WriteString("remote names:    unknown\n")
	}
	if status.NextScheduledRun != nil {
		fmt.Fprintf(&b, "next sync:       %s\n", status.NextScheduledRun.In(loc).Format(time.DateTime))
	} else {
		b.WriteString("next sync:       not scheduled\n")
	}
	if status.LastRun != nil {
		fmt.Fprintf(&b, "last sync:       %s %s, +%d -%d\n",
			status.LastRun.FinishedAt.In(loc).Format(time.DateTime),
			statusLabel(*status.LastRun),
			status.LastRun.Added,
			status.LastRun.Removed,
		)
	}

	return renderPage("Status", strings.TrimRight(b.String(), "\n"), "")
}

// RenderAudit renders audit entries, newest first as returned.
func RenderAudit(entries []models.AuditEntry, loc *time.Location) string {
	if len(entries) == 0 {
		return renderPage("Audit log", "", "")
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %-14s %-8s %-12s +%d -%d !%d",
			e.CreatedAt.In(loc).Format(time.DateTime),
			e.Kind,
			fitText(e.Actor, 8),
			e.Status,
			e.Added, e.Removed, e.Failed,
		)
		if e.Detail != "" {
			b.WriteString("  ")
			b.WriteString(helpStyle.Render(fitText(e.Detail, 60)))
		}
		b.WriteString("\n")
	}

	return renderPage(fmt.Sprintf("Audit log (%d)", len(entries)), strings.TrimRight(b.String(), "\n"), "")
}

// RenderBuildInfo renders client and server build metadata side by side.
func RenderBuildInfo(client, server models.BuildInfoResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "wlctl       %s (%s, %s)\n", orNA(client.Version), orNA(client.Commit), orNA(client.Date))
	fmt.Fprintf(&b, "whitelistd  %s (%s, %s)", orNA(server.Version), orNA(server.Commit), orNA(server.Date))
	return renderPage("Version", b.String(), "")
}

// RenderError formats err for the terminal.
func RenderError(msg string) string {
	return errorStyle.Render("error: ") + msg + "\n"
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
