// Package display provides terminal output formatting for ytwalk.
package display

import (
	"fmt"
	"strings"
	"time"
)

const separator = " • "

// Row is one line of a result listing. Fields left at their zero value are
// simply omitted, since search hits only carry whatever partitions the
// query requested.
type Row struct {
	Kind        string
	ID          string
	Title       string
	ChannelName string
	PublishedAt time.Time
}

// Detail is a resolved single-resource view.
type Detail struct {
	Row
	Description string
	Duration    time.Duration
	Views       int64
	Likes       int64
	Comments    int64
	Subscribers int64
	Items       int64
	Tags        []string
	URL         string
}

// TerminalFormatter formats resources for terminal display.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a new terminal formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// FormatRow formats a single listing row.
func (f *TerminalFormatter) FormatRow(row Row) string {
	header := fmt.Sprintf("[%s] %s", strings.ToUpper(row.Kind), row.Title)
	if row.Title == "" {
		header = fmt.Sprintf("[%s] %s", strings.ToUpper(row.Kind), row.ID)
	}

	var meta []string
	if row.ChannelName != "" {
		meta = append(meta, "by "+row.ChannelName)
	}
	if !row.PublishedAt.IsZero() {
		meta = append(meta, f.FormatTimestamp(row.PublishedAt))
	}
	meta = append(meta, row.ID)

	return header + "\n  " + strings.Join(meta, separator) + "\n"
}

// FormatList formats a result listing.
func (f *TerminalFormatter) FormatList(rows []Row) string {
	if len(rows) == 0 {
		return "No results.\n"
	}

	var formatted []string
	for _, row := range rows {
		formatted = append(formatted, f.FormatRow(row))
	}
	return strings.Join(formatted, "\n")
}

// FormatDetail formats a fully resolved resource.
func (f *TerminalFormatter) FormatDetail(d Detail) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("[%s] %s", strings.ToUpper(d.Kind), d.Title))
	lines = append(lines, "  id: "+d.ID)

	if d.ChannelName != "" {
		lines = append(lines, "  channel: "+d.ChannelName)
	}
	if !d.PublishedAt.IsZero() {
		lines = append(lines, "  published: "+d.PublishedAt.Format("Jan 2, 2006")+" ("+f.FormatTimestamp(d.PublishedAt)+")")
	}
	if d.Duration > 0 {
		lines = append(lines, "  duration: "+d.Duration.String())
	}
	if stats := f.formatStats(d); stats != "" {
		lines = append(lines, "  "+stats)
	}
	if len(d.Tags) > 0 {
		lines = append(lines, "  tags: "+strings.Join(d.Tags, ", "))
	}
	if d.Description != "" {
		lines = append(lines, "  "+f.TruncateText(d.Description, 120))
	}
	if d.URL != "" {
		lines = append(lines, "  "+d.URL)
	}

	return strings.Join(lines, "\n") + "\n"
}

// formatStats formats count figures into a single line.
func (f *TerminalFormatter) formatStats(d Detail) string {
	var parts []string

	if d.Views > 0 {
		parts = append(parts, fmt.Sprintf("%d views", d.Views))
	}
	if d.Likes > 0 {
		parts = append(parts, fmt.Sprintf("%d likes", d.Likes))
	}
	if d.Comments > 0 {
		parts = append(parts, fmt.Sprintf("%d comments", d.Comments))
	}
	if d.Subscribers > 0 {
		parts = append(parts, fmt.Sprintf("%d subscribers", d.Subscribers))
	}
	if d.Items > 0 {
		parts = append(parts, fmt.Sprintf("%d items", d.Items))
	}

	return strings.Join(parts, separator)
}

// FormatTimestamp formats a timestamp as relative time.
func (f *TerminalFormatter) FormatTimestamp(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return pluralize(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return pluralize(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return pluralize(int(diff.Hours()/24), "day")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// pluralize returns "N unit ago" or "N units ago" based on count.
func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// TruncateText truncates text to maxLen, adding "..." if truncated.
func (f *TerminalFormatter) TruncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return "..."
	}
	return text[:maxLen-3] + "..."
}
