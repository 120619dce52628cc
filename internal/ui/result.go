package ui

import (
	"fmt"
	"strings"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Result represents a result box
type Result struct {
	Type    ResultType // Success or failure
	Title   string     // e.g., "Form is valid"
	Details []Param    // Key-value lines; for failures, one per failing field
	Width   int        // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, details ...Param) *Result {
	return &Result{
		Type:    ResultFailure,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail line
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string
	lines = append(lines, "")

	if r.Type == ResultFailure {
		lines = append(lines, ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title)))
	} else {
		lines = append(lines, SuccessTitleStyle.Render(fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title)))
	}
	lines = append(lines, "")

	for _, d := range r.Details {
		key := ResultKeyStyle.Render(fmt.Sprintf("   %s:", d.Key))
		value := ResultValueStyle.Render(d.Value)
		if r.Type == ResultFailure {
			value = ErrorMessageStyle.Render(d.Value)
		}
		lines = append(lines, key+" "+value)
	}
	lines = append(lines, "")

	content := strings.Join(lines, "\n")
	if r.Type == ResultFailure {
		return ErrorBoxStyle(width).Render(content)
	}
	return SuccessBoxStyle(width).Render(content)
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
