package status

import (
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how per-file notices and the final summary are worded
type FileFormatter interface {
	// FormatFixed formats the notice for a fixed file
	FormatFixed(path string, dryRun bool) string

	// FormatFailed formats the notice for a file that could not be processed
	FormatFailed(path string, err error) string

	// FormatTotal formats the final count line
	FormatTotal(fixed int, dryRun bool) string

	// FormatFailedTotal formats the count of failed files
	FormatFailedTotal(failed int) string
}

// DefaultFileFormatter provides the standard markfix output
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFixed formats a fixed-file notice
func (f *DefaultFileFormatter) FormatFixed(path string, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("%s MARK comments in: %s", color.YellowString("Would fix"), path)
	}
	return fmt.Sprintf("Fixed MARK comments in: %s", path)
}

// FormatFailed formats a failure notice
func (f *DefaultFileFormatter) FormatFailed(path string, err error) string {
	if err == nil {
		return fmt.Sprintf("%s MARK comments in: %s", color.RedString("Failed to fix"), path)
	}
	return fmt.Sprintf("%s MARK comments in: %s: %v", color.RedString("Failed to fix"), path, err)
}

// FormatTotal formats the summary line
func (f *DefaultFileFormatter) FormatTotal(fixed int, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("Total files to fix: %d", fixed)
	}
	return fmt.Sprintf("Total files fixed: %d", fixed)
}

// FormatFailedTotal formats the failure count line
func (f *DefaultFileFormatter) FormatFailedTotal(failed int) string {
	return color.RedString("Total files failed: %d", failed)
}
