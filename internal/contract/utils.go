package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Pillar health label constants.
const (
	StrongValue   = "Strong"   // Strong value
	StableValue   = "Stable"   // Stable value
	FragileValue  = "Fragile"  // Fragile value
	CriticalValue = "Critical" // Critical value
)

// Color variables for console output.
var (
	StrongColor   = color.New(color.FgGreen, color.Bold) // StrongColor represents a pillar at legacy level.
	StableColor   = color.New(color.FgCyan)              // StableColor represents a pillar holding up.
	FragileColor  = color.New(color.FgYellow)            // FragileColor represents standard caution, not bold.
	CriticalColor = color.New(color.FgRed, color.Bold)   // CriticalColor represents standard danger.
)

// GetPlainLabel returns a plain text label for a pillar percentage.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score int) string {
	switch {
	case score >= 87:
		return StrongValue
	case score >= 67:
		return StableValue
	case score >= 40:
		return FragileValue
	default:
		return CriticalValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(score int) string {
	text := GetPlainLabel(score)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case StableValue:
		return StableColor.Sprint(text)
	case FragileValue:
		return FragileColor.Sprint(text)
	default: // "Critical"
		return CriticalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// GetDBFilePath returns the path to the SQLite DB file for result storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".xray_results.db"
	}
	return filepath.Join(homeDir, ".xray_results.db")
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// An empty string is treated as true.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
