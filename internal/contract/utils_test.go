package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected string
	}{
		{
			name:     "smallest value possible",
			input:    0,
			expected: CriticalValue,
		},
		{
			name:     "just before fragile",
			input:    39,
			expected: CriticalValue,
		},
		{
			name:     "exactly fragile",
			input:    40,
			expected: FragileValue,
		},
		{
			name:     "just before stable",
			input:    66,
			expected: FragileValue,
		},
		{
			name:     "exactly stable",
			input:    67,
			expected: StableValue,
		},
		{
			name:     "just before strong",
			input:    86,
			expected: StableValue,
		},
		{
			name:     "exactly strong",
			input:    87,
			expected: StrongValue,
		},
		{
			name:     "largest value possible",
			input:    100,
			expected: StrongValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		score int
		label string
	}{
		{"critical", 20, CriticalValue},
		{"fragile", 50, FragileValue},
		{"stable", 73, StableValue},
		{"strong", 93, StrongValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Should contain the plain label
			assert.Contains(t, GetColorLabel(tt.score), tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		expected string
	}{
		{"short text untouched", "Bedrock", 20, "Bedrock"},
		{"exact width untouched", "Bedrock", 7, "Bedrock"},
		{"long text truncated", "My team feels safe admitting mistakes", 12, "My team f..."},
		{"tiny width untouched", "Bedrock", 3, "Bedrock"},
		{"multibyte runes", "héllo wörld", 8, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateText(tt.text, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetDBFilePath(t *testing.T) {
	assert.Contains(t, GetDBFilePath(), ".xray_results.db")
}
