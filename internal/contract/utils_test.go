package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		rate     *float64
		expected string
	}{
		{"nil rate is critical", nil, CriticalValue},
		{"just below moderate", ptr(0.49), LowValue},
		{"exactly moderate", ptr(0.5), ModerateValue},
		{"just below high", ptr(0.79), ModerateValue},
		{"exactly high", ptr(0.8), HighValue},
		{"perfect satisfaction", ptr(1.0), HighValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.rate))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		rate  *float64
		label string
	}{
		{"nil", nil, CriticalValue},
		{"low", ptr(0.2), LowValue},
		{"moderate", ptr(0.6), ModerateValue},
		{"high", ptr(0.9), HighValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.rate)
			assert.Contains(t, result, tt.label)
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
		tempFile := filepath.Join(os.TempDir(), "coopmetrics_test_output.txt")
		defer func() { _ = os.Remove(tempFile) }()

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"TRUE", true, false},
		{"1", true, false},
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
