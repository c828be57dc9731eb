package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
)

func TestParseModelOutput(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.ScanResult
	}{
		{
			name: "bare JSON",
			text: `{"valid": true, "lv": 45, "exp_current": 1200, "exp_max": 3000}`,
			want: domain.ScanResult{Level: 45, Progress: domain.NumericProgress(1200), MaxExp: domain.NumericProgress(3000)},
		},
		{
			name: "markdown fence",
			text: "```json\n{\"valid\": true, \"lv\": 12, \"exp_current\": 5, \"exp_max\": 100}\n```",
			want: domain.ScanResult{Level: 12, Progress: domain.NumericProgress(5), MaxExp: domain.NumericProgress(100)},
		},
		{
			name: "surrounding prose",
			text: `Here is the result: {"valid": true, "lv": 30, "exp_current": 0, "exp_max": 900} Hope it helps.`,
			want: domain.ScanResult{Level: 30, Progress: domain.NumericProgress(0), MaxExp: domain.NumericProgress(900)},
		},
		{
			name: "full bar",
			text: `{"valid": true, "lv": 90, "exp_current": "MAX", "exp_max": "MAX"}`,
			want: domain.ScanResult{Level: 90, Progress: domain.FullyFilled(), MaxExp: domain.FullyFilled()},
		},
		{
			name: "numbers as strings",
			text: `{"valid": true, "lv": "61", "exp_current": "4500", "exp_max": "9000"}`,
			want: domain.ScanResult{Level: 61, Progress: domain.NumericProgress(4500), MaxExp: domain.NumericProgress(9000)},
		},
		{
			name: "level key fallback",
			text: `{"valid": true, "level": 7, "exp_current": 3}`,
			want: domain.ScanResult{Level: 7, Progress: domain.NumericProgress(3), MaxExp: domain.NumericProgress(0)},
		},
		{
			name: "valid omitted",
			text: `{"lv": 20, "exp_current": 10, "exp_max": 20}`,
			want: domain.ScanResult{Level: 20, Progress: domain.NumericProgress(10), MaxExp: domain.NumericProgress(20)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModelOutput(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseModelOutput_Unreadable(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		errorMsg string
	}{
		{name: "empty", text: "", errorMsg: ErrMsgNoJSONObject},
		{name: "no object", text: "I cannot see a level bar.", errorMsg: ErrMsgNoJSONObject},
		{name: "brace order reversed", text: "} nothing {", errorMsg: ErrMsgNoJSONObject},
		{name: "malformed", text: `{"valid": true, "lv": }`, errorMsg: ErrMsgMalformedJSON},
		{name: "rejected screen", text: `{"valid": false}`, errorMsg: ErrMsgRejectedScreen},
		{name: "error field", text: `{"valid": false, "error": "Screen does not match"}`, errorMsg: "Screen does not match"},
		{name: "zero level", text: `{"valid": true, "lv": 0, "exp_current": 10}`, errorMsg: ErrMsgLevelOutOfRange},
		{name: "level above cap", text: `{"valid": true, "lv": 190, "exp_current": 10}`, errorMsg: ErrMsgLevelOutOfRange},
		{name: "missing level", text: `{"valid": true, "exp_current": 10}`, errorMsg: ErrMsgLevelOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseModelOutput(tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnreadableScreenshot)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}
