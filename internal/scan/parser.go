package scan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/sensei"
)

// modelOutput is the JSON object the vision model is asked to return.
// Models are inconsistent about types, so numbers may arrive as strings.
type modelOutput struct {
	Valid      *bool               `json:"valid"`
	Lv         domain.ManualAmount `json:"lv"`
	Level      domain.ManualAmount `json:"level"`
	ExpCurrent domain.Progress     `json:"exp_current"`
	ExpMax     domain.Progress     `json:"exp_max"`
	Error      string              `json:"error"`
}

// ParseModelOutput extracts the scan result from raw model text. The text
// may wrap the JSON object in prose or markdown fences; everything from the
// first '{' to the last '}' is decoded. Rejected or unreadable screens return
// an error wrapping domain.ErrUnreadableScreenshot.
func ParseModelOutput(text string) (domain.ScanResult, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return domain.ScanResult{}, fmt.Errorf("%w: %s", domain.ErrUnreadableScreenshot, ErrMsgNoJSONObject)
	}

	var out modelOutput
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return domain.ScanResult{}, fmt.Errorf("%w: %s: %w", domain.ErrUnreadableScreenshot, ErrMsgMalformedJSON, err)
	}

	if out.Error != "" {
		return domain.ScanResult{}, fmt.Errorf("%w: %s", domain.ErrUnreadableScreenshot, out.Error)
	}
	if out.Valid != nil && !*out.Valid {
		return domain.ScanResult{}, fmt.Errorf("%w: %s", domain.ErrUnreadableScreenshot, ErrMsgRejectedScreen)
	}

	level := out.Lv.Int()
	if level == 0 {
		level = out.Level.Int()
	}
	if level < sensei.MinLevel || level > sensei.MaxLevel {
		return domain.ScanResult{}, fmt.Errorf("%w: %s %d", domain.ErrUnreadableScreenshot, ErrMsgLevelOutOfRange, level)
	}

	return domain.ScanResult{
		Level:    level,
		Progress: out.ExpCurrent,
		MaxExp:   out.ExpMax,
	}, nil
}
