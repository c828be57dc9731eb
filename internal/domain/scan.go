package domain

// ScanResult is the level and EXP read from a screenshot.
type ScanResult struct {
	Level    int      `json:"level"`
	Progress Progress `json:"current_exp"`
	MaxExp   Progress `json:"max_exp"`
}
