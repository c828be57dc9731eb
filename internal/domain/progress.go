package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/osse101/SchalePlanner_Go/internal/utils"
)

// ProgressMaxToken is the wire form of a fully filled EXP bar.
const ProgressMaxToken = "MAX"

// Progress is the experience already accrued toward the next level.
// It is either a plain amount or FullyFilled, meaning the bar is complete and
// the whole requirement of the level counts as earned.
type Progress struct {
	amount int
	full   bool
}

// NumericProgress returns a Progress holding a plain EXP amount.
func NumericProgress(amount int) Progress {
	return Progress{amount: amount}
}

// FullyFilled returns the Progress of a completed EXP bar.
func FullyFilled() Progress {
	return Progress{full: true}
}

// ParseProgress converts user text into a Progress. "MAX" (any case) is a
// full bar; anything else is read as a leading integer, defaulting to zero.
func ParseProgress(s string) Progress {
	if strings.EqualFold(strings.TrimSpace(s), ProgressMaxToken) {
		return FullyFilled()
	}
	n, _ := utils.ParseLeadingInt(s)
	return NumericProgress(n)
}

// IsFull reports whether the bar is complete.
func (p Progress) IsFull() bool {
	return p.full
}

// Amount returns the numeric amount. It is zero for a full bar.
func (p Progress) Amount() int {
	return p.amount
}

// Against returns how much of required is already earned.
func (p Progress) Against(required int) int {
	if p.full {
		return required
	}
	return p.amount
}

func (p Progress) String() string {
	if p.full {
		return ProgressMaxToken
	}
	return strconv.Itoa(p.amount)
}

// MarshalJSON encodes a full bar as "MAX" and anything else as a number.
func (p Progress) MarshalJSON() ([]byte, error) {
	if p.full {
		return json.Marshal(ProgressMaxToken)
	}
	return json.Marshal(p.amount)
}

// UnmarshalJSON accepts a number, a numeric string, "MAX" or null.
// Unreadable values decode to zero progress instead of failing.
func (p *Progress) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = NumericProgress(0)
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = ParseProgress(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*p = NumericProgress(0)
		return nil
	}
	*p = NumericProgress(int(f))
	return nil
}
