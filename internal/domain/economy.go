package domain

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/osse101/SchalePlanner_Go/internal/utils"
)

// EconomyConfig describes the daily AP income sources a player has access to.
// All contributions are additive.
type EconomyConfig struct {
	DailyTask     bool         `json:"diary_task"`
	ClubLogin     bool         `json:"club_login"`
	WeeklyTask    bool         `json:"weekly_task"`
	LoginBonus    bool         `json:"login_bonus"`
	FreeShop      bool         `json:"free_shop"`
	TwoWeekPack   bool         `json:"two_week_pack"`
	CustomAP      ManualAmount `json:"custom_ap"`
	CafeRank      string       `json:"cafe_rank"`
	PvPRefreshes  int          `json:"pvp_refreshes" validate:"min=0,max=50"`
	PyroRefreshes int          `json:"pyro_refreshes" validate:"min=0,max=50"`
}

// ManualAmount is a free-form number typed by the user. It keeps the raw text
// and is read with Int, which treats anything non-numeric as zero.
type ManualAmount string

// Int returns the numeric value, or zero when the text is not a number.
func (m ManualAmount) Int() int {
	n, _ := utils.ParseLeadingInt(string(m))
	return n
}

// UnmarshalJSON accepts either a JSON number or a string.
func (m *ManualAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = ManualAmount(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*m = ""
		return nil
	}
	*m = ManualAmount(strconv.FormatInt(int64(f), 10))
	return nil
}
