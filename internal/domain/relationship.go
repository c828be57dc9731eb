package domain

// RankResult is the outcome of spending relationship EXP.
type RankResult struct {
	FinalRank   int `json:"final_rank"`
	LeftoverExp int `json:"leftover_exp"`
}

// Gift rarities
const (
	GiftRarityRare = "rare"
	GiftRarityEpic = "epic"
)

// Gift preference types
const (
	PreferenceLove  = "love"
	PreferenceLiked = "liked"
)

// Gift is an item that raises relationship EXP.
type Gift struct {
	ID     int      `json:"id" validate:"required,gt=0"`
	Name   string   `json:"name" validate:"required"`
	Rarity string   `json:"rarity" validate:"required,oneof=rare epic"`
	Alias  []string `json:"alias,omitempty"`
}

// GiftPreference is a gift as a particular student reacts to it.
type GiftPreference struct {
	Gift
	Type     string `json:"type"`
	Emoticon string `json:"emoticon"`
	Exp      int    `json:"exp"`
}

// GiftUse is a number of one gift handed to a student with a given reaction.
type GiftUse struct {
	ID         int    `json:"id" validate:"required,gt=0"`
	Preference string `json:"preference"`
	Quantity   int    `json:"quantity" validate:"min=0,max=9999"`
}
