package relationship

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/utils"
)

// GiftExpFor returns the EXP a gift grants for a preference type. Types
// other than love and liked get the standard amount; unknown rarities get 0.
func GiftExpFor(rarity, preference string) int {
	switch rarity {
	case domain.GiftRarityRare:
		switch preference {
		case domain.PreferenceLove:
			return RareLovedExp
		case domain.PreferenceLiked:
			return RareLikedExp
		default:
			return RareStandardExp
		}
	case domain.GiftRarityEpic:
		switch preference {
		case domain.PreferenceLove:
			return EpicLovedExp
		case domain.PreferenceLiked:
			return EpicLikedExp
		default:
			return EpicStandardExp
		}
	default:
		return 0
	}
}

// Emoticon returns the reaction a student shows to a gift.
func Emoticon(rarity, preference string) string {
	switch {
	case preference == domain.PreferenceLove && rarity == domain.GiftRarityEpic:
		return EmoticonHeartEyes
	case preference == domain.PreferenceLove && rarity == domain.GiftRarityRare:
		return EmoticonXD
	case preference == domain.PreferenceLiked && rarity == domain.GiftRarityEpic:
		return EmoticonXD
	case preference == domain.PreferenceLiked && rarity == domain.GiftRarityRare:
		return EmoticonOpenSmile
	default:
		return EmoticonSmile
	}
}

// Catalog is the immutable gift list, indexed for lookup and search.
type Catalog struct {
	gifts  []domain.Gift
	byID   map[int]domain.Gift
	search searchItems
}

// NewCatalog indexes gifts. Later duplicates of an ID are ignored.
func NewCatalog(gifts []domain.Gift) *Catalog {
	c := &Catalog{
		gifts: make([]domain.Gift, 0, len(gifts)),
		byID:  make(map[int]domain.Gift, len(gifts)),
	}
	for _, g := range gifts {
		if _, dup := c.byID[g.ID]; dup {
			continue
		}
		c.byID[g.ID] = g
		c.gifts = append(c.gifts, g)

		c.search = append(c.search, searchItem{giftID: g.ID, text: normalize(g.Name)})
		for _, alias := range g.Alias {
			c.search = append(c.search, searchItem{giftID: g.ID, text: normalize(alias)})
		}
	}
	return c
}

// Gifts returns every gift in catalog order.
func (c *Catalog) Gifts() []domain.Gift {
	return slices.Clone(c.gifts)
}

// Gift looks up a gift by ID.
func (c *Catalog) Gift(id int) (domain.Gift, bool) {
	g, ok := c.byID[id]
	return g, ok
}

// Len returns the number of gifts.
func (c *Catalog) Len() int {
	return len(c.gifts)
}

// ExpFromGifts totals the EXP of handing out uses. An unknown gift ID is an
// ErrInvalidInput.
func (c *Catalog) ExpFromGifts(uses []domain.GiftUse) (int, error) {
	total := 0
	for _, u := range uses {
		g, ok := c.byID[u.ID]
		if !ok {
			return 0, fmt.Errorf("%w: unknown gift %d", domain.ErrInvalidInput, u.ID)
		}
		total = utils.SaturatingAdd(total, utils.SaturatingMul(GiftExpFor(g.Rarity, u.Preference), max(u.Quantity, 0)))
	}
	return total, nil
}

// RankPreferences classifies a student's loved and liked gifts and orders
// them by reaction strength. Loved gifts are processed first, so a gift in
// both lists counts as loved. Unknown IDs are skipped. Gifts with the same
// reaction keep their input order.
func (c *Catalog) RankPreferences(love, liked []int) []domain.GiftPreference {
	seen := make(map[int]bool, len(love)+len(liked))
	prefs := make([]domain.GiftPreference, 0, len(love)+len(liked))

	add := func(ids []int, preference string) {
		for _, id := range ids {
			if seen[id] {
				continue
			}
			g, ok := c.byID[id]
			if !ok {
				continue
			}
			seen[id] = true
			prefs = append(prefs, domain.GiftPreference{
				Gift:     g,
				Type:     preference,
				Emoticon: Emoticon(g.Rarity, preference),
				Exp:      GiftExpFor(g.Rarity, preference),
			})
		}
	}
	add(love, domain.PreferenceLove)
	add(liked, domain.PreferenceLiked)

	slices.SortStableFunc(prefs, func(a, b domain.GiftPreference) int {
		return emoticonRank[b.Emoticon] - emoticonRank[a.Emoticon]
	})
	return prefs
}

// Search fuzzy-matches query against gift names and aliases, best match
// first, returning at most limit gifts. Non-positive limits use
// DefaultSearchLimit.
func (c *Catalog) Search(query string, limit int) []domain.Gift {
	query = normalize(query)
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	limit = min(limit, MaxSearchLimit)

	matches := fuzzy.FindFrom(query, c.search)

	results := make([]domain.Gift, 0, min(limit, len(matches)))
	seen := make(map[int]bool, len(matches))
	for _, m := range matches {
		id := c.search[m.Index].giftID
		if seen[id] {
			continue
		}
		seen[id] = true
		results = append(results, c.byID[id])
		if len(results) == limit {
			break
		}
	}
	return results
}

// searchItems implements fuzzy.Source over gift names and aliases
type searchItems []searchItem

type searchItem struct {
	giftID int
	text   string
}

func (s searchItems) String(i int) string {
	return s[i].text
}

func (s searchItems) Len() int {
	return len(s)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
