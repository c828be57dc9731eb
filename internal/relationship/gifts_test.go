package relationship

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
)

func testCatalog() *Catalog {
	return NewCatalog([]domain.Gift{
		{ID: 1, Name: "Bunny Ears Headband", Rarity: domain.GiftRarityRare},
		{ID: 2, Name: "Mystery Novel", Rarity: domain.GiftRarityRare, Alias: []string{"detective book"}},
		{ID: 3, Name: "Gaming Console", Rarity: domain.GiftRarityEpic, Alias: []string{"handheld"}},
		{ID: 4, Name: "Fancy Tea Set", Rarity: domain.GiftRarityEpic},
		{ID: 5, Name: "Rubber Duck", Rarity: domain.GiftRarityRare},
		{ID: 5, Name: "Duplicate Duck", Rarity: domain.GiftRarityEpic},
	})
}

func TestGiftExpFor(t *testing.T) {
	tests := []struct {
		rarity     string
		preference string
		want       int
	}{
		{domain.GiftRarityRare, "", RareStandardExp},
		{domain.GiftRarityRare, domain.PreferenceLiked, RareLikedExp},
		{domain.GiftRarityRare, domain.PreferenceLove, RareLovedExp},
		{domain.GiftRarityEpic, "", EpicStandardExp},
		{domain.GiftRarityEpic, domain.PreferenceLiked, EpicLikedExp},
		{domain.GiftRarityEpic, domain.PreferenceLove, EpicLovedExp},
		{"legendary", domain.PreferenceLove, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GiftExpFor(tt.rarity, tt.preference), "%s/%s", tt.rarity, tt.preference)
	}
}

func TestEmoticon(t *testing.T) {
	assert.Equal(t, EmoticonHeartEyes, Emoticon(domain.GiftRarityEpic, domain.PreferenceLove))
	assert.Equal(t, EmoticonXD, Emoticon(domain.GiftRarityRare, domain.PreferenceLove))
	assert.Equal(t, EmoticonXD, Emoticon(domain.GiftRarityEpic, domain.PreferenceLiked))
	assert.Equal(t, EmoticonOpenSmile, Emoticon(domain.GiftRarityRare, domain.PreferenceLiked))
	assert.Equal(t, EmoticonSmile, Emoticon("legendary", domain.PreferenceLove))
	assert.Equal(t, EmoticonSmile, Emoticon(domain.GiftRarityEpic, "neutral"))
}

func TestNewCatalog_IgnoresDuplicateIDs(t *testing.T) {
	c := testCatalog()

	assert.Equal(t, 5, c.Len())
	g, ok := c.Gift(5)
	require.True(t, ok)
	assert.Equal(t, "Rubber Duck", g.Name)

	_, ok = c.Gift(99)
	assert.False(t, ok)
}

func TestRankPreferences(t *testing.T) {
	c := testCatalog()

	prefs := c.RankPreferences([]int{1, 3, 99}, []int{4, 2, 3, 1})

	ids := make([]int, len(prefs))
	emoticons := make([]string, len(prefs))
	for i, p := range prefs {
		ids[i] = p.ID
		emoticons[i] = p.Emoticon
	}

	// love: 1 rare -> xd, 3 epic -> heart_eyes; liked: 4 epic -> xd, 2 rare -> open_smile
	assert.Equal(t, []int{3, 1, 4, 2}, ids)
	assert.Equal(t, []string{EmoticonHeartEyes, EmoticonXD, EmoticonXD, EmoticonOpenSmile}, emoticons)
	assert.Equal(t, domain.PreferenceLove, prefs[1].Type, "gift in both lists stays loved")
	assert.Equal(t, RareLovedExp, prefs[1].Exp)
	assert.Equal(t, EpicLikedExp, prefs[2].Exp)
}

func TestRankPreferences_Empty(t *testing.T) {
	assert.Empty(t, testCatalog().RankPreferences(nil, nil))
}

func TestSearch(t *testing.T) {
	c := testCatalog()

	t.Run("matches name", func(t *testing.T) {
		got := c.Search("bunny", 0)
		require.NotEmpty(t, got)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := c.Search("  RUBBER ", 0)
		require.NotEmpty(t, got)
		assert.Equal(t, 5, got[0].ID)
	})

	t.Run("matches alias", func(t *testing.T) {
		got := c.Search("handheld", 0)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("gift returned once when name and alias match", func(t *testing.T) {
		got := c.Search("e", 0)
		seen := map[int]bool{}
		for _, g := range got {
			assert.False(t, seen[g.ID], "gift %d returned twice", g.ID)
			seen[g.ID] = true
		}
	})

	t.Run("limit", func(t *testing.T) {
		assert.Len(t, c.Search("e", 2), 2)
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, c.Search("   ", 5))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Search("zzzzqqq", 5))
	})
}

func TestExpFromGifts(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		name    string
		uses    []domain.GiftUse
		want    int
		wantErr bool
	}{
		{"none", nil, 0, false},
		{"loved epic", []domain.GiftUse{{ID: 3, Preference: domain.PreferenceLove, Quantity: 2}}, 2 * EpicLovedExp, false},
		{"mixed", []domain.GiftUse{
			{ID: 1, Preference: domain.PreferenceLiked, Quantity: 3},
			{ID: 4, Quantity: 1},
		}, 3*RareLikedExp + EpicStandardExp, false},
		{"negative quantity counts as zero", []domain.GiftUse{{ID: 1, Quantity: -4}}, 0, false},
		{"unknown gift", []domain.GiftUse{{ID: 99, Quantity: 1}}, 0, true},
		{"huge quantities saturate", []domain.GiftUse{
			{ID: 3, Preference: domain.PreferenceLove, Quantity: math.MaxInt},
			{ID: 1, Quantity: math.MaxInt / 2},
		}, math.MaxInt, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ExpFromGifts(tt.uses)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
