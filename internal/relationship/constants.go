package relationship

// MaxRank is the highest relationship rank
const MaxRank = 100

// Gift EXP by rarity and preference
const (
	RareStandardExp = 20
	RareLikedExp    = 40
	RareLovedExp    = 60

	EpicStandardExp = 120
	EpicLikedExp    = 180
	EpicLovedExp    = 240
)

// Gift reaction emoticons, strongest first
const (
	EmoticonHeartEyes = "heart_eyes"
	EmoticonXD        = "xd"
	EmoticonOpenSmile = "open_smile"
	EmoticonSmile     = "smile"
)

var emoticonRank = map[string]int{
	EmoticonHeartEyes: 3,
	EmoticonXD:        2,
	EmoticonOpenSmile: 1,
	EmoticonSmile:     0,
}

// Search defaults
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)
