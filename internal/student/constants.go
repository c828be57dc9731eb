package student

// Student level constants
const (
	// MaxLevel is the student level cap; leaving it costs nothing
	MaxLevel = 90

	// CreditsPerExp is the credit cost of one point of student EXP
	CreditsPerExp = 7

	// MinCount is the smallest size of a roster group
	MinCount = 1
)

// Group naming
const (
	groupAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	groupAlphabetSize = len(groupAlphabet)
)
