package model

// UserReliability is the per-user roll-up used for participant filtering.
// Counters are plain ints: a user with no rows in a category reports 0.
type UserReliability struct {
	UserID string `json:"userId"`

	TotalChoices        int `json:"totalChoices"`
	ConsistentChoices   int `json:"consistentChoices"`
	InconsistentChoices int `json:"inconsistentChoices"`
	ProbableChoices     int `json:"probableChoices"`
	ImprobableChoices   int `json:"improbableChoices"`

	// TotalConsistencyChoices counts rows belonging to groups with more than
	// one repeat, i.e. the denominator for consistency rates.
	TotalConsistencyChoices int `json:"totalConsistencyChoices"`

	NumEasyChoicePairs int `json:"numEasyChoicePairs"`
}
