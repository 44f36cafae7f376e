package models

type BucketStat struct {
	Bucket int `json:"bucket"`
	Cards  int `json:"cards"`
}

type ScheduleStat struct {
	Buckets   []BucketStat `json:"buckets"`
	MinBucket *int         `json:"min_bucket"`
	MaxBucket *int         `json:"max_bucket"`
}

type ProgressStat struct {
	TotalCards        int     `json:"total_cards"`
	TotalReviews      int     `json:"total_reviews"`
	SuccessfulReviews int     `json:"successful_reviews"`
	Percent           float64 `json:"percent"`
}

type PracticeSet struct {
	Day   int     `json:"day"`
	Total int     `json:"total"`
	Cards []*Card `json:"cards"`
}

type ReviewResult struct {
	CardID     int64  `json:"card_id"`
	Difficulty string `json:"difficulty"`
	FromBucket int    `json:"from_bucket"`
	ToBucket   int    `json:"to_bucket"`
	Day        int    `json:"day"`
}

type BatchReviewResult struct {
	Applied []ReviewResult `json:"applied"`
	Skipped []int64        `json:"skipped"`
}
