package domain

// Category is the content classification assigned by the scoring heuristic.
type Category string

const (
	CategoryProfessional  Category = "Professional"
	CategoryEntertainment Category = "Entertainment"
	CategoryNews          Category = "News"
	CategoryEducational   Category = "Educational"
	CategoryPromotional   Category = "Promotional"
	CategoryQuestion      Category = "Question"
	CategoryStory         Category = "Story"
	CategoryOpinion       Category = "Opinion"
	CategoryPersonal      Category = "Personal"
)

// Insights is the deterministic analysis report for a piece of content.
type Insights struct {
	ContentScore    int                  `json:"contentScore"`
	Sentiment       float64              `json:"sentiment"`
	Category        Category             `json:"category"`
	Prediction      EngagementPrediction `json:"engagementPrediction"`
	AudienceReach   int64                `json:"audienceReach"`
	Suggestions     []string             `json:"suggestions"`
	TrendingTopics  []string             `json:"trendingTopics"`
	BestPostingTime string               `json:"bestPostingTime"`
}

// EngagementPrediction is derived arithmetically from the score, the
// sentiment, and question presence.
type EngagementPrediction struct {
	Likes          int64   `json:"likes"`
	Shares         int64   `json:"shares"`
	Comments       int64   `json:"comments"`
	ViralPotential float64 `json:"viralPotential"`
}
