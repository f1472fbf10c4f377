// Package insight implements the deterministic content scoring heuristic.
// Analyze is a pure function over surface text features: same input, same
// report, no stored state and no randomness.
package insight

import (
	"math"
	"strings"

	"github.com/social360/social360/internal/domain"
)

var engagementKeywords = []string{
	"amazing", "awesome", "beautiful", "best", "excited", "exclusive",
	"free", "great", "happy", "help", "important", "incredible", "launch",
	"love", "new", "powerful", "proud", "secret", "thank", "win",
}

var positiveWords = []string{
	"love", "great", "awesome", "happy", "amazing",
	"excellent", "good", "wonderful", "best", "fantastic",
}

var negativeWords = []string{
	"hate", "terrible", "awful", "sad", "bad",
	"worst", "horrible", "angry", "disappointing", "poor",
}

var emojiSet = map[rune]struct{}{
	'😀': {}, '😂': {}, '😍': {}, '🔥': {}, '❤': {},
	'👍': {}, '🎉': {}, '😊': {}, '🙌': {}, '💯': {},
	'😎': {}, '🤔': {}, '😢': {}, '🚀': {}, '✨': {},
	'💪': {}, '🙏': {}, '👏': {}, '😅': {}, '🥳': {},
}

var trendingVocabulary = []string{
	"ai", "technology", "climate", "crypto", "music",
	"travel", "food", "fitness", "gaming", "fashion",
}

// categoryRules are evaluated in order; the first match wins. The Question
// rule is positional and handled inline since it keys off '?' presence.
var categoryRules = []struct {
	category domain.Category
	words    []string
}{
	{domain.CategoryProfessional, []string{"work", "job", "career"}},
	{domain.CategoryEntertainment, []string{"movie", "game", "fun"}},
	{domain.CategoryNews, []string{"news", "update", "announcement"}},
	{domain.CategoryEducational, []string{"learn", "study", "education"}},
	{domain.CategoryPromotional, []string{"buy", "sale", "promotion"}},
}

var lateCategoryRules = []struct {
	category domain.Category
	words    []string
}{
	{domain.CategoryStory, []string{"story", "happened", "experience"}},
	{domain.CategoryOpinion, []string{"think", "believe", "opinion"}},
}

// Analyze scores content and derives category, engagement prediction,
// audience reach, suggestions, trending topics, and a posting-time hint.
func Analyze(content string) domain.Insights {
	lower := strings.ToLower(content)
	wordCount := len(strings.Fields(content))
	hashtags := strings.Count(content, "#")
	hasQuestion := strings.Contains(content, "?")
	emoji := countEmoji(content)

	score := 50

	switch {
	case wordCount >= 10 && wordCount <= 50:
		score += 20
	case wordCount > 50:
		score += 10
	}

	for _, kw := range engagementKeywords {
		score += 2 * strings.Count(lower, kw)
	}

	switch {
	case hashtags >= 1 && hashtags <= 3:
		score += 10
	case hashtags > 3:
		score -= 5
	}

	if hasQuestion {
		score += 15
	}

	switch {
	case emoji >= 1 && emoji <= 3:
		score += 5
	case emoji > 3:
		score -= 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	sentiment := 0.0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			sentiment += 0.1
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			sentiment -= 0.1
		}
	}
	sentiment = math.Max(-1.0, math.Min(1.0, sentiment))

	category := classify(lower, hasQuestion)

	frac := float64(score) / 100
	question := 0.0
	if hasQuestion {
		question = 1.0
	}
	tagBonus := 0.0
	if hashtags > 0 {
		tagBonus = 0.2
	}

	prediction := domain.EngagementPrediction{
		Likes:          int64(50*frac + 20*sentiment + 15*question),
		Shares:         int64(20*frac + 10*sentiment),
		Comments:       int64(30*frac + 25*question),
		ViralPotential: math.Min(1.0, frac+0.3*math.Abs(sentiment)+tagBonus),
	}

	return domain.Insights{
		ContentScore:    score,
		Sentiment:       sentiment,
		Category:        category,
		Prediction:      prediction,
		AudienceReach:   audienceReach(score),
		Suggestions:     suggestions(wordCount, hashtags, emoji, hasQuestion, score),
		TrendingTopics:  trendingTopics(lower),
		BestPostingTime: bestPostingTime(category),
	}
}

func classify(lower string, hasQuestion bool) domain.Category {
	for _, rule := range categoryRules {
		if containsAny(lower, rule.words) {
			return rule.category
		}
	}
	if hasQuestion {
		return domain.CategoryQuestion
	}
	for _, rule := range lateCategoryRules {
		if containsAny(lower, rule.words) {
			return rule.category
		}
	}
	return domain.CategoryPersonal
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func countEmoji(content string) int {
	count := 0
	for _, r := range content {
		if _, ok := emojiSet[r]; ok {
			count++
		}
	}
	return count
}

func audienceReach(score int) int64 {
	switch {
	case score > 80:
		return 10000
	case score > 60:
		return 5000
	case score > 40:
		return 2000
	default:
		return 500
	}
}

// suggestions appends advisory strings in a fixed check order so the report
// is reproducible.
func suggestions(wordCount, hashtags, emoji int, hasQuestion bool, score int) []string {
	out := []string{}
	if wordCount < 10 {
		out = append(out, "Add more detail; very short updates get less engagement")
	}
	if wordCount > 50 {
		out = append(out, "Consider trimming; long updates lose readers")
	}
	if hashtags == 0 {
		out = append(out, "Add 1-3 hashtags to improve discoverability")
	}
	if hashtags > 3 {
		out = append(out, "Reduce hashtags; more than 3 reads as spam")
	}
	if !hasQuestion && score < 60 {
		out = append(out, "Ask a question to invite replies")
	}
	if emoji == 0 {
		out = append(out, "A well-placed emoji can lift engagement")
	}
	if emoji > 3 {
		out = append(out, "Too many emoji can feel unprofessional")
	}
	return out
}

func trendingTopics(lower string) []string {
	topics := []string{}
	for _, topic := range trendingVocabulary {
		if strings.Contains(lower, topic) {
			topics = append(topics, topic)
		}
	}
	return topics
}

func bestPostingTime(category domain.Category) string {
	switch category {
	case domain.CategoryProfessional:
		return "Tuesday-Thursday, 9:00-11:00 AM"
	case domain.CategoryEntertainment:
		return "Friday-Saturday, 7:00-10:00 PM"
	default:
		return "Daily, 12:00-2:00 PM"
	}
}
