package catalog

// Quote is a piece of daily wisdom shown on the insight card.
type Quote struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Quotes returns the wisdom quote catalog.
func Quotes() []Quote {
	return []Quote{
		{ID: "q1", Text: "We are what we repeatedly do. Excellence, then, is not an act, but a habit.", Author: "Will Durant"},
		{ID: "q2", Text: "Discipline equals freedom.", Author: "Jocko Willink"},
		{ID: "q3", Text: "You do not rise to the level of your goals. You fall to the level of your systems.", Author: "James Clear"},
		{ID: "q4", Text: "Waste no more time arguing about what a good man should be. Be one.", Author: "Marcus Aurelius"},
		{ID: "q5", Text: "Hard choices, easy life. Easy choices, hard life.", Author: "Jerzy Gregorek"},
		{ID: "q6", Text: "The best time to plant a tree was twenty years ago. The second best time is now.", Author: "Proverb"},
		{ID: "q7", Text: "He who conquers himself is the mightiest warrior.", Author: "Confucius"},
		{ID: "q8", Text: "Do not pray for an easy life, pray for the strength to endure a difficult one.", Author: "Bruce Lee"},
		{ID: "q9", Text: "Your word is your bond. Keep the promises you make to yourself first.", Author: "Unknown"},
	}
}
