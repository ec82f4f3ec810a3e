package quote

import "time"

// Quote is a motivational line shown on the dashboard.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{Text: "Success is the sum of small efforts, repeated day in and day out.", Author: "Robert Collier"},
	{Text: "You don't have to be great to start, but you have to start to be great.", Author: "Zig Ziglar"},
	{Text: "The future depends on what you do today.", Author: "Mahatma Gandhi"},
	{Text: "Small deeds done are better than great deeds planned.", Author: "Peter Marshall"},
	{Text: "Discipline is the bridge between goals and accomplishment.", Author: "Jim Rohn"},
	{Text: "A year from now you may wish you had started today.", Author: "Karen Lamb"},
	{Text: "Motivation is what gets you started. Habit is what keeps you going.", Author: "Jim Ryun"},
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Text: "Well done is better than well said.", Author: "Benjamin Franklin"},
	{Text: "Action is the foundational key to all success.", Author: "Pablo Picasso"},
	{Text: "Focus on being productive instead of busy.", Author: "Tim Ferriss"},
	{Text: "Either you run the day or the day runs you.", Author: "Jim Rohn"},
}

// All returns the full quote catalog.
func All() []Quote {
	return quotes
}

// Daily returns the quote of the day. The pick is deterministic per
// calendar day so every request that day sees the same quote.
func Daily(now time.Time, loc *time.Location) Quote {
	return quotes[now.In(loc).YearDay()%len(quotes)]
}
