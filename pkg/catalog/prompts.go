package catalog

import (
	"github.com/abritton2002/GrowthApp4Men/pkg/journal"
)

// JournalPrompts returns the static reflection prompt catalog.
func JournalPrompts() []journal.Prompt {
	return []journal.Prompt{
		{ID: "jp1", Text: "What is one thing you did today that your future self will thank you for?"},
		{ID: "jp2", Text: "Where did you keep your word today, and where did you break it?"},
		{ID: "jp3", Text: "What did you avoid today that you know you should have faced?"},
		{ID: "jp4", Text: "Who depended on you today, and did you show up for them?"},
		{ID: "jp5", Text: "What tested your patience today, and how did you respond?"},
		{ID: "jp6", Text: "What would the man you want to become have done differently today?"},
		{ID: "jp7", Text: "What are you grateful for right now that you usually take for granted?"},
		{ID: "jp8", Text: "What is the hard conversation you are putting off, and what is it costing you?"},
		{ID: "jp9", Text: "What drained your energy today, and what restored it?"},
		{ID: "jp10", Text: "If today were your standard, what would your life look like in five years?"},
	}
}
