package entities

// Question pairs a prompt with the report field its answer lands in.
type Question struct {
	Field  ReportField
	Prompt string
}

// Questions is the ordered standup sequence. The conversation question index
// is a position in this slice; reordering it mid-flight would misfile
// answers, so it is fixed at compile time.
var Questions = []Question{
	{Field: FieldFeeling, Prompt: "How are you feeling today?"},
	{Field: FieldYesterday, Prompt: "What did you work on yesterday?"},
	{Field: FieldToday, Prompt: "What will you work on today?"},
	{Field: FieldBlockers, Prompt: "Anything blocking you?"},
}

const (
	// ClosingMessage acknowledges a completed standup.
	ClosingMessage = "Thanks! Your standup for today is recorded."
	// SkippedMessage acknowledges an explicitly skipped day.
	SkippedMessage = "Got it, skipping today's standup. See you tomorrow!"
	// OpeningMessage precedes the first question of a cycle.
	OpeningMessage = "Good morning! Time for your daily standup."
)
