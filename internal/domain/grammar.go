package domain

// GrammarTopic is a short reference article attached to a level.
type GrammarTopic struct {
	Level   Level  `json:"level"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
