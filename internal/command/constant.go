package command

// Leading keywords.
const (
	KeywordBye      = "bye"
	KeywordList     = "list"
	KeywordMark     = "mark"
	KeywordUnmark   = "unmark"
	KeywordTodo     = "todo"
	KeywordDeadline = "deadline"
	KeywordEvent    = "event"
	KeywordDelete   = "delete"
	KeywordFind     = "find"
)

// Markers delimiting fields inside deadline and event lines.
const (
	MarkerBy   = "/by"
	MarkerFrom = "/from"
	MarkerTo   = "/to"
)

// Free-text commands take everything after "todo " / "find ".
const freeTextPrefixLen = 5

const maxListTokens = 2
