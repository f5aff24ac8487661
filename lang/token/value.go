package token

// Value carries the payload attached to a scanned token: its exact source
// lexeme, its position, and — for NUMBER and STRING tokens only — the
// decoded literal value.
type Value struct {
	Lexeme string
	Pos    Pos

	// Number is meaningful only when the token Kind is NUMBER.
	Number float64
	// Str is meaningful only when the token Kind is STRING; it holds the
	// string content with the surrounding quotes stripped and no further
	// escape processing (the language has no escape sequences).
	Str string
}
