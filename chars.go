package bidifmt

// Directional formatting characters from the Unicode standard, chapter 23.2.
// The marks (LRM, RLM) are invisible zero-width characters with a strong
// Bidi_Class; they bias adjacent neutral characters without altering the
// visible content. The embedding characters (LRE, RLE) force the enclosed
// run, terminated by PDF, to be treated as having the given direction.
const (
	LRM = "\u200e" // LEFT-TO-RIGHT MARK
	RLM = "\u200f" // RIGHT-TO-LEFT MARK
	LRE = "\u202a" // LEFT-TO-RIGHT EMBEDDING
	RLE = "\u202b" // RIGHT-TO-LEFT EMBEDDING
	PDF = "\u202c" // POP DIRECTIONAL FORMATTING
)
