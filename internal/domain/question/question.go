package question

// Question is a generated prompt derived from a note, paired with the
// answer the model expects. A note owns an ordered list of these; the whole
// list is replaced on regeneration, never patched per question.
type Question struct {
	Text           string `json:"text"`
	ExpectedAnswer string `json:"expected_answer"`
}
