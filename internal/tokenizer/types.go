package tokenizer

// Token is a single word of lyric text after normalisation.
type Token string

// Document is the token sequence of one source document, usually one song.
type Document []Token

// Corpus is an ordered collection of documents. Order is preserved so that
// training over the same corpus is reproducible.
type Corpus []Document

// Len returns the total number of tokens across all documents.
func (c Corpus) Len() int {
	n := 0
	for _, doc := range c {
		n += len(doc)
	}
	return n
}

// Strings converts a document back to plain strings.
func (d Document) Strings() []string {
	out := make([]string, len(d))
	for i, tok := range d {
		out[i] = string(tok)
	}
	return out
}
