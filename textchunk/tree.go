package textchunk

import "github.com/npillmayer/sumtree"

// Tree is the instantiation of sumtree.Tree used to store chunked text.
type Tree = sumtree.Tree[Chunk, Summary]

// New returns an empty text tree.
func New() Tree {
	return sumtree.New[Chunk, Summary]()
}

// FromString splits text into MaxBase-sized, rune-boundary-respecting
// chunks and returns the tree holding them in order, splitting only at
// UTF-8 rune boundaries before constructing chunks.
func FromString(text string) (Tree, error) {
	var chunks []Chunk
	for len(text) > 0 {
		end := MaxBase
		if end > len(text) {
			end = len(text)
		}
		for end > 0 && !isBoundary(text, end) {
			end--
		}
		if end == 0 {
			return Tree{}, ErrInvalidUTF8
		}
		c, err := New(text[:end])
		if err != nil {
			return Tree{}, err
		}
		chunks = append(chunks, c)
		text = text[end:]
	}
	return New().Extend(chunks), nil
}

// String reassembles a text tree's chunks into a single string.
func String(t Tree) string {
	var out []byte
	for _, c := range t.Items() {
		out = append(out, c.Bytes()...)
	}
	return string(out)
}

func isBoundary(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	return i == 0 || (s[i]&0xC0) != 0x80
}
