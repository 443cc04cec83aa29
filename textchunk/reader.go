package textchunk

import (
	"io"

	"github.com/npillmayer/sumtree"
)

// Reader returns an io.Reader over a text tree's bytes, in order. It walks
// a sumtree.Iterator over Chunk items, so it has no dependency on the
// tree's internal node shape.
func Reader(t Tree) io.Reader {
	return &treeReader{it: t.Iter()}
}

type treeReader struct {
	it      *sumtree.Iterator[Chunk, Summary]
	pending []byte
}

func (r *treeReader) Read(p []byte) (n int, err error) {
	for len(r.pending) == 0 {
		chunk, ok := r.it.Next()
		if !ok {
			return 0, io.EOF
		}
		r.pending = chunk.Bytes()
	}
	n = copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}
