package backup

import "io"

// progressWriter wraps a writer and invokes onTick once per chunk bytes
// written. Purely observational; write errors pass through untouched.
type progressWriter struct {
	w        io.Writer
	chunk    int64
	onTick   func(written int64)
	written  int64
	lastTick int64
}

func newProgressWriter(w io.Writer, chunk int64, onTick func(written int64)) *progressWriter {
	return &progressWriter{w: w, chunk: chunk, onTick: onTick}
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.written += int64(n)
	for p.written-p.lastTick >= p.chunk {
		p.lastTick += p.chunk
		p.onTick(p.written)
	}
	return n, err
}
