package randomprojection

// bufferPair holds the two node×dim working buffers. Roles are derived from
// the iteration parity; rows are never copied between buffers.
type bufferPair struct {
	a, b [][]float64
}

func newBufferPair(nodeCount, dim int) *bufferPair {
	return &bufferPair{
		a: newMatrix(nodeCount, dim),
		b: newMatrix(nodeCount, dim),
	}
}

// current is the buffer iteration i writes.
func (p *bufferPair) current(i int) [][]float64 {
	if i%2 == 0 {
		return p.a
	}
	return p.b
}

// previous is the buffer iteration i reads. previous(0) holds the seed vectors.
func (p *bufferPair) previous(i int) [][]float64 {
	if i%2 == 0 {
		return p.b
	}
	return p.a
}

// seeds is where the random vector generator writes.
func (p *bufferPair) seeds() [][]float64 {
	return p.previous(0)
}

// newMatrix returns rows×cols zeroed rows backed by one contiguous array.
func newMatrix(rows, cols int) [][]float64 {
	if rows == 0 {
		return nil
	}
	backing := make([]float64, rows*cols)
	m := make([][]float64, rows)
	var r int
	for r = range m {
		m[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return m
}
