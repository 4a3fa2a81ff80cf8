package randomprojection

import (
	"gonum.org/v1/gonum/mat"
)

// Embeddings is the node-indexed output of a run. Rows are owned by the
// caller once Compute returns; they are not touched again.
type Embeddings struct {
	data      []float64
	rows      [][]float64
	rowLength int
}

func newEmbeddings(nodeCount, rowLength int) *Embeddings {
	e := &Embeddings{rowLength: rowLength}
	if nodeCount == 0 {
		return e
	}
	e.data = make([]float64, nodeCount*rowLength)
	e.rows = make([][]float64, nodeCount)
	var n int
	for n = range e.rows {
		e.rows[n] = e.data[n*rowLength : (n+1)*rowLength : (n+1)*rowLength]
	}
	return e
}

// Len returns the number of rows (one per node).
func (e *Embeddings) Len() int { return len(e.rows) }

// RowLength returns the length of every row.
func (e *Embeddings) RowLength() int { return e.rowLength }

// Row returns the embedding of node, or nil when node is out of range.
// The slice aliases the embeddings storage.
func (e *Embeddings) Row(node int) []float64 {
	if node < 0 || node >= len(e.rows) {
		return nil
	}
	return e.rows[node]
}

// Dense returns the embeddings as a Len()×RowLength() matrix sharing storage
// with e. An empty result yields an empty matrix.
func (e *Embeddings) Dense() *mat.Dense {
	if len(e.rows) == 0 || e.rowLength == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(len(e.rows), e.rowLength, e.data)
}
