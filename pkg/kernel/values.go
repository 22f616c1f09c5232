package kernel

// Embedding is a fixed-length dense vector representation of text
type Embedding []float32

// Dim returns the vector dimensionality
func (e Embedding) Dim() int { return len(e) }

// CategoryLabel is a decoded classifier output label
type CategoryLabel string

func (c CategoryLabel) String() string { return string(c) }
