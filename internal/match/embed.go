package match

import (
	"crypto/md5"
	"encoding/binary"
	"math"
	"strings"
)

// DefaultDimensions is the embedding vector size.
const DefaultDimensions = 128

// Embedder creates hashed character n-gram embeddings of landmark
// names. Vectors are unit length, so the dot product of two vectors is
// their cosine similarity. Names sharing most of their trigrams land
// close together, which is what fuzzy landmark lookup needs.
type Embedder struct {
	dimensions int
}

// NewEmbedder creates an embedder. Non-positive dimensions fall back
// to the default.
func NewEmbedder(dimensions int) *Embedder {
	if dimensions <= 0 {
		dimensions = DefaultDimensions
	}
	return &Embedder{dimensions: dimensions}
}

// Embed creates the vector representation of text.
func (e *Embedder) Embed(text string) []float32 {
	vector := make([]float32, e.dimensions)

	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return vector
	}

	// Word tokens plus padded character trigrams. Tokens anchor whole
	// words, trigrams keep misspellings nearby.
	features := strings.Fields(text)
	padded := " " + text + " "
	runes := []rune(padded)
	for i := 0; i+3 <= len(runes); i++ {
		features = append(features, string(runes[i:i+3]))
	}

	for _, feature := range features {
		hash := md5.Sum([]byte(feature))
		index := binary.BigEndian.Uint32(hash[:4]) % uint32(e.dimensions)
		if hash[4]&1 == 0 {
			vector[index]++
		} else {
			vector[index]--
		}
	}

	var norm float32
	for _, val := range vector {
		norm += val * val
	}
	norm = float32(math.Sqrt(float64(norm)))
	if norm > 0 {
		for i := range vector {
			vector[i] /= norm
		}
	}

	return vector
}

// Cosine returns the similarity of two unit vectors, clamped to zero
// for negatives since anti-correlated names mean nothing here.
func Cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float32
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot < 0 {
		return 0
	}
	return float64(dot)
}
