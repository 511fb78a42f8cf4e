// Package textproc computes term-frequency/inverse-document-frequency
// vector similarity between two documents. The score captures surface
// lexical overlap; it is a coarse complement to the semantic judgment, not
// a meaning-level comparison.
package textproc

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// DefaultMaxFeatures caps the number of distinct terms in the fitted
// vocabulary, highest corpus frequency first.
const DefaultMaxFeatures = 1000

// NeutralScore is returned when similarity cannot be computed (empty
// documents, vocabulary-free input).
const NeutralScore = 50.0

// Vectorizer fits a TF-IDF vocabulary over a two-document corpus and
// scores cosine similarity. A Vectorizer re-fits on every Similarity call
// and must not be shared across concurrent evaluations; use one instance
// per evaluation.
type Vectorizer struct {
	maxFeatures int

	vocab []string // terms of the last fit, for inspection
}

// NewVectorizer creates a Vectorizer with the given vocabulary cap.
// A cap of 0 or below uses DefaultMaxFeatures.
func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// Similarity computes the TF-IDF cosine similarity between two documents,
// scaled to [0,100]. Degenerate inputs return NeutralScore instead of an
// error so the scoring pipeline never stalls on odd text.
func (v *Vectorizer) Similarity(textA, textB string) float64 {
	termsA := tokenize(textA)
	termsB := tokenize(textB)

	if len(termsA) == 0 || len(termsB) == 0 {
		return NeutralScore
	}

	v.fit(termsA, termsB)
	if len(v.vocab) == 0 {
		return NeutralScore
	}

	vecA := v.vector(termsA, termsB)
	vecB := v.vector(termsB, termsA)

	similarity := cosine(vecA, vecB)
	if math.IsNaN(similarity) {
		return NeutralScore
	}

	score := similarity * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Vocabulary returns the terms selected by the last fit, mainly for tests.
func (v *Vectorizer) Vocabulary() []string {
	return v.vocab
}

// fit selects the vocabulary: all distinct terms across both documents,
// capped at maxFeatures by combined frequency (ties alphabetical).
func (v *Vectorizer) fit(termsA, termsB map[string]int) {
	combined := make(map[string]int, len(termsA)+len(termsB))
	for term, count := range termsA {
		combined[term] += count
	}
	for term, count := range termsB {
		combined[term] += count
	}

	vocab := make([]string, 0, len(combined))
	for term := range combined {
		vocab = append(vocab, term)
	}
	sort.Slice(vocab, func(i, j int) bool {
		if combined[vocab[i]] != combined[vocab[j]] {
			return combined[vocab[i]] > combined[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})

	if len(vocab) > v.maxFeatures {
		vocab = vocab[:v.maxFeatures]
	}
	sort.Strings(vocab)
	v.vocab = vocab
}

// vector builds the l2-normalized TF-IDF vector for doc over the fitted
// vocabulary. other supplies document frequencies for the 2-doc corpus.
func (v *Vectorizer) vector(doc, other map[string]int) []float64 {
	const corpusSize = 2.0

	vec := make([]float64, len(v.vocab))
	for i, term := range v.vocab {
		tf := float64(doc[term])
		if tf == 0 {
			continue
		}

		df := 1.0
		if other[term] > 0 {
			df = 2.0
		}

		// Smoothed IDF, as the classic TfidfVectorizer computes it.
		idf := math.Log((1+corpusSize)/(1+df)) + 1
		vec[i] = tf * idf
	}

	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}

func cosine(a, b []float64) float64 {
	dot := 0.0
	for i := range a {
		dot += a[i] * b[i]
	}
	// Vectors are already l2-normalized.
	return dot
}

// tokenize lowercases the text, splits on non-alphanumeric runes, and
// drops stop words and single-character terms.
func tokenize(text string) map[string]int {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	terms := make(map[string]int)
	for _, word := range words {
		if len(word) < 2 || stopWords[word] {
			continue
		}
		terms[word]++
	}
	return terms
}
