// Package embeddings ranks snippets by semantic similarity and caches their
// vectors on disk so a catalog is only re-embedded when its content changes.
package embeddings

import (
	"fmt"
	"math"
	"sort"
)

// CosineSimilarity calculates the cosine similarity between two vectors.
// Returns a value between -1 and 1, where 1 means identical direction.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vectors must have same length: %d vs %d", len(a), len(b))
	}

	if len(a) == 0 {
		return 0, fmt.Errorf("vectors cannot be empty")
	}

	dotProduct := 0.0
	normA := 0.0
	normB := 0.0

	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)

	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("vector norm cannot be zero")
	}

	similarity := dotProduct / (normA * normB)

	// Clamp to [-1, 1] to handle floating point errors
	if similarity > 1.0 {
		similarity = 1.0
	} else if similarity < -1.0 {
		similarity = -1.0
	}

	return similarity, nil
}

// Match is one ranked snippet with its similarity score
type Match struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Rank orders candidate snippet vectors by cosine similarity to the query,
// highest first. Candidates whose vectors cannot be compared are skipped.
func Rank(query []float64, candidates map[string][]float64) []Match {
	matches := make([]Match, 0, len(candidates))
	for name, vec := range candidates {
		score, err := CosineSimilarity(query, vec)
		if err != nil {
			continue
		}
		matches = append(matches, Match{Name: name, Score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Name < matches[j].Name
	})

	return matches
}

// ValidateVector checks an embedding vector for NaN or infinite values
func ValidateVector(vec []float64) error {
	if len(vec) == 0 {
		return fmt.Errorf("embedding vector is empty")
	}

	for i, val := range vec {
		if math.IsNaN(val) {
			return fmt.Errorf("embedding contains NaN at index %d", i)
		}
		if math.IsInf(val, 0) {
			return fmt.Errorf("embedding contains infinite value at index %d", i)
		}
	}

	return nil
}
