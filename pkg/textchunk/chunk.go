package textchunk

import (
	"fmt"
	"strings"
)

// Chunk is a contiguous word-index slice of a larger text. Word bounds are
// 0-based and half-open; adjacent chunks share a boundary.
type Chunk struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	StartWord int    `json:"startWord"`
	EndWord   int    `json:"endWord"`
	AIScore   *int   `json:"aiScore,omitempty"`
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Split breaks text into fixed-size word windows of chunkWords each. Texts at
// or below threshold words (and empty input) need no chunking and yield nil.
// The last window may be shorter.
func Split(text string, chunkWords, threshold int) []Chunk {
	if chunkWords <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 || len(words) <= threshold {
		return nil
	}
	chunks := make([]Chunk, 0, len(words)/chunkWords+1)
	for start := 0; start < len(words); start += chunkWords {
		end := start + chunkWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, Chunk{
			ID:        fmt.Sprintf("chunk-%d", len(chunks)),
			Content:   strings.Join(words[start:end], " "),
			StartWord: start,
			EndWord:   end,
		})
	}
	return chunks
}

// Reassemble joins the selected chunks' content in original chunk order,
// regardless of the order ids were selected in. Unknown ids are ignored.
func Reassemble(chunks []Chunk, selectedIDs []string) string {
	if len(chunks) == 0 || len(selectedIDs) == 0 {
		return ""
	}
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}
	parts := make([]string, 0, len(selectedIDs))
	for _, c := range chunks {
		if selected[c.ID] {
			parts = append(parts, c.Content)
		}
	}
	return strings.Join(parts, "\n\n")
}
