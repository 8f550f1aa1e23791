// Package answer derives a short extractive answer from retrieved chunks.
// There is no language model involved: the answer is always a slice of the
// highest-ranked chunk's own text.
package answer

import (
	"strings"

	"github.com/aferrando/golbot/internal/domain/model"
)

// Fixed responses used when extraction cannot produce anything useful.
const (
	// MsgInsufficientData is returned when retrieval produced no chunks.
	MsgInsufficientData = "No hay datos suficientes en la BBDD para responder con precisión."

	// MsgNotFound is returned when chunks exist but none carries usable text.
	MsgNotFound = "No se encuentra información en la base de datos."

	// MsgFallback is the terminal answer when every pipeline stage came up empty.
	MsgFallback = "No hay datos suficientes en la BBDD."
)

// Candidates shorter than this fall back to a prefix of the full text.
const minCandidateLen = 10

// Prefix length used by the fallback cut.
const fallbackCutLen = 200

// Synthesize derives an answer from chunks, which must already be ordered
// by descending score. The first chunk with non-empty content supplies the
// text; the answer is its first line cut at the first period, or a 200-rune
// prefix of the whole text when that line is too short to stand alone.
func Synthesize(chunks []model.ScoredChunk) string {
	if len(chunks) == 0 {
		return MsgInsufficientData
	}

	var content string
	for _, c := range chunks {
		if strings.TrimSpace(c.Content) != "" {
			content = strings.TrimSpace(c.Content)
			break
		}
	}
	if content == "" {
		return MsgNotFound
	}

	candidate := strings.TrimSpace(firstLine(content))
	if i := strings.Index(candidate, "."); i >= 0 {
		candidate = strings.TrimSpace(candidate[:i]) + "."
	}

	if len([]rune(candidate)) < minCandidateLen {
		runes := []rune(content)
		if len(runes) > fallbackCutLen {
			candidate = string(runes[:fallbackCutLen]) + "..."
		} else {
			candidate = content
		}
	}

	if strings.TrimSpace(candidate) == "" {
		return MsgNotFound
	}
	return candidate
}

func firstLine(s string) string {
	if i := strings.Index(s, "\n"); i >= 0 {
		return s[:i]
	}
	return s
}
