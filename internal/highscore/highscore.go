// Package highscore keeps the best scores of a machine in memory.
//
// The persistent copy lives in storage; the board is what the game shows on
// the paused screen and what the text import/export format round-trips.
package highscore

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Limit is the number of scores kept on a board.
const Limit = 10

// Board is a descending list of the best scores.
type Board struct {
	scores []int
}

// NewBoard creates a board from any scores, keeping the best Limit.
func NewBoard(scores ...int) *Board {
	b := &Board{}
	for _, s := range scores {
		b.Add(s)
	}
	return b
}

// Add inserts a score and returns its 1-based rank, or 0 when it did not
// make the board. Equal scores rank below the ones already present.
func (b *Board) Add(score int) int {
	i := sort.Search(len(b.scores), func(i int) bool { return b.scores[i] < score })
	if i >= Limit {
		return 0
	}
	b.scores = append(b.scores, 0)
	copy(b.scores[i+1:], b.scores[i:])
	b.scores[i] = score
	if len(b.scores) > Limit {
		b.scores = b.scores[:Limit]
	}
	return i + 1
}

// Qualifies reports whether score would make the board.
func (b *Board) Qualifies(score int) bool {
	return len(b.scores) < Limit || score > b.scores[len(b.scores)-1]
}

// Best returns the top score, or 0 on an empty board.
func (b *Board) Best() int {
	if len(b.scores) == 0 {
		return 0
	}
	return b.scores[0]
}

// Scores returns a copy of the scores, best first.
func (b *Board) Scores() []int {
	out := make([]int, len(b.scores))
	copy(out, b.scores)
	return out
}

// Len returns the number of scores on the board.
func (b *Board) Len() int { return len(b.scores) }

// Lines formats the board as zero-padded six digit scores.
func (b *Board) Lines() []string {
	lines := make([]string, len(b.scores))
	for i, s := range b.scores {
		lines[i] = fmt.Sprintf("%06d", s)
	}
	return lines
}

// String returns the text form: one score per line.
func (b *Board) String() string {
	var sb strings.Builder
	for _, s := range b.scores {
		sb.WriteString(strconv.Itoa(s))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads the text form. Blank lines are skipped.
func Parse(text string) (*Board, error) {
	b := &Board{}
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		field := strings.TrimSpace(sc.Text())
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("highscore: line %d: %w", line, err)
		}
		b.Add(n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("highscore: %w", err)
	}
	return b, nil
}
