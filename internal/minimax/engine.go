// Package minimax finds the optimal computer move with exhaustive minimax search
// and alpha-beta pruning.
//
// The search borrows the caller's board for the duration of one call: every look-ahead
// mark is placed, searched and removed again before the next sibling is tried, so the
// board is bit-for-bit unchanged when a call returns. Recursion depth is bounded by the
// number of cells (MaxDepth); no explicit limit is applied.
package minimax

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// MaxDepth is the deepest ply the search can reach: one per cell.
const MaxDepth = tictactoe.Size * tictactoe.Size

const (
	scoreComputerWins = 1
	scoreHumanWins    = -1
	scoreDraw         = 0
)

// Stats counts the work done by the last search.
type Stats struct {
	Nodes    int `json:"nodes"`
	Cutoffs  int `json:"cutoffs"`
	MaxDepth int `json:"max_depth"`
}

type Option func(*Engine)

// WithoutPruning disables alpha-beta cut-offs, making the search a plain exhaustive minimax.
func WithoutPruning() Option {
	return func(engine *Engine) {
		engine.pruning = false
	}
}

// Engine is not safe for concurrent use. Create one per search.
type Engine struct {
	pruning bool
	stats   Stats
}

func New(opts ...Option) *Engine {
	engine := &Engine{pruning: true}
	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

func (that *Engine) Pruning() bool {
	return that.pruning
}

// Stats returns the counters of the last FindBestMove or Minimax call.
func (that *Engine) Stats() Stats {
	return that.stats
}

// Score maps a terminal outcome to its minimax score. ok is false for InProgress.
// Scores do not depend on depth: a slow win is worth as much as a fast one.
func Score(outcome tictactoe.Outcome) (score int, ok bool) {
	switch outcome {
	case tictactoe.ComputerWins:
		return scoreComputerWins, true
	case tictactoe.HumanWins:
		return scoreHumanWins, true
	case tictactoe.Draw:
		return scoreDraw, true
	default:
		return 0, false
	}
}

// FindBestMove returns the move that is optimal for the computer. Among equally scored
// moves the first one in row-major order wins.
func (that *Engine) FindBestMove(board *tictactoe.Board) (tictactoe.Move, error) {
	that.stats = Stats{}

	var bestMove tictactoe.Move
	bestScore, found := math.MinInt, false

	for row := range board {
		for col := range board[row] {
			if board[row][col] != tictactoe.Empty {
				continue
			}

			board[row][col] = tictactoe.Computer
			score := that.search(board, 1, false, math.MinInt, math.MaxInt)
			board[row][col] = tictactoe.Empty

			// strictly greater keeps the first move among ties
			if !found || score > bestScore {
				bestScore, found = score, true
				bestMove = tictactoe.Move{Row: row, Col: col}
			}
		}
	}

	if !found {
		return tictactoe.Move{}, apperror.ErrNoLegalMove
	}

	return bestMove, nil
}

// Minimax scores board with the given side to move. The computer maximizes, the human
// minimizes; alpha and beta bound the window the caller is interested in.
func (that *Engine) Minimax(board *tictactoe.Board, maximizing bool, alpha, beta int) int {
	that.stats = Stats{}

	return that.search(board, 0, maximizing, alpha, beta)
}

func (that *Engine) search(board *tictactoe.Board, depth int, maximizing bool, alpha, beta int) int {
	that.stats.Nodes++
	that.stats.MaxDepth = max(that.stats.MaxDepth, depth)

	if score, ok := Score(board.Evaluate()); ok {
		return score
	}

	mark, best := tictactoe.Human, math.MaxInt
	if maximizing {
		mark, best = tictactoe.Computer, math.MinInt
	}

	for row := range board {
		for col := range board[row] {
			if board[row][col] != tictactoe.Empty {
				continue
			}

			board[row][col] = mark
			score := that.search(board, depth+1, !maximizing, alpha, beta)
			board[row][col] = tictactoe.Empty

			if maximizing {
				best = max(best, score)
				alpha = max(alpha, best)
			} else {
				best = min(best, score)
				beta = min(beta, best)
			}

			if that.pruning && beta <= alpha {
				that.stats.Cutoffs++
				return best
			}
		}
	}

	return best
}
