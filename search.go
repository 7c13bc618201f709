package chesscore

import (
	"context"
	"sort"
	"time"
)

const (
	infinityScore = 1 << 30
	mateScore     = 30000
)

// Searcher drives a recursive, fail-hard negamax alpha-beta search over a
// Position, using a MoveGen for legal moves and an Evaluator for leaf
// scores. Its only per-call state is the node counter, which ChooseMove
// resets at the start of each search; ChooseMove is safe to call
// repeatedly (not concurrently) on the same Searcher.
type Searcher struct {
	gen   *MoveGen
	eval  *Evaluator
	log   Logger
	nodes uint64
}

// NewSearcher builds a Searcher from a MoveGen and Evaluator. Logger
// defaults to NopLogger; use WithLogger to opt into instrumentation.
func NewSearcher(gen *MoveGen, eval *Evaluator) *Searcher {
	return &Searcher{gen: gen, eval: eval, log: NopLogger{}}
}

// WithLogger returns a copy of s reporting search progress through log.
func (s *Searcher) WithLogger(log Logger) *Searcher {
	clone := *s
	clone.log = log
	return &clone
}

// ChooseMove runs search(depth, -inf, +inf) and returns its best move. It
// returns (Move{}, false) for depth 0 or when the position has no legal
// moves (checkmate or stalemate) — this is not an error, callers detect
// terminal positions through the returned ok.
func (s *Searcher) ChooseMove(pos *Position, depth int) (Move, bool) {
	return s.ChooseMoveContext(context.Background(), pos, depth)
}

// ChooseMoveContext is ChooseMove with an additional cancellation hook: if
// ctx is done mid-search, the recursion unwinds early and returns the best
// move found so far at the root (still a member of AllLegalMoves, never an
// unspecified or illegal move). This is additive instrumentation on top of
// the core contract, not a required control path.
func (s *Searcher) ChooseMoveContext(ctx context.Context, pos *Position, depth int) (Move, bool) {
	if depth <= 0 {
		return Move{}, false
	}

	s.nodes = 0
	start := time.Now()
	s.log.BeginSearch(depth)

	_, best, hasMove := s.negamax(ctx, pos, depth, -infinityScore, infinityScore)

	s.log.EndSearch(Stats{Nodes: s.nodes, Depth: depth, Elapsed: time.Since(start)})
	return best, hasMove
}

// negamax runs fail-hard alpha-beta from the side-to-move's perspective,
// returning (score, best move, has a legal move at all).
func (s *Searcher) negamax(ctx context.Context, pos *Position, depth int, alpha, beta int) (int, Move, bool) {
	s.nodes++

	if depth == 0 {
		return s.eval.Evaluate(pos), Move{}, false
	}

	moves := s.gen.AllLegalMoves(pos, pos.SideToMove())
	sort.SliceStable(moves, func(i, j int) bool { return moves[i].Less(moves[j]) })

	if len(moves) == 0 {
		if s.gen.KingInCheck(pos, pos.SideToMove()) {
			return -mateScore - depth, Move{}, false
		}
		return 0, Move{}, false
	}

	var best Move
	hasBest := false

	for _, m := range moves {
		if err := ctx.Err(); err != nil {
			break
		}

		if err := pos.MakeMove(m); err != nil {
			continue
		}
		childScore, _, _ := s.negamax(ctx, pos, depth-1, -beta, -alpha)
		pos.UndoMove()
		v := -childScore

		if v > alpha {
			alpha = v
			best = m
			hasBest = true
		}
		if alpha >= beta {
			break
		}
	}

	return alpha, best, hasBest
}
