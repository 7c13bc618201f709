package chesscore

// MoveGen generates pseudo-legal moves per piece and filters them to legal
// moves by a trial-apply self-check test, against a fixed set of attack
// tables. Unlike a pin-aware generator, it never special-cases pinned
// pieces or discovered checks; every candidate is proven legal (or
// rejected) the same way: make it, ask whether the mover's own king is now
// attacked, undo it.
type MoveGen struct {
	tables *AttackTables
}

// NewMoveGen builds a MoveGen against the shared, package-level attack
// tables.
func NewMoveGen() *MoveGen {
	return &MoveGen{tables: defaultAttackTables}
}

// NewMoveGenWithTables builds a MoveGen against caller-supplied attack
// tables, useful for tests that exercise a from-scratch-built AttackTables
// instance instead of the shared default.
func NewMoveGenWithTables(at *AttackTables) *MoveGen {
	return &MoveGen{tables: at}
}

// AllLegalMoves returns every legal move available to side in pos. It
// returns an empty list when side is not pos's side to move.
func (g *MoveGen) AllLegalMoves(pos *Position, side Color) []Move {
	moves := make([]Move, 0, 48)
	own := pos.OccupancyOf(side)
	for bb := own; !bb.IsEmpty(); {
		var sq Square
		sq, bb = bb.PopLSB()
		moves = g.legalMovesFromInto(pos, sq, moves)
	}
	return moves
}

// LegalMovesFrom returns the legal moves available to the piece on sq, or
// an empty slice if sq is empty or holds the side not to move.
func (g *MoveGen) LegalMovesFrom(pos *Position, sq Square) []Move {
	return g.legalMovesFromInto(pos, sq, nil)
}

func (g *MoveGen) legalMovesFromInto(pos *Position, sq Square, out []Move) []Move {
	kind, color, ok := pos.PieceAt(sq)
	if !ok || color != pos.SideToMove() {
		return out
	}

	pseudo := g.pseudoLegalMovesFrom(pos, sq, kind, color)
	for _, m := range pseudo {
		if pos.MakeMove(m) != nil {
			continue
		}
		// MakeMove enriches the move with its resolved moving/captured
		// piece kinds before pushing it to history; recover that enriched
		// copy so the search's ordering comparator has MVV-LVA data to
		// work with, rather than re-deriving it from the board later.
		enriched, _ := pos.LastMove()
		inCheck := g.KingInCheck(pos, color)
		pos.UndoMove()
		if !inCheck {
			out = append(out, enriched)
		}
	}
	return out
}

func (g *MoveGen) pseudoLegalMovesFrom(pos *Position, sq Square, kind PieceKind, color Color) []Move {
	switch kind {
	case Pawn:
		return g.pawnMoves(pos, sq, color)
	case Knight:
		return g.leaperMoves(pos, sq, color, g.tables.KnightAttacksAt(sq))
	case Bishop:
		return g.sliderMoves(pos, sq, color, g.tables.BishopAttacks(sq, pos.Occupancy()))
	case Rook:
		return g.sliderMoves(pos, sq, color, g.tables.RookAttacks(sq, pos.Occupancy()))
	case Queen:
		return g.sliderMoves(pos, sq, color, g.tables.QueenAttacks(sq, pos.Occupancy()))
	case King:
		moves := g.leaperMoves(pos, sq, color, g.tables.KingAttacksAt(sq))
		return g.appendCastlingMoves(pos, sq, color, moves)
	default:
		return nil
	}
}

func (g *MoveGen) leaperMoves(pos *Position, sq Square, color Color, attacks Bitboard) []Move {
	targets := attacks &^ pos.OccupancyOf(color)
	moves := make([]Move, 0, targets.PopCount())
	for bb := targets; !bb.IsEmpty(); {
		var to Square
		to, bb = bb.PopLSB()
		moves = append(moves, NewMove(sq, to))
	}
	return moves
}

func (g *MoveGen) sliderMoves(pos *Position, sq Square, color Color, attacks Bitboard) []Move {
	return g.leaperMoves(pos, sq, color, attacks)
}

func (g *MoveGen) pawnMoves(pos *Position, sq Square, color Color) []Move {
	moves := make([]Move, 0, 4)
	occ := pos.Occupancy()
	file, rank := sq.File(), sq.Rank()

	var dir, startRank, promoRank int
	if color == White {
		dir, startRank, promoRank = 1, 1, 7
	} else {
		dir, startRank, promoRank = -1, 6, 0
	}

	pushRank := rank + dir
	if pushRank >= 0 && pushRank <= 7 {
		pushSq := NewSquare(file, pushRank)
		if !occ.Test(pushSq) {
			moves = appendPawnMove(moves, sq, pushSq, FlagNone, promoRank)

			if rank == startRank {
				doubleRank := rank + 2*dir
				doubleSq := NewSquare(file, doubleRank)
				if !occ.Test(doubleSq) {
					moves = append(moves, NewMoveWithFlag(sq, doubleSq, FlagPawnDoublePush))
				}
			}
		}
	}

	enemy := pos.OccupancyOf(color.Opponent())
	for bb := g.tables.PawnAttacksAt(color, sq) & enemy; !bb.IsEmpty(); {
		var to Square
		to, bb = bb.PopLSB()
		moves = appendPawnMove(moves, sq, to, FlagNone, promoRank)
	}

	if lm, ok := pos.LastMove(); ok && lm.HasFlag(FlagPawnDoublePush) {
		epRank := 4
		if color == Black {
			epRank = 3
		}
		if rank == epRank && abs(lm.To().File()-file) == 1 && lm.To().Rank() == rank {
			to := NewSquare(lm.To().File(), rank+dir)
			moves = append(moves, NewMoveWithFlag(sq, to, FlagEnPassantCapture))
		}
	}

	return moves
}

func appendPawnMove(moves []Move, from, to Square, flag MoveFlag, promoRank int) []Move {
	if to.Rank() == promoRank {
		moves = append(moves,
			NewMoveWithFlag(from, to, FlagPromoteQueen),
			NewMoveWithFlag(from, to, FlagPromoteKnight),
			NewMoveWithFlag(from, to, FlagPromoteRook),
			NewMoveWithFlag(from, to, FlagPromoteBishop),
		)
		return moves
	}
	return append(moves, NewMoveWithFlag(from, to, flag))
}

// appendCastlingMoves appends any castling moves available to the king on
// sq, given the rights, emptiness, and threat-map conditions of 4.5.
func (g *MoveGen) appendCastlingMoves(pos *Position, sq Square, color Color, moves []Move) []Move {
	homeSq := whiteKingHome
	kingsideRight, queensideRight := CastleWhiteKingside, CastleWhiteQueenside
	rank := 0
	if color == Black {
		homeSq = blackKingHome
		kingsideRight, queensideRight = CastleBlackKingside, CastleBlackQueenside
		rank = 7
	}
	if sq != homeSq {
		return moves
	}

	rights := pos.CastlingRights()
	occ := pos.Occupancy()
	threats := g.ThreatMap(pos, color)

	if threats.Test(sq) {
		return moves
	}

	if rights&kingsideRight != 0 {
		fSq, gSq, hSq := NewSquare(5, rank), NewSquare(6, rank), NewSquare(7, rank)
		if k, c, ok := pos.PieceAt(hSq); ok && k == Rook && c == color {
			if !occ.Test(fSq) && !occ.Test(gSq) && !threats.Test(fSq) && !threats.Test(gSq) {
				moves = append(moves, NewMoveWithFlag(sq, gSq, FlagCastle))
			}
		}
	}

	if rights&queensideRight != 0 {
		dSq, cSq, bSq, aSq := NewSquare(3, rank), NewSquare(2, rank), NewSquare(1, rank), NewSquare(0, rank)
		if k, c, ok := pos.PieceAt(aSq); ok && k == Rook && c == color {
			if !occ.Test(dSq) && !occ.Test(cSq) && !occ.Test(bSq) && !threats.Test(dSq) && !threats.Test(cSq) {
				moves = append(moves, NewMoveWithFlag(sq, cSq, FlagCastle))
			}
		}
	}

	return moves
}

// ThreatMap returns the union of every attack set of every piece belonging
// to the side opposing color, against the current occupancy. It is used
// both for check detection and for castling-through-check legality.
func (g *MoveGen) ThreatMap(pos *Position, color Color) Bitboard {
	enemy := color.Opponent()
	occ := pos.Occupancy()
	var threats Bitboard

	for bb := pos.PiecesOf(Pawn, enemy); !bb.IsEmpty(); {
		var sq Square
		sq, bb = bb.PopLSB()
		threats |= g.tables.PawnAttacksAt(enemy, sq)
	}
	for bb := pos.PiecesOf(Knight, enemy); !bb.IsEmpty(); {
		var sq Square
		sq, bb = bb.PopLSB()
		threats |= g.tables.KnightAttacksAt(sq)
	}
	for bb := pos.PiecesOf(Bishop, enemy); !bb.IsEmpty(); {
		var sq Square
		sq, bb = bb.PopLSB()
		threats |= g.tables.BishopAttacks(sq, occ)
	}
	for bb := pos.PiecesOf(Rook, enemy); !bb.IsEmpty(); {
		var sq Square
		sq, bb = bb.PopLSB()
		threats |= g.tables.RookAttacks(sq, occ)
	}
	for bb := pos.PiecesOf(Queen, enemy); !bb.IsEmpty(); {
		var sq Square
		sq, bb = bb.PopLSB()
		threats |= g.tables.QueenAttacks(sq, occ)
	}
	for bb := pos.PiecesOf(King, enemy); !bb.IsEmpty(); {
		var sq Square
		sq, bb = bb.PopLSB()
		threats |= g.tables.KingAttacksAt(sq)
	}

	return threats
}

// KingInCheck reports whether color's king currently sits on a threatened
// square.
func (g *MoveGen) KingInCheck(pos *Position, color Color) bool {
	king := pos.PiecesOf(King, color)
	if king.IsEmpty() {
		return false
	}
	return !(king & g.ThreatMap(pos, color)).IsEmpty()
}
