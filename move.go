package chesscore

import "fmt"

// MoveFlag distinguishes the special-case moves that need different
// apply/undo handling. Values are mutually exclusive small integers; there
// is deliberately no bitwise combination of flags.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagEnPassantCapture
	FlagCastle
	FlagPawnDoublePush
	FlagPromoteQueen
	FlagPromoteKnight
	FlagPromoteRook
	FlagPromoteBishop
)

const (
	moveFromMask = 0x003F
	moveToShift  = 6
	moveToMask   = 0x0FC0
	moveFlagShift = 12
)

// Move is a packed (from, to, flag) triple plus the moving/captured piece
// kinds filled in once the move has been resolved against a Position. The
// sidecar fields are zero value (NoKind) until MoveGen or MakeMove populate
// them; they exist purely for move ordering and for UndoMove, never for
// identity or equality of the move itself.
type Move struct {
	packed   uint16
	moving   PieceKind
	captured PieceKind
}

// NewMove builds a quiet/capture move with no special flag.
func NewMove(from, to Square) Move {
	return NewMoveWithFlag(from, to, FlagNone)
}

// NewMoveWithFlag builds a move carrying one of the special flags.
func NewMoveWithFlag(from, to Square, flag MoveFlag) Move {
	return Move{packed: uint16(from)&moveFromMask | (uint16(to)<<moveToShift)&moveToMask | uint16(flag)<<moveFlagShift}
}

// From returns the origin square.
func (m Move) From() Square { return Square(m.packed & moveFromMask) }

// To returns the destination square.
func (m Move) To() Square { return Square((m.packed & moveToMask) >> moveToShift) }

// Flag returns the move's special-case flag.
func (m Move) Flag() MoveFlag { return MoveFlag(m.packed >> moveFlagShift) }

// HasFlag reports whether the move carries exactly the given flag.
func (m Move) HasFlag(f MoveFlag) bool { return m.Flag() == f }

// IsPromotion reports whether the move's flag is one of the four promotion
// variants.
func (m Move) IsPromotion() bool {
	switch m.Flag() {
	case FlagPromoteQueen, FlagPromoteKnight, FlagPromoteRook, FlagPromoteBishop:
		return true
	default:
		return false
	}
}

// PromotionKind maps a promotion flag to the piece kind it produces, or
// NoKind if the move is not a promotion.
func (m Move) PromotionKind() PieceKind {
	switch m.Flag() {
	case FlagPromoteQueen:
		return Queen
	case FlagPromoteKnight:
		return Knight
	case FlagPromoteRook:
		return Rook
	case FlagPromoteBishop:
		return Bishop
	default:
		return NoKind
	}
}

// Moving returns the kind of the piece making the move, if known.
func (m Move) Moving() PieceKind { return m.moving }

// Captured returns the kind of the piece captured by the move, or NoKind if
// the move captures nothing.
func (m Move) Captured() PieceKind { return m.captured }

// withMetadata returns a copy of m carrying the given moving/captured kinds.
// MakeMove calls this when it records the move in history; MoveGen returns
// that enriched copy in the legal move list so that the search's ordering
// comparator has MVV-LVA data to work with without consulting the Position
// again.
func (m Move) withMetadata(moving, captured PieceKind) Move {
	m.moving = moving
	m.captured = captured
	return m
}

var pieceValue = [7]int{
	NoKind: 0,
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

// Less implements the search's move-ordering key, approximating MVV-LVA:
// higher captured value first, promotions before quiets, any capture before
// any quiet, higher moving-piece value last. It is a total, stable order
// suitable for sort.SliceStable.
func (m Move) Less(other Move) bool {
	mCapVal, oCapVal := pieceValue[m.captured], pieceValue[other.captured]
	if mCapVal != oCapVal {
		return mCapVal > oCapVal
	}
	mPromo, oPromo := m.IsPromotion(), other.IsPromotion()
	if mPromo != oPromo {
		return mPromo
	}
	mIsCap, oIsCap := m.captured != NoKind, other.captured != NoKind
	if mIsCap != oIsCap {
		return mIsCap
	}
	return pieceValue[m.moving] < pieceValue[other.moving]
}

// String renders the boundary SAN-like form used by the perft harness:
// <from-file><from-rank><to-file><to-rank> followed by a lowercase
// promotion letter if the move promotes.
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	switch m.Flag() {
	case FlagPromoteQueen:
		s += "q"
	case FlagPromoteKnight:
		s += "n"
	case FlagPromoteRook:
		s += "r"
	case FlagPromoteBishop:
		s += "b"
	}
	return s
}

// ParseMove parses the boundary SAN-like move string produced by String.
// It does not validate legality against any position; callers match the
// parsed (from, to, promotion) triple against a legal move list.
func ParseMove(s string) (from, to Square, promo PieceKind, err error) {
	if len(s) != 4 && len(s) != 5 {
		return 0, 0, NoKind, fmt.Errorf("chesscore: malformed move string %q", s)
	}
	from, err = parseSquare(s[0:2])
	if err != nil {
		return 0, 0, NoKind, err
	}
	to, err = parseSquare(s[2:4])
	if err != nil {
		return 0, 0, NoKind, err
	}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'n':
			promo = Knight
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		default:
			return 0, 0, NoKind, fmt.Errorf("chesscore: unknown promotion letter %q", s[4])
		}
	}
	return from, to, promo, nil
}

func parseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("chesscore: malformed square %q", s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}
