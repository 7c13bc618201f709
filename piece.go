package chesscore

// Square is an integer 0..63. Square 0 is a1, square 7 is h1, square 56 is
// a8, square 63 is h8.
type Square uint8

// File returns the file of sq, 0 (a) through 7 (h).
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the rank of sq, 0 (rank 1) through 7 (rank 8).
func (sq Square) Rank() int { return int(sq) >> 3 }

// NewSquare builds a Square from a zero-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func (sq Square) String() string {
	f := sq.File()
	r := sq.Rank()
	return string([]byte{byte('a' + f), byte('1' + r)})
}

// PieceKind is one of the six chess piece types, or NoKind for an empty
// square.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "none"
	}
}

// Color is White or Black.
type Color uint8

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// pieceLetters maps (color, kind) to the FEN letter, indexed [color][kind].
// Row 0 is white (uppercase), row 1 is black (lowercase). Index 0 (NoKind)
// is unused.
var pieceLetters = [2][7]byte{
	{0, 'P', 'N', 'B', 'R', 'Q', 'K'},
	{0, 'p', 'n', 'b', 'r', 'q', 'k'},
}
