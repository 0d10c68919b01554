package board

// MaxGamePlies bounds the combined depth of game history plus in-search make/unmake
// recursion. The undo stack is a fixed-size array sized to this constant so that neither
// playing a long game nor searching deep ever triggers an allocation.
const MaxGamePlies = 1024

// undoState is the information needed to reverse one Make or MakeNull call. Everything
// the move itself doesn't already encode -- the previous castling rights, en-passant
// state, halfmove clock and hash -- is snapshotted here before the move is applied.
type undoState struct {
	move          Move
	captured      PieceType
	castling      Castling
	enpassant     Square
	epValid       bool
	halfmoveClock int
	hash          ZobristHash
	isNull        bool
}

// Game wraps a Board with the move history needed to make and unmake moves, detect
// repetition, and answer the fifty-move rule. It is the GameState of the engine: the
// Board alone has no memory of how it got there.
type Game struct {
	board   Board
	zobrist *ZobristTable
	hash    ZobristHash

	undo     [MaxGamePlies]undoState
	hashHist [MaxGamePlies + 1]ZobristHash
	ply      int
}

// NewGame starts a Game from a Board snapshot, computing its hash from scratch.
func NewGame(b *Board, z *ZobristTable) *Game {
	g := &Game{board: *b, zobrist: z}
	g.hash = z.Hash(b)
	g.hashHist[0] = g.hash
	return g
}

func (g *Game) Board() *Board        { return &g.board }
func (g *Game) Hash() ZobristHash    { return g.hash }
func (g *Game) Ply() int             { return g.ply }
func (g *Game) Zobrist() *ZobristTable { return g.zobrist }

func castleRookSquares(c Color, kind MoveKind) (from, to Square) {
	if c == White {
		if kind == KingsideCastle {
			return H1, F1
		}
		return A1, D1
	}
	if kind == KingsideCastle {
		return H8, F8
	}
	return A8, D8
}

// Make applies m, updating the board, the incremental Zobrist hash, and pushing an
// undo record. m must be a pseudo-legal move generated from the current position.
func (g *Game) Make(m Move) {
	b := &g.board
	mover := b.turn
	from, to, kind := m.From(), m.To(), m.Kind()

	u := &g.undo[g.ply]
	u.move = m
	u.isNull = false
	u.castling = b.castling
	u.enpassant = b.enpassant
	u.epValid = b.epValid
	u.halfmoveClock = b.halfmoveClock
	u.hash = g.hash

	h := g.hash

	movingPiece, _ := b.pieceTypeAt(mover, from)
	h ^= g.zobrist.PieceKey(mover, movingPiece, from)
	b.removePiece(from, Piece{Type: movingPiece, Color: mover})

	capturedType := NoPieceType
	captureSq := to
	if kind == EnPassant {
		captureSq = NewSquare(to.File(), from.Rank())
		capturedType = Pawn
	} else if kind.IsCapture() {
		capturedType, _ = b.pieceTypeAt(mover.Opponent(), to)
	}
	u.captured = capturedType

	if capturedType != NoPieceType {
		h ^= g.zobrist.PieceKey(mover.Opponent(), capturedType, captureSq)
		b.removePiece(captureSq, Piece{Type: capturedType, Color: mover.Opponent()})
	}

	placedType := movingPiece
	if kind.IsPromotion() {
		placedType = m.Promotion()
	}
	h ^= g.zobrist.PieceKey(mover, placedType, to)
	b.putPiece(to, Piece{Type: placedType, Color: mover})

	if kind.IsCastle() {
		rookFrom, rookTo := castleRookSquares(mover, kind)
		h ^= g.zobrist.PieceKey(mover, Rook, rookFrom)
		b.removePiece(rookFrom, Piece{Type: Rook, Color: mover})
		h ^= g.zobrist.PieceKey(mover, Rook, rookTo)
		b.putPiece(rookTo, Piece{Type: Rook, Color: mover})
	}

	h ^= g.zobrist.CastlingKey(b.castling)
	newCastling := b.castling
	if movingPiece == King {
		newCastling = newCastling.Without(sideRights(mover))
	}
	newCastling = newCastling.Without(castlingRightForRookSquare(from))
	if capturedType == Rook {
		newCastling = newCastling.Without(castlingRightForRookSquare(to))
	}
	b.castling = newCastling
	h ^= g.zobrist.CastlingKey(b.castling)

	h ^= g.zobrist.EnPassantKey(b.enpassant, b.epValid)
	if kind == DoublePawnPush {
		midRank := Rank((int(from.Rank()) + int(to.Rank())) / 2)
		b.enpassant = NewSquare(to.File(), midRank)
		b.epValid = true
	} else {
		b.epValid = false
	}
	h ^= g.zobrist.EnPassantKey(b.enpassant, b.epValid)

	if movingPiece == Pawn || capturedType != NoPieceType {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	if mover == Black {
		b.fullmoveNum++
	}

	b.turn = mover.Opponent()
	h ^= g.zobrist.TurnKey()

	g.hash = h
	g.ply++
	g.hashHist[g.ply] = h
}

// Unmake reverses the most recent Make or MakeNull call.
func (g *Game) Unmake() {
	g.ply--
	u := g.undo[g.ply]
	b := &g.board

	if u.isNull {
		b.turn = b.turn.Opponent()
		b.enpassant = u.enpassant
		b.epValid = u.epValid
		b.halfmoveClock = u.halfmoveClock
		g.hash = u.hash
		return
	}

	mover := b.turn.Opponent()
	m := u.move
	from, to, kind := m.From(), m.To(), m.Kind()

	placedType, _ := b.pieceTypeAt(mover, to)
	b.removePiece(to, Piece{Type: placedType, Color: mover})

	movingType := placedType
	if kind.IsPromotion() {
		movingType = Pawn
	}
	b.putPiece(from, Piece{Type: movingType, Color: mover})

	if u.captured != NoPieceType {
		captureSq := to
		if kind == EnPassant {
			captureSq = NewSquare(to.File(), from.Rank())
		}
		b.putPiece(captureSq, Piece{Type: u.captured, Color: mover.Opponent()})
	}

	if kind.IsCastle() {
		rookFrom, rookTo := castleRookSquares(mover, kind)
		b.removePiece(rookTo, Piece{Type: Rook, Color: mover})
		b.putPiece(rookFrom, Piece{Type: Rook, Color: mover})
	}

	b.castling = u.castling
	b.enpassant = u.enpassant
	b.epValid = u.epValid
	b.halfmoveClock = u.halfmoveClock
	if mover == Black {
		b.fullmoveNum--
	}
	b.turn = mover
	g.hash = u.hash
}

// MakeNull passes the move without moving a piece, used by the search's null-move
// pruning. The en-passant right always lapses (it would no longer be reachable next
// move) and the side to move flips; nothing else about the board changes.
func (g *Game) MakeNull() {
	b := &g.board
	u := &g.undo[g.ply]
	u.isNull = true
	u.castling = b.castling
	u.enpassant = b.enpassant
	u.epValid = b.epValid
	u.halfmoveClock = b.halfmoveClock
	u.hash = g.hash

	h := g.hash
	h ^= g.zobrist.EnPassantKey(b.enpassant, b.epValid)
	b.epValid = false
	h ^= g.zobrist.TurnKey()
	b.turn = b.turn.Opponent()

	g.hash = h
	g.ply++
	g.hashHist[g.ply] = h
}

// UnmakeNull reverses the most recent MakeNull call.
func (g *Game) UnmakeNull() {
	g.Unmake()
}

// GenerateLegalMoves fills list with every legal move in the current position: every
// pseudo-legal move that does not leave the mover's own king in check.
func (g *Game) GenerateLegalMoves(list *MoveList) {
	var pseudo MoveList
	g.board.GeneratePseudoLegalMoves(&pseudo)

	list.Reset()
	mover := g.board.turn
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		g.Make(m)
		legal := !g.board.InCheck(mover)
		g.Unmake()
		if legal {
			list.Add(m)
		}
	}
}

// HasLegalMove reports whether the side to move has at least one legal move, without
// building the full list.
func (g *Game) HasLegalMove() bool {
	var pseudo MoveList
	g.board.GeneratePseudoLegalMoves(&pseudo)

	mover := g.board.turn
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		g.Make(m)
		legal := !g.board.InCheck(mover)
		g.Unmake()
		if legal {
			return true
		}
	}
	return false
}

// IsCheckmate reports whether the side to move is in check with no legal reply.
func (g *Game) IsCheckmate() bool {
	return g.board.InCheck(g.board.turn) && !g.HasLegalMove()
}

// IsStalemate reports whether the side to move is not in check but has no legal move.
func (g *Game) IsStalemate() bool {
	return !g.board.InCheck(g.board.turn) && !g.HasLegalMove()
}

// IsThreefoldRepetition reports whether the current position has occurred (including
// this occurrence) at least three times since the last irreversible move, i.e. within
// the window the halfmove clock has been counting.
func (g *Game) IsThreefoldRepetition() bool {
	limit := g.ply - g.board.halfmoveClock
	if limit < 0 {
		limit = 0
	}
	count := 1
	for p := g.ply - 2; p >= limit; p -= 2 {
		if g.hashHist[p] == g.hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// IsFiftyMoveDraw reports whether the fifty-move rule entitles either side to claim a
// draw: 100 halfmoves (50 full moves) without a pawn move or capture.
func (g *Game) IsFiftyMoveDraw() bool {
	return g.board.halfmoveClock >= 100
}
