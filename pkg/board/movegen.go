package board

// GeneratePseudoLegalMoves appends every pseudo-legal move for the side to move into
// list (which is reset first). Pseudo-legal here means every chess-rule-shaped move
// except that it may leave the mover's own king in check; legality filtering happens one
// layer up, in Game, by making each candidate and rejecting those that do.
//
// Moves are generated in a fixed order: pawns, knights, bishops, rooks, queens, king,
// castling.
func (b *Board) GeneratePseudoLegalMoves(list *MoveList) {
	list.Reset()

	c := b.turn
	own := b.occ[c]
	opp := b.occ[c.Opponent()]
	all := own | opp

	b.genPawnMoves(list, c, all)
	b.genPieceMoves(list, c, Knight, own, all)
	b.genPieceMoves(list, c, Bishop, own, all)
	b.genPieceMoves(list, c, Rook, own, all)
	b.genPieceMoves(list, c, Queen, own, all)
	b.genPieceMoves(list, c, King, own, all)
	b.genCastling(list, c, all)
}

func (b *Board) pieceTypeAt(c Color, sq Square) (PieceType, bool) {
	for t := Pawn; t <= King; t++ {
		if b.pieces[c][t].IsSet(sq) {
			return t, true
		}
	}
	return NoPieceType, false
}

func (b *Board) genPieceMoves(list *MoveList, c Color, t PieceType, own, all Bitboard) {
	pieces := b.pieces[c][t]
	for pieces != EmptyBitboard {
		var from Square
		from, pieces = pieces.PopLSB()

		targets := Attackboard(t, from, all) &^ own
		for targets != EmptyBitboard {
			var to Square
			to, targets = targets.PopLSB()

			if captured, ok := b.pieceTypeAt(c.Opponent(), to); ok {
				list.Add(NewMove(from, to, Capture, captured, NoPieceType))
			} else {
				list.Add(NewMove(from, to, Quiet, NoPieceType, NoPieceType))
			}
		}
	}
}

var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func (b *Board) genPawnMoves(list *MoveList, c Color, all Bitboard) {
	pawns := b.pieces[c][Pawn]
	opp := b.occ[c.Opponent()]
	promoRank := PawnPromotionRank(c)

	single := PawnMoveboard(all, c, pawns)
	for targets := single; targets != EmptyBitboard; {
		var to Square
		to, targets = targets.PopLSB()
		from := pawnPushOrigin(c, to)
		b.addPawnAdvance(list, from, to, promoRank)
	}

	double := PawnMoveboard(all, c, single&PawnJumpIntermediateRank(c)) & PawnJumpRank(c)
	for targets := double; targets != EmptyBitboard; {
		var to Square
		to, targets = targets.PopLSB()
		from := pawnDoublePushOrigin(c, to)
		list.Add(NewMove(from, to, DoublePawnPush, NoPieceType, NoPieceType))
	}

	for origin := pawns; origin != EmptyBitboard; {
		var from Square
		from, origin = origin.PopLSB()

		captures := PawnAttackboard(c, from) & opp
		for targets := captures; targets != EmptyBitboard; {
			var to Square
			to, targets = targets.PopLSB()
			captured, _ := b.pieceTypeAt(c.Opponent(), to)
			if promoRank.IsSet(to) {
				for _, pt := range promotionPieces {
					list.Add(NewMove(from, to, CapturePromotion, captured, pt))
				}
			} else {
				list.Add(NewMove(from, to, Capture, captured, NoPieceType))
			}
		}

		if ep, ok := b.EnPassant(); ok && PawnAttackboard(c, from).IsSet(ep) {
			list.Add(NewMove(from, ep, EnPassant, Pawn, NoPieceType))
		}
	}
}

func (b *Board) addPawnAdvance(list *MoveList, from, to Square, promoRank Bitboard) {
	if promoRank.IsSet(to) {
		for _, pt := range promotionPieces {
			list.Add(NewMove(from, to, Promotion, NoPieceType, pt))
		}
		return
	}
	list.Add(NewMove(from, to, Quiet, NoPieceType, NoPieceType))
}

func pawnPushOrigin(c Color, to Square) Square {
	if c == White {
		return to - 8
	}
	return to + 8
}

func pawnDoublePushOrigin(c Color, to Square) Square {
	if c == White {
		return to - 16
	}
	return to + 16
}

// genCastling appends castling moves when every precondition holds: the right is set,
// the mover is not in check, the squares between king and rook are empty, and neither
// the square the king passes through nor its destination is attacked.
func (b *Board) genCastling(list *MoveList, c Color, all Bitboard) {
	if b.InCheck(c) {
		return
	}
	opp := c.Opponent()

	if c == White {
		if b.castling.IsAllowed(WhiteKingSideCastle) && all&(BitMask(F1)|BitMask(G1)) == EmptyBitboard &&
			!b.IsAttacked(F1, opp) && !b.IsAttacked(G1, opp) {
			list.Add(NewMove(E1, G1, KingsideCastle, NoPieceType, NoPieceType))
		}
		if b.castling.IsAllowed(WhiteQueenSideCastle) && all&(BitMask(D1)|BitMask(C1)|BitMask(B1)) == EmptyBitboard &&
			!b.IsAttacked(D1, opp) && !b.IsAttacked(C1, opp) {
			list.Add(NewMove(E1, C1, QueensideCastle, NoPieceType, NoPieceType))
		}
	} else {
		if b.castling.IsAllowed(BlackKingSideCastle) && all&(BitMask(F8)|BitMask(G8)) == EmptyBitboard &&
			!b.IsAttacked(F8, opp) && !b.IsAttacked(G8, opp) {
			list.Add(NewMove(E8, G8, KingsideCastle, NoPieceType, NoPieceType))
		}
		if b.castling.IsAllowed(BlackQueenSideCastle) && all&(BitMask(D8)|BitMask(C8)|BitMask(B8)) == EmptyBitboard &&
			!b.IsAttacked(D8, opp) && !b.IsAttacked(C8, opp) {
			list.Add(NewMove(E8, C8, QueensideCastle, NoPieceType, NoPieceType))
		}
	}
}
