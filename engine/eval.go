// eval.go is the static positional evaluator: tapered material plus
// piece-square tables, mobility, bishop pair, tempo and a half-move
// damping term. Table contents are reproduced bit-for-bit from the
// source engine's arrays so the two evaluate the same way.
package engine

import "github.com/fsoonaye/chimp/board"

// gamePhaseInc is the per-figure contribution to the game-phase count,
// indexed [NoFigure, Pawn, Knight, Bishop, Rook, Queen, King].
var gamePhaseInc = [board.FigureArraySize + 1]int32{0, 0, 1, 1, 2, 4, 0}

// mgValue / egValue are middlegame/endgame material values, indexed by
// Figure (Pawn..King); NoFigure's slot is unused.
var mgValue = [board.FigureArraySize + 1]int32{0, 124, 781, 825, 1276, 2538, 0}
var egValue = [board.FigureArraySize + 1]int32{0, 206, 854, 915, 1380, 2682, 0}

var mgPawnTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	3, 3, 10, 19, 16, 19, 7, -5,
	-9, -15, 11, 15, 32, 22, 5, -22,
	-4, -23, 6, 20, 40, 17, 4, -8,
	13, 0, -13, 1, 11, -2, -13, 5,
	5, -12, -7, 22, -8, -5, -15, -8,
	-7, 7, -3, -13, 5, -16, 10, -8,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var mgKnightTable = [64]int32{
	-175, -92, -74, -73, -73, -74, -92, -175,
	-77, -41, -27, -15, -15, -27, -41, -77,
	-61, -17, 6, 12, 12, 6, -17, -61,
	-35, 8, 40, 49, 49, 40, 8, -35,
	-34, 13, 44, 51, 51, 44, 13, -34,
	-9, 22, 58, 53, 53, 58, 22, -9,
	-67, -27, 4, 37, 37, 4, -27, -67,
	-201, -83, -56, -26, -26, -56, -83, -201,
}

var mgBishopTable = [64]int32{
	-53, -5, -8, -23, -23, -8, -5, -53,
	-15, 8, 19, 4, 4, 19, 8, -15,
	-7, 21, -5, 17, 17, -5, 21, -7,
	-5, 11, 25, 39, 39, 25, 11, -5,
	-12, 29, 22, 31, 31, 22, 29, -12,
	-16, 6, 1, 11, 11, 1, 6, -16,
	-17, -14, 5, 0, 0, 5, -14, -17,
	-48, 1, -14, -23, -23, -14, 1, -48,
}

var mgRookTable = [64]int32{
	-31, -20, -14, -5, -5, -14, -20, -31,
	-21, -13, -8, 6, 6, -8, -13, -21,
	-25, -11, -1, 3, 3, -1, -11, -25,
	-13, -5, -4, -6, -6, -4, -5, -13,
	-27, -15, -4, 3, 3, -4, -15, -27,
	-22, -2, 6, 12, 12, 6, -2, -22,
	-2, 12, 16, 18, 18, 16, 12, -2,
	-17, -19, -1, 9, 9, -1, -19, -17,
}

var mgQueenTable = [64]int32{
	3, -5, -5, 4, 4, -5, -5, 3,
	-3, 5, 8, 12, 12, 8, 5, -3,
	-3, 6, 13, 7, 7, 13, 6, -3,
	4, 5, 9, 8, 8, 9, 5, 4,
	0, 14, 12, 5, 5, 12, 14, 0,
	-4, 10, 6, 8, 8, 6, 10, -4,
	-5, 6, 10, 8, 8, 10, 6, -5,
	-2, -2, 1, -2, -2, 1, -2, -2,
}

var mgKingTable = [64]int32{
	271, 327, 271, 198, 198, 271, 327, 271,
	278, 303, 234, 179, 179, 234, 303, 278,
	195, 258, 169, 120, 120, 169, 258, 195,
	164, 190, 138, 98, 98, 138, 190, 164,
	154, 179, 105, 70, 70, 105, 179, 154,
	123, 145, 81, 31, 31, 81, 145, 123,
	88, 120, 65, 33, 33, 65, 120, 88,
	59, 89, 45, -1, -1, 45, 89, 59,
}

var egPawnTable = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	-10, -6, 10, 0, 14, 7, -5, -19,
	-10, -10, -10, 4, 4, 3, -6, -4,
	6, -2, -8, -4, -13, -12, -10, -9,
	10, 5, 4, -5, -5, -5, 14, 9,
	28, 20, 21, 28, 30, 7, 6, 13,
	0, -11, 12, 21, 25, 19, 4, 7,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var egKnightTable = [64]int32{
	-96, -65, -49, -21, -21, -49, -65, -96,
	-67, -54, -18, 8, 8, -18, -54, -67,
	-40, -27, -8, 29, 29, -8, -27, -40,
	-35, -2, 13, 28, 28, 13, -2, -35,
	-45, -16, 9, 39, 39, 9, -16, -45,
	-51, -44, -16, 17, 17, -16, -44, -51,
	-69, -50, -51, 12, 12, -51, -50, -69,
	-100, -88, -56, -17, -17, -56, -88, -100,
}

var egBishopTable = [64]int32{
	-57, -30, -37, -12, -12, -37, -30, -57,
	-37, -13, -17, 1, 1, -17, -13, -37,
	-16, -1, -2, 10, 10, -2, -1, -16,
	-20, -6, 0, 17, 17, 0, -6, -20,
	-17, -1, -14, 15, 15, -14, -1, -17,
	-30, 6, 4, 6, 6, 4, 6, -30,
	-31, -20, -1, 1, 1, -1, -20, -31,
	-46, -42, -37, -24, -24, -37, -42, -46,
}

var egRookTable = [64]int32{
	-9, -13, -10, -9, -9, -10, -13, -9,
	-12, -9, -1, -2, -2, -1, -9, -12,
	6, -8, -2, -6, -6, -2, -8, 6,
	-6, 1, -9, 7, 7, -9, 1, -6,
	-5, 8, 7, -6, -6, 7, 8, -5,
	6, 1, -7, 10, 10, -7, 1, 6,
	4, 5, 20, -5, -5, 20, 5, 4,
	18, 0, 19, 13, 13, 19, 0, 18,
}

var egQueenTable = [64]int32{
	-69, -57, -47, -26, -26, -47, -57, -69,
	-55, -31, -22, -4, -4, -22, -31, -55,
	-39, -18, -9, 3, 3, -9, -18, -39,
	-23, -3, 13, 24, 24, 13, -3, -23,
	-29, -6, 9, 21, 21, 9, -6, -29,
	-38, -18, -12, 1, 1, -12, -18, -38,
	-50, -27, -24, -8, -8, -24, -27, -50,
	-75, -52, -43, -36, -36, -43, -52, -75,
}

var egKingTable = [64]int32{
	1, 45, 85, 76, 76, 85, 45, 1,
	53, 100, 133, 135, 135, 133, 100, 53,
	88, 130, 169, 175, 175, 169, 130, 88,
	103, 156, 172, 172, 172, 172, 156, 103,
	96, 166, 199, 199, 199, 199, 166, 96,
	92, 172, 184, 191, 191, 184, 172, 92,
	47, 121, 116, 131, 131, 116, 121, 47,
	11, 59, 73, 78, 78, 73, 59, 11,
}

// mgPst / egPst are indexed by Figure (Pawn..King); NoFigure's slot is
// never read.
var mgPst = [board.FigureArraySize + 1]*[64]int32{
	nil, &mgPawnTable, &mgKnightTable, &mgBishopTable, &mgRookTable, &mgQueenTable, &mgKingTable,
}
var egPst = [board.FigureArraySize + 1]*[64]int32{
	nil, &egPawnTable, &egKnightTable, &egBishopTable, &egRookTable, &egQueenTable, &egKingTable,
}

var knightMobilityMg = [9]int32{-62, -53, -12, -4, 3, 13, 22, 28, 33}
var knightMobilityEg = [9]int32{-81, -56, -31, -16, 5, 11, 17, 20, 25}

var bishopMobilityMg = [14]int32{-48, -20, 16, 26, 38, 51, 55, 63, 63, 68, 81, 81, 91, 98}
var bishopMobilityEg = [14]int32{-59, -23, -3, 13, 24, 42, 54, 57, 65, 73, 78, 86, 88, 97}

var rookMobilityMg = [15]int32{-60, -20, 2, 3, 3, 11, 22, 31, 40, 40, 41, 48, 57, 57, 62}
var rookMobilityEg = [15]int32{-78, -17, 23, 39, 70, 99, 103, 121, 134, 139, 158, 164, 168, 169, 172}

var queenMobilityMg = [28]int32{-30, -12, -8, -9, 20, 23, 23, 35, 38, 53, 64, 65, 65, 66, 67, 67, 72, 72, 77, 79, 93, 108, 108, 108, 110, 114, 114, 116}
var queenMobilityEg = [28]int32{-48, -30, -7, 19, 40, 55, 59, 75, 78, 96, 96, 100, 121, 127, 131, 133, 136, 141, 147, 150, 151, 168, 168, 171, 182, 182, 192, 219}

const (
	tempoBonus      = 28
	bishopPairMg    = 30
	bishopPairEg    = 50
	halfmoveDampFor = 40
)

// Evaluate returns the static score of pos in centipawns, from the
// point of view of the side to move.
func Evaluate(pos *board.Position) Score {
	var mg, eg, phase int32

	materialAndPST(pos, &mg, &eg, &phase)
	mobility(pos, &mg, &eg)

	if pos.ToMove == board.White {
		mg += tempoBonus
	} else {
		mg -= tempoBonus
	}

	if phase > 24 {
		phase = 24
	}
	eval := (mg*phase + eg*(24-phase)) / 24

	if pos.HalfmoveClock > halfmoveDampFor {
		eval = eval * int32(100-pos.HalfmoveClock) / 100
	}

	if pos.ToMove == board.Black {
		eval = -eval
	}
	return Score(eval)
}

func materialAndPST(pos *board.Position, mg, eg, phase *int32) {
	for _, co := range [2]board.Color{board.White, board.Black} {
		sign := int32(1)
		if co == board.Black {
			sign = -1
		}
		for fig := board.FigureMinValue; fig <= board.FigureMaxValue; fig++ {
			pieces := pos.ByPiece(co, fig)
			if fig == board.Bishop && pieces.Count() >= 2 {
				*mg += sign * bishopPairMg
				*eg += sign * bishopPairEg
			}
			for bb := pieces; bb != 0; {
				sq := bb.Pop().POV(co)
				*mg += sign * (mgValue[fig] + mgPst[fig][sq])
				*eg += sign * (egValue[fig] + egPst[fig][sq])
				*phase += gamePhaseInc[fig]
			}
		}
	}
}

func mobility(pos *board.Position, mg, eg *int32) {
	occ := pos.Occupancy()
	for _, co := range [2]board.Color{board.White, board.Black} {
		sign := int32(1)
		if co == board.Black {
			sign = -1
		}
		them := co.Other()
		area := ^pos.ByColor[co]
		enemyPawns := pos.ByPiece(them, board.Pawn)
		var pawnAttacks board.Bitboard
		for bb := enemyPawns; bb != 0; {
			sq := bb.Pop()
			pawnAttacks |= board.BbPawnAttack[them][sq]
		}
		area &^= pawnAttacks

		for bb := pos.ByPiece(co, board.Knight); bb != 0; {
			sq := bb.Pop()
			n := int((board.BbKnightAttack[sq] & area).Count())
			if n > 8 {
				n = 8
			}
			*mg += sign * knightMobilityMg[n]
			*eg += sign * knightMobilityEg[n]
		}
		for bb := pos.ByPiece(co, board.Bishop); bb != 0; {
			sq := bb.Pop()
			n := int((board.BishopMagic[sq].Attack(occ) & area).Count())
			if n > 13 {
				n = 13
			}
			*mg += sign * bishopMobilityMg[n]
			*eg += sign * bishopMobilityEg[n]
		}
		for bb := pos.ByPiece(co, board.Rook); bb != 0; {
			sq := bb.Pop()
			n := int((board.RookMagic[sq].Attack(occ) & area).Count())
			if n > 14 {
				n = 14
			}
			*mg += sign * rookMobilityMg[n]
			*eg += sign * rookMobilityEg[n]
		}
		for bb := pos.ByPiece(co, board.Queen); bb != 0; {
			sq := bb.Pop()
			attacks := board.BishopMagic[sq].Attack(occ) | board.RookMagic[sq].Attack(occ)
			n := int((attacks & area).Count())
			if n > 27 {
				n = 27
			}
			*mg += sign * queenMobilityMg[n]
			*eg += sign * queenMobilityEg[n]
		}
	}
}
