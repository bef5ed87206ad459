package expval

// Flag is a bitset of analysis options. Unknown bits are ignored.
type Flag int

const (
	// CalcSyantenDown permits one shape-regressing discard from the root.
	CalcSyantenDown Flag = 1 << iota
	// CalcTegawari also enumerates neutral-draw swaps at the root turn.
	CalcTegawari
	// CalcDoubleReach adds a han when tenpai is reached on turn 0.
	CalcDoubleReach
	// CalcIppatu adds a han when the win lands on the turn right after
	// tenpai.
	CalcIppatu
	// CalcHaiteitumo adds a han when the win lands on the final draw.
	CalcHaiteitumo
	// CalcUradora blends hidden-dora expectations into leaf scores.
	CalcUradora
	// CalcAkaTileTumo splits red-five draws into distinct events.
	CalcAkaTileTumo
	// MaximaizeWinProb switches the discard tie-breaker from expected
	// value to win probability.
	MaximaizeWinProb
	// CalcSyantenDownShift rotates the vectors of shape-regressing
	// candidates forward by one turn. This compensation for a suspected
	// under-count is of debatable value, so it is opt-in.
	CalcSyantenDownShift
)
