package expval

import "errors"

var (
	// ErrInvalidHandSize means the hand plus melds is not 13 or 14 tiles.
	ErrInvalidHandSize = errors.New("hand must hold 13 or 14 tiles including melds")
	// ErrAlreadyWinning means the hand is already a completed hand.
	ErrAlreadyWinning = errors.New("hand is already winning")
	// ErrInvalidTileCount means more copies of a tile are visible than exist.
	ErrInvalidTileCount = errors.New("tile count went negative")
	// ErrInvalidCounts means a caller-supplied counts vector is malformed.
	ErrInvalidCounts = errors.New("counts vector must have 37 entries")
	// ErrUradoraTableMissing means the uradora table file could not be read.
	ErrUradoraTableMissing = errors.New("uradora table not found")
)
