package expval

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestCreateProbTables(t *testing.T) {
	is := is.New(t)
	c := &Calculator{maxTumo: 17}
	c.createProbTables(121)

	// tumoProb[k][j] = k / (W - j)
	is.Equal(c.tumoProbTable[0][0], 0.0)
	is.True(math.Abs(c.tumoProbTable[4][0]-4.0/121) < 1e-12)
	is.True(math.Abs(c.tumoProbTable[2][10]-2.0/111) < 1e-12)

	// survival: row 0 is all ones, other rows decay
	for j := 0; j < 17; j++ {
		is.True(math.Abs(c.notTumoProbTable[0][j]-1) < 1e-12)
	}
	s := 8
	is.Equal(c.notTumoProbTable[s][0], 1.0)
	want := 1.0
	for j := 0; j < 5; j++ {
		want *= float64(121-s-j) / float64(121-j)
	}
	is.True(math.Abs(c.notTumoProbTable[s][5]-want) < 1e-12)

	// monotone nonincreasing in j
	for j := 1; j < 17; j++ {
		is.True(c.notTumoProbTable[s][j] <= c.notTumoProbTable[s][j-1])
	}
}

func TestProbTableTruncation(t *testing.T) {
	is := is.New(t)
	c := &Calculator{maxTumo: 17}
	c.createProbTables(10)
	// with s=8 the recurrence stops once W-s-j hits zero
	is.Equal(c.notTumoProbTable[8][5], 0.0)
}
