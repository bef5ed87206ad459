package expval

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mikansei/ukeire/config"
)

// maxUradora bounds the "hidden dora added" columns of the table.
const maxUradora = 12

// The table is the engine's only static data file, so it gets a one-shot
// guarded load rather than a general cache: the first calculator to need
// it reads the file, everyone after shares the rows read-only. A failed
// load is remembered too; repeated calls never retry the filesystem.
var (
	uradoraOnce sync.Once
	uradoraRows [][]float64
	uradoraErr  error
)

// sharedUradoraTable returns the process-wide table, loading it on first
// use from the path in cfg. The path of the first caller wins; a process
// analyzing hands runs with a single configuration.
func sharedUradoraTable(cfg *config.Config) ([][]float64, error) {
	uradoraOnce.Do(func() {
		path := cfg.UradoraTablePath()
		log.Debug().Str("path", path).Msg("loading uradora table")
		uradoraRows, uradoraErr = readUradoraTable(path)
	})
	return uradoraRows, uradoraErr
}

// readUradoraTable parses the distribution file. Line i is the
// distribution of the number of hidden dora added when i indicator tiles
// are visible; columns are counts 0..12 and sum to 1.
func readUradoraTable(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUradoraTableMissing, err)
	}
	defer f.Close()

	var table [][]float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, 0, maxUradora+1)
		for _, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing uradora table: %w", err)
			}
			row = append(row, v)
		}
		table = append(table, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading uradora table: %w", err)
	}
	return table, nil
}

// loadUradora resolves the calculator's table before a search.
func (c *Calculator) loadUradora() {
	if c.uradora != nil || !c.calcUradora {
		return
	}
	c.setUradora(sharedUradoraTable(c.cfg))
}

// setUradora installs the table, downgrading a failed load to "uradora
// accounting off" with a one-time warning.
func (c *Calculator) setUradora(table [][]float64, err error) {
	if err != nil {
		c.warnUradoraOnce.Do(func() {
			log.Warn().Err(err).Msg("uradora table unavailable; ignoring CalcUradora")
		})
		c.calcUradora = false
		return
	}
	c.uradora = table
}
