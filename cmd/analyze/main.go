package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/mikansei/ukeire/config"
	"github.com/mikansei/ukeire/expval"
	"github.com/mikansei/ukeire/hand"
	"github.com/mikansei/ukeire/score"
	"github.com/mikansei/ukeire/shanten"
	"github.com/mikansei/ukeire/tile"
)

type handList []string

func (h *handList) String() string     { return strings.Join(*h, ",") }
func (h *handList) Set(v string) error { *h = append(*h, v); return nil }

var (
	hands       handList
	doraArg     = flag.String("dora", "", "dora indicator tiles, e.g. 3z")
	typeArg     = flag.String("type", "union", "shanten type: normal, chiitoitsu, kokushi, union")
	turnArg     = flag.Int("turn", 1, "current turn (1-based) for the summary columns")
	syantenDown = flag.Bool("syanten-down", false, "consider shape-regressing discards")
	tegawari    = flag.Bool("tegawari", false, "consider shape-trade draws")
	uradora     = flag.Bool("uradora", false, "blend uradora into scores")
	akaTumo     = flag.Bool("aka", false, "treat red-five draws as distinct events")
	winProb     = flag.Bool("win-prob", false, "rank by win probability instead of EV")
	yamlOut     = flag.Bool("yaml", false, "dump candidates as YAML")
)

type yamlCandidate struct {
	Discard     string    `yaml:"discard"`
	Required    []string  `yaml:"required"`
	SumRequired int       `yaml:"sum_required"`
	TenpaiProbs []float64 `yaml:"tenpai_probs,flow"`
	WinProbs    []float64 `yaml:"win_probs,flow"`
	ExpValues   []float64 `yaml:"exp_values,flow"`
	SyantenDown bool      `yaml:"syanten_down"`
}

func shantenType(s string) (shanten.Type, error) {
	switch s {
	case "normal":
		return shanten.TypeNormal, nil
	case "chiitoitsu":
		return shanten.TypeTiitoi, nil
	case "kokushi":
		return shanten.TypeKokusi, nil
	case "union":
		return shanten.TypeUnion, nil
	}
	return 0, fmt.Errorf("unknown shanten type %q", s)
}

func analysisFlags() expval.Flag {
	var f expval.Flag
	if *syantenDown {
		f |= expval.CalcSyantenDown
	}
	if *tegawari {
		f |= expval.CalcTegawari
	}
	if *uradora {
		f |= expval.CalcUradora
	}
	if *akaTumo {
		f |= expval.CalcAkaTileTumo
	}
	if *winProb {
		f |= expval.MaximaizeWinProb
	}
	return f
}

func analyzeOne(cfg *config.Config, handStr string, indicators []tile.Tile,
	typ shanten.Type, flags expval.Flag) ([]expval.Candidate, error) {

	h, err := hand.FromString(handStr)
	if err != nil {
		return nil, err
	}
	sc := score.NewCalculator()
	sc.DoraIndicators = indicators

	calc := expval.NewCalculator(cfg)
	candidates, err := calc.Calc(h, sc, indicators, typ, flags)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", handStr, err)
	}
	expval.SortCandidates(candidates, flags&expval.MaximaizeWinProb != 0)
	return candidates, nil
}

func printCandidates(handStr string, candidates []expval.Candidate, turn int) {
	fmt.Printf("hand: %s\n", handStr)
	for _, cand := range candidates {
		name := "draw"
		if cand.Tile != tile.Null {
			name = "discard " + cand.Tile.String()
		}
		if len(cand.ExpValues) == 0 {
			fmt.Printf("[%s] useful: %2d kinds %2d tiles\n",
				name, len(cand.RequiredTiles), cand.SumRequired())
			continue
		}
		i := turn - 1
		if i < 0 || i >= len(cand.ExpValues) {
			i = 0
		}
		marker := ""
		if cand.SyantenDown {
			marker = " (syanten back)"
		}
		fmt.Printf("[%s] useful: %2d kinds %2d tiles, tenpai: %6.2f%%, win: %6.2f%%, EV: %8.2f%s\n",
			name, len(cand.RequiredTiles), cand.SumRequired(),
			cand.TenpaiProbs[i]*100, cand.WinProbs[i]*100, cand.ExpValues[i], marker)
	}
}

func dumpYAML(candidates []expval.Candidate) error {
	out := lo.Map(candidates, func(c expval.Candidate, _ int) yamlCandidate {
		return yamlCandidate{
			Discard: c.Tile.String(),
			Required: lo.Map(c.RequiredTiles, func(r expval.RequiredTile, _ int) string {
				return fmt.Sprintf("%v x%d", r.Tile, r.Count)
			}),
			SumRequired: c.SumRequired(),
			TenpaiProbs: c.TenpaiProbs,
			WinProbs:    c.WinProbs,
			ExpValues:   c.ExpValues,
			SyantenDown: c.SyantenDown,
		}
	})
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	return enc.Encode(out)
}

func main() {
	flag.Var(&hands, "hand", "hand to analyze, e.g. 222567m345p33667s (repeatable)")
	flag.Parse()

	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := &config.Config{}
	if err := cfg.Load(flag.Args()); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	cfg.AdjustRelativePaths(exPath)

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if len(hands) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -hand is required")
		flag.Usage()
		os.Exit(2)
	}

	indicators, err := tile.ParseMany(*doraArg)
	if err != nil {
		log.Fatal().Err(err).Msg("parsing dora indicators")
	}
	typ, err := shantenType(*typeArg)
	if err != nil {
		log.Fatal().Err(err).Msg("parsing shanten type")
	}
	flags := analysisFlags()

	// One engine per hand; engines must not be shared across goroutines.
	results := make([][]expval.Candidate, len(hands))
	g := new(errgroup.Group)
	for i, handStr := range hands {
		i, handStr := i, handStr
		g.Go(func() error {
			candidates, err := analyzeOne(cfg, handStr, indicators, typ, flags)
			if err != nil {
				return err
			}
			results[i] = candidates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}

	for i, handStr := range hands {
		if *yamlOut {
			if err := dumpYAML(results[i]); err != nil {
				log.Fatal().Err(err).Msg("encoding yaml")
			}
			continue
		}
		printCandidates(handStr, results[i], *turnArg)
	}
}
