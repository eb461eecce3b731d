package main

import (
	"errors"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dropblox/dropblox-ai/config"
	"github.com/dropblox/dropblox-ai/equity"
	"github.com/dropblox/dropblox-ai/gamestate"
	"github.com/dropblox/dropblox-ai/movegen"
	"github.com/dropblox/dropblox-ai/search"
)

// The engine invokes this executable with two arguments: a JSON blob of the
// game state and the number of seconds remaining in the game. The chosen
// move sequence goes to stdout, one command per line; logs go to stderr.
func main() {
	if len(os.Args) < 3 {
		log.Fatal().Msg("usage: dropblox-ai <state-json> <seconds-left> [flags]")
	}

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[3:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	secondsLeft, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		log.Fatal().Err(err).Msg("bad seconds-left argument")
	}

	b, err := gamestate.ParseState([]byte(os.Args[1]))
	if err != nil {
		log.Fatal().Err(err).Msg("unreadable game state")
	}

	// Every level of lookahead consumes one preview block, and the clock is
	// shared across the whole game: go shallow when it runs low.
	depth := cfg.MaxDepth
	if limit := b.PreviewLen() - 1; depth > limit {
		depth = limit
	}
	if secondsLeft < 2 && depth > 1 {
		depth = 1
	}
	if depth < 0 {
		depth = 0
	}

	calc := equity.NewBoardScoreCalculator(cfg.SpaceValue, cfg.FlatValue)
	solver := search.NewSolver(movegen.NewGenerator(), calc, depth)
	moves, err := solver.Solve(b)
	if err != nil {
		if !errors.Is(err, search.ErrNoPlayableLine) {
			log.Fatal().Err(err).Msg("search failed")
		}
		log.Warn().Msg("no playable line; emitting random moves")
		moves = search.RandomMoves()
	}

	if err := gamestate.WriteMoves(os.Stdout, moves); err != nil {
		log.Fatal().Err(err).Msg("writing moves")
	}
}
