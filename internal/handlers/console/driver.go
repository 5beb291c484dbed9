package console

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/KirkDiggler/shipcaptaincrew/internal/common/clock"
	"github.com/KirkDiggler/shipcaptaincrew/internal/common/uuid"
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	"github.com/KirkDiggler/shipcaptaincrew/internal/repositories/round"
	"github.com/KirkDiggler/shipcaptaincrew/internal/services/game"
)

// Driver runs a game at a text console
type Driver struct {
	controller    game.Controller
	rounds        int
	in            *bufio.Scanner
	out           io.Writer
	roundRepo     round.Repository
	clock         clock.Clock
	uuidGenerator uuid.Generator

	// gameID groups the recorded rounds of one Run
	gameID string
}

// Config holds the configuration for the driver
type Config struct {
	// Game controller
	Controller game.Controller

	// Number of rounds to play
	Rounds int

	// Player input and game output
	In  io.Reader
	Out io.Writer

	// Optional round history
	RoundRepo round.Repository

	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

// New creates a new console driver
func New(cfg *Config) (*Driver, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Controller == nil {
		return nil, errors.New("controller cannot be nil")
	}

	if cfg.Rounds < 1 {
		return nil, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}

	if cfg.In == nil || cfg.Out == nil {
		return nil, errors.New("input and output cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	return &Driver{
		controller:    cfg.Controller,
		rounds:        cfg.Rounds,
		in:            bufio.NewScanner(cfg.In),
		out:           cfg.Out,
		roundRepo:     cfg.RoundRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// Run plays every round and announces the overall winner
func (d *Driver) Run(ctx context.Context) error {
	d.gameID = d.uuidGenerator.NewID()

	for number := 1; number <= d.rounds; number++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := d.playRound(ctx, number); err != nil {
			return fmt.Errorf("round %d: %w", number, err)
		}
	}

	renderFinalWinner(d.out, d.controller.GetFinalWinner())
	d.showHistory(ctx)

	return nil
}

func (d *Driver) playRound(ctx context.Context, number int) error {
	d.controller.StartNewGame()
	renderRoundStart(d.out, number)

	for {
		if err := d.playTurn(); err != nil {
			return err
		}
		if !d.controller.NextPlayer() {
			break
		}
	}

	renderRoundResults(d.out, number, d.controller.GetGameResults())
	d.recordRound(ctx, number)

	return nil
}

// playTurn lets the current player roll until they stand or run out of rolls
func (d *Driver) playTurn() error {
	d.controller.ResetDice()
	renderTurnStart(d.out, d.controller.GetCurrentPlayerNumber())

	for d.controller.CurrentPlayerCanRoll() {
		if err := d.controller.RollDice(); err != nil {
			return err
		}
		d.holdShipCaptainCrew()
		renderRoll(d.out, d.controller.CurrentPlayerRollsUsed(), d.controller.MaxRolls(), d.controller.GetDiceResults())

		if !d.controller.CurrentPlayerCanRoll() {
			break
		}

		again, err := d.wantsToRoll()
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	if err := d.controller.ScoreCurrentPlayer(); err != nil {
		return err
	}
	renderScore(d.out, d.controller.GetCurrentPlayerNumber(), d.controller.GetCurrentPlayerScore())

	return nil
}

// holdShipCaptainCrew holds a 6, then a 5 once a 6 is held, then a 4 once a 5 is held
func (d *Driver) holdShipCaptainCrew() {
	if !d.controller.AutoHold(game.ShipFace) {
		return
	}
	if !d.controller.AutoHold(game.CaptainFace) {
		return
	}
	d.controller.AutoHold(game.CrewFace)
}

// wantsToRoll prompts until the player rolls or stands. End of input stands.
func (d *Driver) wantsToRoll() (bool, error) {
	for {
		fmt.Fprint(d.out, promptText)
		if !d.in.Scan() {
			fmt.Fprintln(d.out)
			if err := d.in.Err(); err != nil {
				return false, fmt.Errorf("read input: %w", err)
			}
			return false, nil
		}

		cmd, err := parseCommand(d.in.Text())
		if err != nil {
			renderError(d.out, err)
			continue
		}

		switch cmd.action {
		case actionRoll:
			return true, nil
		case actionStand:
			return false, nil
		case actionHold:
			for _, id := range cmd.dice {
				if err := d.controller.PlayerHold(id); err != nil {
					renderError(d.out, err)
				}
			}
			renderDice(d.out, d.controller.GetDiceResults())
			if !d.controller.CurrentPlayerCanRoll() {
				return false, nil
			}
		}
	}
}

// recordRound saves the finished round when a ledger is configured
func (d *Driver) recordRound(ctx context.Context, number int) {
	if d.roundRepo == nil {
		return
	}

	results := d.controller.LastRoundResults()
	slices.SortFunc(results, func(a, b *models.RoundResult) int {
		return cmp.Compare(a.PlayerNumber, b.PlayerNumber)
	})

	tied := true
	for _, result := range results {
		if result.Won || result.Lost {
			tied = false
			break
		}
	}

	err := d.roundRepo.SaveRound(ctx, &round.SaveRoundInput{
		Round: &models.Round{
			ID:          d.uuidGenerator.NewID(),
			GameID:      d.gameID,
			Number:      number,
			Results:     results,
			Tied:        tied,
			CompletedAt: d.clock.Now(),
		},
	})
	if err != nil {
		log.Printf("Failed to record round %d of game %s: %v", number, d.gameID, err)
	}
}

// showHistory prints the recorded rounds and standings when a ledger is configured
func (d *Driver) showHistory(ctx context.Context) {
	if d.roundRepo == nil {
		return
	}

	rounds, err := d.roundRepo.GetRoundsForGame(ctx, &round.GetRoundsForGameInput{
		GameID: d.gameID,
	})
	if err != nil {
		log.Printf("Failed to load rounds for game %s: %v", d.gameID, err)
	} else {
		renderRounds(d.out, rounds.Rounds)
	}

	standings, err := d.roundRepo.GetStandings(ctx, &round.GetStandingsInput{
		GameID: d.gameID,
	})
	if err != nil {
		log.Printf("Failed to load standings for game %s: %v", d.gameID, err)
		return
	}

	renderStandings(d.out, standings.Records)
}
