package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
	"github.com/KirkDiggler/shipcaptaincrew/internal/repositories/round"
)

const promptText = "roll, stand, or hold <ids>: "

func renderRoundStart(w io.Writer, number int) {
	fmt.Fprintf(w, "=== Round %d ===\n", number)
}

func renderTurnStart(w io.Writer, playerNumber int) {
	fmt.Fprintf(w, "Player %d's turn\n", playerNumber)
}

func renderRoll(w io.Writer, rollsUsed, maxRolls int, dice string) {
	fmt.Fprintf(w, "Roll %d of %d: %s\n", rollsUsed, maxRolls, dice)
}

func renderDice(w io.Writer, dice string) {
	fmt.Fprintf(w, "Dice: %s\n", dice)
}

func renderScore(w io.Writer, playerNumber, score int) {
	fmt.Fprintf(w, "Player %d scores %d\n", playerNumber, score)
}

func renderRoundResults(w io.Writer, number int, results string) {
	fmt.Fprintf(w, "Round %d results:\n%s\n", number, results)
}

func renderFinalWinner(w io.Writer, winner string) {
	fmt.Fprintf(w, "Winner: %s\n", winner)
}

func renderRounds(w io.Writer, rounds []*models.Round) {
	fmt.Fprintln(w, "Recorded rounds:")
	for _, r := range rounds {
		winners := r.Winners()
		if r.Tied || len(winners) == 0 {
			fmt.Fprintf(w, "  Round %d: tied\n", r.Number)
			continue
		}

		names := make([]string, 0, len(winners))
		for _, number := range winners {
			names = append(names, fmt.Sprintf("Player %d", number))
		}
		fmt.Fprintf(w, "  Round %d: won by %s\n", r.Number, strings.Join(names, ", "))
	}
}

func renderStandings(w io.Writer, records []*round.PlayerRecord) {
	fmt.Fprintln(w, "Recorded standings:")
	for _, rec := range records {
		fmt.Fprintf(w, "  Player %d: wins=%d, losses=%d\n", rec.PlayerNumber, rec.Wins, rec.Losses)
	}
}

func renderError(w io.Writer, err error) {
	fmt.Fprintf(w, "%v\n", err)
}
