package console

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// action is what a player asked for at the prompt
type action int

const (
	actionStand action = iota
	actionRoll
	actionHold
)

var errEmptyHold = errors.New("name the dice to hold, e.g. \"hold DE\"")

// command is a parsed line of player input
type command struct {
	action action

	// dice lists die ids for actionHold
	dice []rune
}

// parseCommand reads one line of input. An empty line stands.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{action: actionStand}, nil
	}

	switch fields[0] {
	case "s", "stand":
		return command{action: actionStand}, nil
	case "r", "roll":
		return command{action: actionRoll}, nil
	case "h", "hold":
		var ids []rune
		for _, field := range fields[1:] {
			for _, id := range field {
				if id == ',' {
					continue
				}
				ids = append(ids, unicode.ToUpper(id))
			}
		}
		if len(ids) == 0 {
			return command{}, errEmptyHold
		}
		return command{action: actionHold, dice: ids}, nil
	default:
		return command{}, fmt.Errorf("unknown command %q", fields[0])
	}
}
