package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	testCases := []struct {
		name     string
		line     string
		expected command
	}{
		{name: "empty line stands", line: "", expected: command{action: actionStand}},
		{name: "blank line stands", line: "   ", expected: command{action: actionStand}},
		{name: "short stand", line: "s", expected: command{action: actionStand}},
		{name: "stand", line: "Stand", expected: command{action: actionStand}},
		{name: "short roll", line: "r", expected: command{action: actionRoll}},
		{name: "roll with spaces", line: "  ROLL  ", expected: command{action: actionRoll}},
		{name: "hold packed ids", line: "h de", expected: command{action: actionHold, dice: []rune{'D', 'E'}}},
		{name: "hold separated ids", line: "hold d e", expected: command{action: actionHold, dice: []rune{'D', 'E'}}},
		{name: "hold comma ids", line: "hold D,E, a", expected: command{action: actionHold, dice: []rune{'D', 'E', 'A'}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := parseCommand(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cmd)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	_, err := parseCommand("hold")
	assert.ErrorIs(t, err, errEmptyHold)

	_, err = parseCommand("h ,")
	assert.ErrorIs(t, err, errEmptyHold)

	_, err = parseCommand("quit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "quit"`)
}
