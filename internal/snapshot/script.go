package snapshot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"hypermaze/internal/game"
)

// ErrBadScript reports an unparsable camera script.
var ErrBadScript = errors.New("snapshot: bad script")

var scriptCommands = map[rune]game.Command{
	'f': game.CommandForward,
	'b': game.CommandBackward,
	'l': game.CommandStrafeLeft,
	'r': game.CommandStrafeRight,
	'<': game.CommandTurnLeft,
	'>': game.CommandTurnRight,
}

// ParseScript reads a camera path such as "f20 <8 r3". Each letter is one
// command (f, b forward/back; l, r strafe; <, > turn) optionally followed by
// a repeat count. Whitespace is ignored.
func ParseScript(s string) ([]game.Command, error) {
	var out []game.Command
	runes := []rune(strings.ToLower(s))
	for i := 0; i < len(runes); {
		c := runes[i]
		if unicode.IsSpace(c) {
			i++
			continue
		}
		cmd, ok := scriptCommands[c]
		if !ok {
			return nil, fmt.Errorf("%w: unknown command %q at %d", ErrBadScript, c, i)
		}
		i++
		j := i
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
		n := 1
		if j > i {
			var err error
			n, err = strconv.Atoi(string(runes[i:j]))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: bad count %q at %d", ErrBadScript, string(runes[i:j]), i)
			}
		}
		for k := 0; k < n; k++ {
			out = append(out, cmd)
		}
		i = j
	}
	return out, nil
}
