// Package capture reads and writes raw IR captures in the text formats of
// the Linux LIRC tools, so recordings from a real receiver can be replayed
// through the decoder.
//
// Both the mode2 form
//
//	pulse 9024
//	space 4481
//
// and the ir-ctl form
//
//	+9024 -4481 +580 -552
//
// are accepted. Durations are microseconds.
package capture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sparques/irhid"
)

var ErrSyntax = errors.New("capture: syntax error")

// Parse reads a capture into mark/space pairs. Adjacent entries of the same
// kind are merged, spaces before the first pulse are dropped, and a trailing
// pulse gets a zero space. Timeouts count as spaces.
func Parse(r io.Reader) ([]irhid.TimePair, error) {
	var (
		pairs  []irhid.TimePair
		inMark bool
		lineNo int
	)

	add := func(mark bool, d time.Duration) {
		switch {
		case mark && inMark:
			pairs[len(pairs)-1][0] += d
		case mark:
			pairs = append(pairs, irhid.TimePair{d, 0})
		case len(pairs) > 0:
			pairs[len(pairs)-1][1] += d
		}
		inMark = mark
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if skip(line) {
			continue
		}

		fields := strings.Fields(line)
		for i := 0; i < len(fields); i++ {
			tok := fields[i]
			var mark bool
			switch {
			case tok == "pulse":
				mark = true
				fallthrough
			case tok == "space" || tok == "timeout":
				i++
				if i == len(fields) {
					return nil, fmt.Errorf("%w: line %d: %s without duration", ErrSyntax, lineNo, tok)
				}
				tok = fields[i]
			case tok[0] == '+':
				mark = true
				tok = tok[1:]
			case tok[0] == '-':
				tok = tok[1:]
			default:
				return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrSyntax, lineNo, tok)
			}

			us, err := strconv.ParseUint(tok, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad duration %q", ErrSyntax, lineNo, tok)
			}
			add(mark, time.Duration(us)*time.Microsecond)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("capture: read: %w", err)
	}
	return pairs, nil
}

func skip(line string) bool {
	return line == "" ||
		strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "Using driver") ||
		strings.HasPrefix(line, "Trying device")
}

// Format writes pairs in mode2 form. Zero spaces are omitted.
func Format(w io.Writer, pairs []irhid.TimePair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		fmt.Fprintf(bw, "pulse %d\n", p[0].Microseconds())
		if p[1] > 0 {
			fmt.Fprintf(bw, "space %d\n", p[1].Microseconds())
		}
	}
	return bw.Flush()
}
