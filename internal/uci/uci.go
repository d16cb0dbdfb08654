// Package uci implements the line-oriented Universal Chess Interface
// protocol as a thin front end over the board package. It owns no chess
// logic of its own: position setup defers to board.ParseFEN/board.Make,
// perft defers entirely to perftcache.Perft, and "go" defers to an
// opening book, falling back to the first legal move when the book has
// nothing to say. There is no search or evaluation behind this front end.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/reynagenesisti-create/goattea/internal/board"
	"github.com/reynagenesisti-create/goattea/internal/book"
	"github.com/reynagenesisti-create/goattea/internal/perftcache"
)

// UCI implements the Universal Chess Interface protocol.
type UCI struct {
	position *board.Position
	book     *book.Book
	cache    *perftcache.Cache

	out io.Writer
	err io.Writer
}

// New creates a new UCI protocol handler. book and cache may both be
// nil: a nil book means "go" always falls back to the first legal move,
// and a nil cache means perft results are recomputed on every call.
func New(b *book.Book, cache *perftcache.Cache) *UCI {
	return &UCI{
		position: board.NewPosition(),
		book:     b,
		cache:    cache,
		out:      os.Stdout,
		err:      os.Stderr,
	}
}

// Run reads UCI commands from stdin until EOF or "quit".
func (u *UCI) Run() {
	u.RunFrom(bufio.NewScanner(os.Stdin))
}

// RunFrom drives the main loop from an arbitrary scanner, letting tests
// feed canned command sequences without touching stdin.
func (u *UCI) RunFrom(scanner *bufio.Scanner) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Fprintln(u.out, "readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			// No search runs in the background, so there is nothing to stop.
		case "perft":
			u.handlePerft(args)
		case "setoption":
			u.handleSetOption(args)
		case "d":
			fmt.Fprintln(u.out, u.position.String())
		case "quit":
			return
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Fprintln(u.out, "id name GoatTea")
	fmt.Fprintln(u.out, "id author GoatTea contributors")
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, "option name BookFile type string default <empty>")
	fmt.Fprintln(u.out, "uciok")
}

func (u *UCI) handleNewGame() {
	u.position = board.NewPosition()
}

// handlePosition parses and sets up a position. Formats:
//
//	position startpos
//	position startpos moves e2e4 e7e5
//	position fen <fen>
//	position fen <fen> moves e2e4
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int

	switch args[0] {
	case "startpos":
		u.position = board.NewPosition()
		moveStart = indexAfter(args, "moves", 1)
	case "fen":
		fenEnd := len(args)
		for i := 1; i < len(args); i++ {
			if args[i] == "moves" {
				fenEnd = i
				break
			}
		}
		fenStr := strings.Join(args[1:fenEnd], " ")
		pos, err := board.ParseFEN(fenStr)
		if err != nil {
			fmt.Fprintf(u.err, "info string %v\n", err)
			return
		}
		u.position = pos
		moveStart = indexAfter(args, "moves", fenEnd)
	default:
		return
	}

	for _, moveStr := range args[moveStart:] {
		move, err := board.ParseMove(moveStr, u.position)
		if err != nil {
			fmt.Fprintf(u.err, "info string %v\n", err)
			return
		}
		if !u.position.GenerateLegalMoves().Contains(move) {
			fmt.Fprintf(u.err, "info string illegal move in position command: %s\n", moveStr)
			return
		}
		u.position.Make(move)
	}
}

// indexAfter returns the index following the first occurrence of needle
// in args at or after start, or len(args) if needle is absent.
func indexAfter(args []string, needle string, start int) int {
	for i := start; i < len(args); i++ {
		if args[i] == needle {
			return i + 1
		}
	}
	return len(args)
}

// handleGo plays a move without searching: the opening book is probed
// first, and the first legal move is played as a fallback. Both sources
// are re-validated against the current legal move list before the move
// is printed, so a stale book entry can never produce an illegal
// bestmove.
func (u *UCI) handleGo(args []string) {
	legal := u.position.GenerateLegalMoves()
	if legal.Len() == 0 {
		fmt.Fprintln(u.out, "bestmove 0000")
		return
	}

	if move, ok := u.book.Probe(u.position); ok && legal.Contains(move) {
		fmt.Fprintf(u.out, "bestmove %s\n", move.String())
		return
	}

	if u.book != nil {
		stats := u.book.Stats()
		fmt.Fprintf(u.err, "info string book miss (hits=%d misses=%d), falling back to first legal move\n", stats.Hits, stats.Misses)
	}

	fmt.Fprintf(u.out, "bestmove %s\n", legal.Get(0).String())
}

// handlePerft runs a perft test via perftcache.Perft, which consults the
// result cache first and populates it after a miss. Formats:
//
//	perft <depth>            from the current position
//	perft <depth> fen <fen>  from the given FEN (the current position is kept)
func (u *UCI) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil {
			depth = d
		}
	}

	pos := u.position
	if len(args) > 1 && args[1] == "fen" {
		parsed, err := board.ParseFEN(strings.Join(args[2:], " "))
		if err != nil {
			fmt.Fprintf(u.err, "info string %v\n", err)
			return
		}
		pos = parsed
	}

	nodes, cached := perftcache.Perft(pos, depth, u.cache)
	if cached {
		fmt.Fprintf(u.out, "Nodes: %d (cached)\n", nodes)
		return
	}
	fmt.Fprintf(u.out, "Nodes: %d\n", nodes)
}

// handleSetOption processes "setoption" commands. BookFile is the only
// option with an effect: it (re)loads the Polyglot opening book.
func (u *UCI) handleSetOption(args []string) {
	var name, value string
	readingName, readingValue := false, false

	for _, arg := range args {
		switch arg {
		case "name":
			readingName, readingValue = true, false
		case "value":
			readingName, readingValue = false, true
		default:
			if readingName {
				name = appendWord(name, arg)
			} else if readingValue {
				value = appendWord(value, arg)
			}
		}
	}

	if strings.EqualFold(name, "BookFile") && value != "" {
		b, err := book.LoadPolyglot(value)
		if err != nil {
			fmt.Fprintf(u.err, "info string failed to load book %s: %v\n", value, err)
			return
		}
		u.book = b
	}
}

func appendWord(s, word string) string {
	if s == "" {
		return word
	}
	return s + " " + word
}
