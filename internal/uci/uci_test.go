package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/reynagenesisti-create/goattea/internal/board"
)

func newTestUCI() (*UCI, *bytes.Buffer, *bytes.Buffer) {
	u := New(nil, nil)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	u.out = out
	u.err = errOut
	return u, out, errOut
}

func run(u *UCI, commands string) {
	u.RunFrom(bufio.NewScanner(strings.NewReader(commands)))
}

func TestHandleUCI(t *testing.T) {
	u, out, _ := newTestUCI()
	run(u, "uci\n")

	got := out.String()
	if !strings.Contains(got, "id name") || !strings.Contains(got, "uciok") {
		t.Errorf("uci response missing required fields: %q", got)
	}
}

func TestIsReady(t *testing.T) {
	u, out, _ := newTestUCI()
	run(u, "isready\n")

	if strings.TrimSpace(out.String()) != "readyok" {
		t.Errorf("isready response = %q, want readyok", out.String())
	}
}

func TestPositionStartposMoves(t *testing.T) {
	u, _, errOut := newTestUCI()
	run(u, "position startpos moves e2e4 e7e5 g1f3\n")

	if errOut.Len() != 0 {
		t.Fatalf("unexpected error output: %q", errOut.String())
	}

	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	if got := u.position.ToFEN(); got != want {
		t.Errorf("position after moves = %q, want %q", got, want)
	}
}

func TestPositionRejectsIllegalMove(t *testing.T) {
	u, _, errOut := newTestUCI()
	run(u, "position startpos moves e2e5\n")

	if errOut.Len() == 0 {
		t.Error("expected an error message for an illegal move, got none")
	}
	// The illegal move must not have been applied.
	if u.position.ToFEN() != board.StartFEN {
		t.Errorf("position mutated despite rejected move: %q", u.position.ToFEN())
	}
}

func TestPositionFEN(t *testing.T) {
	u, _, errOut := newTestUCI()
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"
	run(u, "position fen "+fen+"\n")

	if errOut.Len() != 0 {
		t.Fatalf("unexpected error output: %q", errOut.String())
	}
	if u.position.SideToMove != board.White {
		t.Error("expected white to move after loading Kiwipete FEN")
	}
}

func TestGoWithNoBookFallsBackToFirstLegalMove(t *testing.T) {
	u, out, _ := newTestUCI()
	run(u, "go\n")

	got := strings.TrimSpace(out.String())
	if !strings.HasPrefix(got, "bestmove ") {
		t.Fatalf("go response = %q, want a bestmove line", got)
	}

	moveStr := strings.TrimPrefix(got, "bestmove ")
	move, err := board.ParseMove(moveStr, u.position)
	if err != nil {
		t.Fatalf("bestmove %q did not parse: %v", moveStr, err)
	}
	if !u.position.GenerateLegalMoves().Contains(move) {
		t.Errorf("bestmove %q is not a legal move", moveStr)
	}
}

func TestGoOnCheckmateReturnsNullMove(t *testing.T) {
	u, out, _ := newTestUCI()
	run(u, "position fen R6k/6pp/8/8/8/8/8/K7 b - - 0 1\ngo\n")

	got := strings.TrimSpace(out.String())
	if got != "bestmove 0000" {
		t.Errorf("go on checkmate = %q, want %q", got, "bestmove 0000")
	}
}

func TestPerftStartpos(t *testing.T) {
	u, out, _ := newTestUCI()
	run(u, "perft 3\n")

	if !strings.Contains(out.String(), "Nodes: 8902") {
		t.Errorf("perft 3 from startpos = %q, want to contain Nodes: 8902", out.String())
	}
}

func TestQuitStopsTheLoop(t *testing.T) {
	u, out, _ := newTestUCI()
	run(u, "isready\nquit\nisready\n")

	// The second "isready" must never be processed.
	if strings.Count(out.String(), "readyok") != 1 {
		t.Errorf("expected exactly one readyok before quit, got: %q", out.String())
	}
}
