// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
// See: https://en.wikipedia.org/wiki/Universal_Chess_Interface
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/corvidchess/corvid/pkg/board"
	"github.com/corvidchess/corvid/pkg/board/fen"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "uci"

// Driver implements a UCI driver for an Engine. It is activated once "uci" is received.
// Close/Closed come from the embedded AsyncCloser, grounded on the teacher's
// console.Driver (pkg/engine/console/console.go), which embeds the same type for
// idempotent shutdown signaling.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string

	active       atomic.Bool    // a "go" search is outstanding and owes a bestmove
	ponder       chan search.PV // intermediate search information, forwarded as "info"
	lastPosition string         // last "position" line, for the GUI's incremental-moves shortcut
}

// NewDriver starts a Driver reading UCI commands from in and returns it along with the
// channel of lines to print to the GUI.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
		ponder:      make(chan search.PV, 400),
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "UCI protocol initialized")

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- fmt.Sprintf("option name Hash type spin default %v min %v max %v", d.e.Options().Hash, engine.MinHashMB, engine.MaxHashMB)
	d.out <- "uciok"

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}
			d.handle(ctx, line)

		case pv := <-d.ponder:
			if d.active.Load() {
				d.out <- formatInfo(pv)
			}

		case <-d.Closed():
			d.ensureInactive(ctx)
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

// handle dispatches a single input line. Any parse error -- an unknown argument, an
// illegal move, a malformed FEN -- is logged and otherwise ignored: the position after
// invalid input equals the position before, and the driver keeps running.
func (d *Driver) handle(ctx context.Context, line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}

	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "isready":
		d.out <- "readyok"

	case "debug":
		// Accepted and ignored: no extra "info string" traffic is produced.

	case "setoption":
		d.handleSetOption(ctx, args)

	case "register":
		// No registration is required by this engine.

	case "ucinewgame":
		d.ensureInactive(ctx)
		d.lastPosition = ""

	case "position":
		d.handlePosition(ctx, line, args)

	case "go":
		d.handleGo(ctx, line, args)

	case "stop":
		pv, err := d.e.Halt(ctx)
		if err == nil {
			d.searchCompleted(ctx, pv)
		}

	case "ponderhit":
		// The opponent played the pondered move: continue the in-flight search as a
		// normal search. Since this driver never restricts a ponder search's time
		// budget, there is nothing further to switch.

	case "quit":
		d.Close()

	default:
		logw.Warningf(ctx, "Unknown command '%v': %v", cmd, args)
	}
}

func (d *Driver) handleSetOption(ctx context.Context, args []string) {
	var name, value string
	if len(args) > 1 {
		name = args[1]
	}
	if len(args) > 3 {
		value = args[3]
	}

	switch name {
	case "Hash":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			logw.Errorf(ctx, "Invalid Hash value %q", value)
			return
		}
		d.e.SetHash(ctx, uint(n))
	default:
		// Unknown options are accepted silently, per UCI convention.
	}
}

func (d *Driver) handlePosition(ctx context.Context, line string, args []string) {
	d.ensureInactive(ctx)

	if d.lastPosition != "" && strings.HasPrefix(line, d.lastPosition) {
		// Continuation of the same game: replay just the new moves.
		moves := strings.TrimSpace(strings.TrimPrefix(line, d.lastPosition))
		for _, arg := range strings.Fields(moves) {
			if arg == "moves" {
				continue
			}
			if err := d.e.Move(ctx, arg); err != nil {
				logw.Errorf(ctx, "Invalid move %q: %v", arg, err)
				return
			}
		}
		d.lastPosition = line
		return
	}

	position := fen.Initial
	rest := args
	if len(args) >= 1 && args[0] == "fen" {
		if len(args) < 7 {
			logw.Errorf(ctx, "Incomplete fen in position command: %v", line)
			return
		}
		position = strings.Join(args[1:7], " ")
		rest = args[7:]
	} else if len(args) >= 1 && args[0] != "startpos" {
		logw.Errorf(ctx, "Unrecognized position command: %v", line)
		return
	} else if len(args) >= 1 {
		rest = args[1:]
	}

	if err := d.e.Reset(ctx, position); err != nil {
		logw.Errorf(ctx, "Invalid position %q: %v", position, err)
		return
	}

	move := false
	for _, arg := range rest {
		if arg == "moves" {
			move = true
			continue
		}
		if !move {
			continue
		}
		if err := d.e.Move(ctx, arg); err != nil {
			logw.Errorf(ctx, "Invalid move %q: %v", arg, err)
			return
		}
	}
	d.lastPosition = line
}

func (d *Driver) handleGo(ctx context.Context, line string, args []string) {
	d.ensureInactive(ctx)

	if len(args) > 0 && args[0] == "perft" {
		d.handlePerft(ctx, line, args[1:])
		return
	}

	var limits search.Limits
	var tc search.TimeControl
	var haveTC bool

	for i := 0; i < len(args); i++ {
		cmd := args[i]
		switch cmd {
		case "wtime", "btime", "winc", "binc", "movestogo", "depth", "movetime", "nodes":
			i++
			if i == len(args) {
				logw.Errorf(ctx, "No argument for %v: %v", cmd, line)
				return
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				logw.Errorf(ctx, "Invalid argument for %v: %v", cmd, line)
				return
			}

			turn := d.e.Board().Turn()
			switch cmd {
			case "depth":
				limits.Depth = lang.Some(n)
			case "nodes":
				limits.NodeLimit = lang.Some(uint64(n))
			case "movetime":
				limits.MoveTime = lang.Some(time.Duration(n) * time.Millisecond)
			case "wtime":
				if turn == board.White {
					tc.Remaining = time.Duration(n) * time.Millisecond
					haveTC = true
				}
			case "btime":
				if turn == board.Black {
					tc.Remaining = time.Duration(n) * time.Millisecond
					haveTC = true
				}
			case "winc":
				if turn == board.White {
					tc.Increment = time.Duration(n) * time.Millisecond
				}
			case "binc":
				if turn == board.Black {
					tc.Increment = time.Duration(n) * time.Millisecond
				}
			case "movestogo":
				tc.MovesToGo = n
			}

		case "infinite":
			limits.Infinite = true
		case "ponder":
			// The last move of "position" is the move being pondered on; this driver
			// searches the resulting position exactly as a normal "go" would.

		default:
			// searchmoves, mate, and any other unsupported token: ignored.
		}
	}

	if _, haveMoveTime := limits.MoveTime.V(); !haveMoveTime && haveTC && !limits.Infinite {
		limits.MoveTime = lang.Some(search.AllocateTime(tc))
	}

	out, err := d.e.Analyze(ctx, limits)
	if err != nil {
		logw.Errorf(ctx, "Analyze failed: %v", err)
		return
	}
	d.active.Store(true)

	infinite := limits.Infinite
	go func() {
		var last search.PV
		for pv := range out {
			last = pv
			d.ponder <- pv
		}
		if !infinite {
			d.searchCompleted(ctx, last)
		}
	}()
}

func (d *Driver) handlePerft(ctx context.Context, line string, args []string) {
	depth := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			logw.Errorf(ctx, "Invalid perft depth: %v", line)
			return
		}
		depth = n
	}

	g := d.e.Game()
	entries := board.PerftDivide(g, depth)

	var total int64
	for _, e := range entries {
		d.out <- fmt.Sprintf("%v: %v", e.Move.ToUCI(), e.Nodes)
		total += e.Nodes
	}
	d.out <- fmt.Sprintf("Nodes searched: %v", total)
}

func (d *Driver) ensureInactive(ctx context.Context) {
	d.active.Store(false)
	_, _ = d.e.Halt(ctx)
}

func (d *Driver) searchCompleted(ctx context.Context, pv search.PV) {
	if !d.active.CompareAndSwap(true, false) {
		return // stale or duplicate result
	}

	best, ok := pv.BestMove()
	if !ok {
		// No legal move: checkmate or stalemate. UCI has no "no move" token besides the
		// conventional null move.
		d.out <- "bestmove 0000"
		return
	}

	d.out <- formatInfo(pv)
	if ponder, ok := pv.PonderMove(); ok {
		d.out <- fmt.Sprintf("bestmove %v ponder %v", best.ToUCI(), ponder.ToUCI())
	} else {
		d.out <- fmt.Sprintf("bestmove %v", best.ToUCI())
	}
}

func formatInfo(pv search.PV) string {
	parts := []string{"info", fmt.Sprintf("depth %v", pv.Depth)}
	if pv.SelDepth > 0 {
		parts = append(parts, fmt.Sprintf("seldepth %v", pv.SelDepth))
	}
	if mateIn, ok := pv.Score.MateIn(); ok {
		parts = append(parts, fmt.Sprintf("score mate %v", mateIn))
	} else {
		parts = append(parts, fmt.Sprintf("score cp %v", int32(pv.Score)))
	}
	parts = append(parts, fmt.Sprintf("nodes %v", pv.Nodes))
	if pv.Time > 0 {
		parts = append(parts, fmt.Sprintf("time %v", pv.Time.Milliseconds()))
		nps := uint64(float64(pv.Nodes) / pv.Time.Seconds())
		parts = append(parts, fmt.Sprintf("nps %v", nps))
	}
	parts = append(parts, fmt.Sprintf("hashfull %v", int(pv.HashFull*1000)))
	if len(pv.Moves) > 0 {
		uci := make([]string, len(pv.Moves))
		for i, m := range pv.Moves {
			uci[i] = m.ToUCI()
		}
		parts = append(parts, "pv", strings.Join(uci, " "))
	}
	return strings.Join(parts, " ")
}
