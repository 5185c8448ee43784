// driver.go owns a UCI engine subprocess's lifecycle: start, stdin command
// writes, stdout line dispatch, and shutdown, following the standard
// os/exec stdin/stdout pipe pattern, with logging wired through the same
// clog package the rest of chesscore uses.

package uci

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/corvidchess/chesscore/clog"
)

var log = clog.Get("uci")

// Driver manages one running engine subprocess.
type Driver struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner

	mu        sync.Mutex
	id        IDLine
	options   []Option
	infoFunc  func(Info)
	bestMoves chan BestMove
	ready     chan struct{}
	uciOK     chan struct{}
}

// Start launches name with args, wiring its stdin/stdout pipes, and begins
// reading its output on a background goroutine.
func Start(name string, args ...string) (*Driver, error) {
	cmd := exec.Command(name, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	d := &Driver{
		cmd:       cmd,
		stdin:     stdin,
		stdout:    bufio.NewScanner(stdout),
		bestMoves: make(chan BestMove, 1),
		ready:     make(chan struct{}, 1),
		uciOK:     make(chan struct{}, 1),
	}
	go d.readLoop()
	return d, nil
}

// OnInfo registers a callback invoked for every parsed "info ..." line.
func (d *Driver) OnInfo(f func(Info)) {
	d.mu.Lock()
	d.infoFunc = f
	d.mu.Unlock()
}

// ID returns the engine's "id name"/"id author" response, if seen so far.
func (d *Driver) ID() IDLine {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.id
}

// Options returns every "option ..." line parsed so far.
func (d *Driver) Options() []Option {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Option(nil), d.options...)
}

func (d *Driver) readLoop() {
	for d.stdout.Scan() {
		line := strings.TrimSpace(d.stdout.Text())
		if line == "" {
			continue
		}
		d.dispatch(line)
	}
	if err := d.stdout.Err(); err != nil {
		log.Errorf("uci: stdout read error: %v", err)
	}
}

func (d *Driver) dispatch(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "id":
		d.mu.Lock()
		ParseID(&d.id, fields[1:])
		d.mu.Unlock()
	case "option":
		opt := ParseOption(fields[1:])
		d.mu.Lock()
		d.options = append(d.options, opt)
		d.mu.Unlock()
	case "uciok":
		select {
		case d.uciOK <- struct{}{}:
		default:
		}
	case "readyok":
		select {
		case d.ready <- struct{}{}:
		default:
		}
	case "info":
		d.mu.Lock()
		f := d.infoFunc
		d.mu.Unlock()
		if f != nil {
			f(ParseInfo(fields[1:]))
		}
	case "bestmove":
		select {
		case d.bestMoves <- ParseBestMove(fields[1:]):
		default:
		}
	default:
		log.Debugf("uci: unrecognized engine line: %q", line)
	}
}

func (d *Driver) send(command string) error {
	_, err := fmt.Fprintln(d.stdin, command)
	return err
}

// UCI sends "uci" and blocks until "uciok" is observed.
func (d *Driver) UCI() error {
	if err := d.send("uci"); err != nil {
		return err
	}
	<-d.uciOK
	return nil
}

// IsReady sends "isready" and blocks until "readyok" is observed.
func (d *Driver) IsReady() error {
	if err := d.send("isready"); err != nil {
		return err
	}
	<-d.ready
	return nil
}

// NewGame sends "ucinewgame".
func (d *Driver) NewGame() error { return d.send("ucinewgame") }

// SetPosition sends a "position ..." command.
func (d *Driver) SetPosition(fen string, moves []string) error {
	return d.send(PositionCommand(fen, moves))
}

// SetOption sends a "setoption ..." command.
func (d *Driver) SetOption(name, value string) error {
	return d.send(SetOptionCommand(name, value))
}

// Go sends a "go ..." command and blocks until "bestmove" is observed.
func (d *Driver) Go(p GoParams) (BestMove, error) {
	if err := d.send(GoCommand(p)); err != nil {
		return BestMove{}, err
	}
	return <-d.bestMoves, nil
}

// Stop sends "stop".
func (d *Driver) Stop() error { return d.send("stop") }

// Quit sends "quit" and waits for the subprocess to exit. Once the
// subprocess has been waited for, further calls do nothing.
func (d *Driver) Quit() error {
	if d.cmd.ProcessState != nil {
		return nil
	}
	if err := d.send("quit"); err != nil {
		return err
	}
	return d.cmd.Wait()
}
