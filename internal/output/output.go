package output

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/config"
	"github.com/lgbarn/chessduel-go/internal/engine"
)

// lineWriter writes space-separated tokens, wrapping at maxLineLength.
type lineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

func newLineWriter(w io.Writer, maxLineLength int) *lineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &lineWriter{w: w, maxLineLength: maxLineLength}
}

// Write writes a token, adding a space separator or a line break as needed.
func (o *lineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *lineWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// TextVisualizer renders one side's events as plain text: board diagrams
// drawn from that side's point of view and one-line notices.
type TextVisualizer struct {
	mu   sync.Mutex
	w    io.Writer
	side chess.Side
	cfg  config.OutputConfig
	last chess.Snapshot
}

// NewTextVisualizer creates a text visualizer for side.
func NewTextVisualizer(w io.Writer, side chess.Side, cfg config.OutputConfig) *TextVisualizer {
	return &TextVisualizer{w: w, side: side, cfg: cfg}
}

func (v *TextVisualizer) OnBoardUpdated(board chess.Snapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.last = board
	v.writeBoard(board)
}

func (v *TextVisualizer) OnTurnChanged(side chess.Side) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if side == v.side {
		fmt.Fprintf(v.w, "%v to move (you).\n", side)
	} else {
		fmt.Fprintf(v.w, "%v to move.\n", side)
	}
}

func (v *TextVisualizer) OnInvalidMove(src, dest chess.Coordinate, piece chess.Piece) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.w, "Invalid move %v-%v (%v).\n", src, dest, piece)
	if v.cfg.ShowHints && v.last != nil && src.OnBoard() {
		WriteHint(v.w, src, engine.Destinations(v.last, src).Sorted())
	}
}

func (v *TextVisualizer) OnGameOver(winner chess.Side) {
	v.mu.Lock()
	defer v.mu.Unlock()
	outcome := "you lose"
	if winner == v.side {
		outcome = "you win"
	}
	fmt.Fprintf(v.w, "Game over: %v wins, %s.\n", winner, outcome)
}

func (v *TextVisualizer) OnMessage(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.w, "<%v> %s\n", v.side.Opposite(), text)
}

func (v *TextVisualizer) OnPromotionPrompt(at chess.Coordinate) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.w, "Pawn on %v promotes. Choose with: ascend queen|rook|bishop|knight\n", at)
}

func (v *TextVisualizer) OnTranslocationOffer(king chess.Coordinate) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintf(v.w, "Translocate the king on %v? (yes/no)\n", king)
}

// WriteHint lists dests as the moves available from src.
func WriteHint(w io.Writer, src chess.Coordinate, dests []chess.Coordinate) {
	if len(dests) == 0 {
		fmt.Fprintf(w, "No moves from %v.\n", src)
		return
	}
	lw := newLineWriter(w, 40)
	lw.Write(fmt.Sprintf("Moves from %v:", src))
	for _, d := range dests {
		lw.Write(d.String())
	}
	lw.NewLine()
}

// writeBoard draws the board. The observing side's pieces are at the
// bottom unless the perspective is fixed to White.
func (v *TextVisualizer) writeBoard(board chess.Snapshot) {
	flip := v.cfg.Perspective == config.PerspectiveOwn && v.side == chess.Black
	fmt.Fprint(v.w, RenderBoard(board, flip, v.cfg.Coordinates))
}

// RenderBoard draws board as an 8x8 text grid. Unflipped, rank 8 is at the
// top and file a on the left; flipped, rank 1 is at the top and file h on
// the left.
func RenderBoard(board chess.Snapshot, flip, coordinates bool) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		y := chess.BoardSize - 1 - row
		if flip {
			y = row
		}
		if coordinates {
			fmt.Fprintf(&sb, "%d ", y+1)
		}
		for col := 0; col < chess.BoardSize; col++ {
			x := col
			if flip {
				x = chess.BoardSize - 1 - col
			}
			if col > 0 {
				sb.WriteByte(' ')
			}
			p := board.At(chess.C(x, y))
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.Letter())
			}
		}
		sb.WriteByte('\n')
	}
	if coordinates {
		sb.WriteString(" ")
		for col := 0; col < chess.BoardSize; col++ {
			x := col
			if flip {
				x = chess.BoardSize - 1 - col
			}
			sb.WriteByte(' ')
			sb.WriteByte(byte('a' + x))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
