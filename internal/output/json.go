package output

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/lgbarn/chessduel-go/internal/chess"
	"github.com/lgbarn/chessduel-go/internal/engine"
)

// JSONEvent is one visualizer callback in JSON form.
type JSONEvent struct {
	Type   string `json:"type"`
	Side   string `json:"side"` // Observing side
	Board  string `json:"board,omitempty"`
	Turn   string `json:"turn,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
	At     string `json:"at,omitempty"`
	Piece  string `json:"piece,omitempty"`
	Winner string `json:"winner,omitempty"`
	Text   string `json:"text,omitempty"`
}

// JSONVisualizer writes one JSON object per event, newline delimited.
type JSONVisualizer struct {
	mu   sync.Mutex
	enc  *json.Encoder
	side chess.Side
	err  error
}

// NewJSONVisualizer creates a JSON visualizer for side.
func NewJSONVisualizer(w io.Writer, side chess.Side) *JSONVisualizer {
	return &JSONVisualizer{enc: json.NewEncoder(w), side: side}
}

// Err returns the first write error, if any.
func (v *JSONVisualizer) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

func (v *JSONVisualizer) emit(e JSONEvent) {
	e.Side = v.side.String()
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.enc.Encode(e); err != nil && v.err == nil {
		v.err = err
	}
}

func (v *JSONVisualizer) OnInvalidMove(src, dest chess.Coordinate, piece chess.Piece) {
	e := JSONEvent{Type: "invalid", From: src.String(), To: dest.String()}
	if !piece.IsEmpty() {
		e.Piece = piece.String()
	}
	v.emit(e)
}

func (v *JSONVisualizer) OnBoardUpdated(board chess.Snapshot) {
	v.emit(JSONEvent{Type: "board", Board: engine.Placement(board)})
}

func (v *JSONVisualizer) OnTurnChanged(side chess.Side) {
	v.emit(JSONEvent{Type: "turn", Turn: side.String()})
}

func (v *JSONVisualizer) OnGameOver(winner chess.Side) {
	v.emit(JSONEvent{Type: "gameover", Winner: winner.String()})
}

func (v *JSONVisualizer) OnMessage(text string) {
	v.emit(JSONEvent{Type: "message", Text: text})
}

func (v *JSONVisualizer) OnPromotionPrompt(at chess.Coordinate) {
	v.emit(JSONEvent{Type: "promotion", At: at.String()})
}

func (v *JSONVisualizer) OnTranslocationOffer(king chess.Coordinate) {
	v.emit(JSONEvent{Type: "translocation", At: king.String()})
}
