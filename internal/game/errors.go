package game

import "errors"

// ErrNoSuchPiece reports a query or move against an empty square. It is
// the only error that crosses the package boundary; ordinary illegal
// moves are boolean outcomes, not errors.
var ErrNoSuchPiece = errors.New("no piece at that square")
