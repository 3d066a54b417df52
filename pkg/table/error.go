package table

import "errors"

// ErrNothingToUndo is returned when Undo() is called on the opening round
var ErrNothingToUndo = errors.New("there are no plays to undo")
