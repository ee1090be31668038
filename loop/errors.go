package loop

import "errors"

// ErrTooManyActions is returned by RunTurn when the inner cycle exhausts its
// action budget without the model producing a final response.
var ErrTooManyActions = errors.New("too many actions in one turn")
