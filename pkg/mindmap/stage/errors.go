package stage

import (
	"fmt"

	"github.com/cognicore/mindmap/pkg/mindmap/internalerr"
)

// Stage names used in errors and log fields.
const (
	Word2Phrase = "word2phrase"
	Word2Vec    = "word2vec"
)

// ExitError reports an external stage that exited with a non-zero status.
type ExitError struct {
	Stage string
	Code  int
	Err   error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Stage, e.Code)
}

// Unwrap exposes internalerr.ErrStageFailed and the underlying process
// error to errors.Is and errors.As.
func (e *ExitError) Unwrap() []error {
	if e.Err == nil {
		return []error{internalerr.ErrStageFailed}
	}
	return []error{internalerr.ErrStageFailed, e.Err}
}
