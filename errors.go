package gridcut

import "fmt"

// Stage identifies the step of the pipeline that failed.
type Stage string

// Pipeline stages, in the order they run.
const (
	StageConfig   Stage = "config"
	StageDecode   Stage = "decode"
	StageGeometry Stage = "geometry"
	StageMkdir    Stage = "mkdir"
	StageCell     Stage = "cell"
	StageArchive  Stage = "archive"
	StageVerify   Stage = "verify"
)

// Error is returned by Run for any failure. Files written before the failure
// are left on disk.
type Error struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func stageError(stage Stage, path string, err error) error {
	return &Error{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
