package scaffold

import (
	"fmt"

	"github.com/jakoblorz/go-tsscaffold/internal/models"
)

// Stage names one step of a generation run.
type Stage string

const (
	StageClearRoot           Stage = "clear-root"
	StageWriteManifest       Stage = "write-manifest"
	StageWriteAuxFiles       Stage = "write-aux-files"
	StageBuildSkeleton       Stage = "build-skeleton"
	StageWriteCompilerConfig Stage = "write-compiler-config"
	StageExpandManifest      Stage = "expand-manifest"
)

// Stages returns the stages a run in mode goes through, in order.
func Stages(mode models.LayoutMode) []Stage {
	stages := []Stage{
		StageClearRoot,
		StageWriteManifest,
		StageWriteAuxFiles,
		StageBuildSkeleton,
		StageWriteCompilerConfig,
	}
	if mode == models.LayoutMulti {
		stages = append(stages, StageExpandManifest)
	}
	return stages
}

// StageError reports the stage a run failed in. Nothing written by earlier
// stages is rolled back.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
