package analyzer

import "fmt"

// ErrorPrefix starts every failure string returned by Analyze.
const ErrorPrefix = "Error analyzing repository: "

// Stage names the step of the pipeline that failed.
type Stage string

const (
	StageIdentifier Stage = "identifier"
	StageMetadata   Stage = "metadata"
	StageLanguages  Stage = "languages"
	StageBranch     Stage = "branch"
	StageTree       Stage = "tree"
)

// AnalysisFailure is the only error Run returns. Err keeps the underlying
// cause so callers can match gh sentinels with errors.Is.
type AnalysisFailure struct {
	Stage Stage
	Err   error
}

// Error implements the error interface.
func (f *AnalysisFailure) Error() string {
	return f.Err.Error()
}

func (f *AnalysisFailure) Unwrap() error {
	return f.Err
}

// Message is the display form of the failure.
func (f *AnalysisFailure) Message() string {
	return fmt.Sprintf("%s%s", ErrorPrefix, f.Err.Error())
}
