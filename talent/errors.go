package talent

import "fmt"

// MissingFieldError reports a required audio feature the catalog did not return.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing audio feature %q", e.Field)
}

// ParseError reports a release date that is not a recognizable date or year.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable release date %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ArtifactLoadError reports a scaler or model artifact that is missing or malformed.
type ArtifactLoadError struct {
	Path string
	Err  error
}

func (e *ArtifactLoadError) Error() string {
	return fmt.Sprintf("load artifact %s: %v", e.Path, e.Err)
}

func (e *ArtifactLoadError) Unwrap() error { return e.Err }

// PredictionError reports a failed model invocation.
type PredictionError struct {
	Model string
	Err   error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("%s model: %v", e.Model, e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }

// ExternalLookupError reports a failed catalog call.
type ExternalLookupError struct {
	Op  string
	Err error
}

func (e *ExternalLookupError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *ExternalLookupError) Unwrap() error { return e.Err }
