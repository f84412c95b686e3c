package gateway

import "errors"

var (
	// ErrEmptyInput is returned when there is neither text nor an image to analyze.
	ErrEmptyInput = errors.New("nothing to analyze")
	// ErrInvalidInput is returned for an unusable image attachment.
	ErrInvalidInput = errors.New("invalid analysis input")

	// ErrAnalysisParse means the analysis output was not valid JSON or did
	// not match the analysis schema.
	ErrAnalysisParse = errors.New("analysis response could not be parsed")
	// ErrRegistryParse means the registry output was not valid JSON, did not
	// match the registry schema, or carried no entry list.
	ErrRegistryParse = errors.New("registry response could not be parsed")
)
