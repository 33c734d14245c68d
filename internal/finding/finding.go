package finding

import "fmt"

// Source identifies the validator that produced a finding.
type Source string

const (
	SourceProject    Source = "project"
	SourceStructure  Source = "structure"
	SourceManifest   Source = "manifest"
	SourceSourceTree Source = "sources"
	SourceHeuristics Source = "heuristics"
	SourceResources  Source = "resources"
)

type Finding struct {
	Severity Severity
	Source   Source
	Message  string
}

func New(sev Severity, src Source, format string, args ...any) Finding {
	return Finding{
		Severity: sev,
		Source:   src,
		Message:  fmt.Sprintf(format, args...),
	}
}

func OK(src Source, format string, args ...any) Finding {
	return New(SevOK, src, format, args...)
}

func Info(src Source, format string, args ...any) Finding {
	return New(SevInfo, src, format, args...)
}

func Warning(src Source, format string, args ...any) Finding {
	return New(SevWarning, src, format, args...)
}

func Error(src Source, format string, args ...any) Finding {
	return New(SevError, src, format, args...)
}
