package render

import (
	"fmt"
	"strings"
)

// Stage is one section of the report, matching one pass of the analyzer.
type Stage string

const (
	StageTagged   Stage = "tagged"
	StageParsed   Stage = "parsed"
	StageDep      Stage = "dep"
	StageSemGraph Stage = "semgraph"
)

// SupportedStages returns the stages in report order.
func SupportedStages() []Stage {
	return []Stage{StageTagged, StageParsed, StageDep, StageSemGraph}
}

// SentenceStages returns the stages that render a single sentence.
func SentenceStages() []Stage {
	return []Stage{StageTagged, StageParsed, StageDep}
}

// ParseStage converts a stage name. "tagger" is accepted for "tagged".
func ParseStage(s string) (Stage, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "tagger" {
		return StageTagged, nil
	}

	for _, st := range SupportedStages() {
		if string(st) == name {
			return st, nil
		}
	}

	return "", fmt.Errorf("unknown stage %q, allowed values are %s", s, strings.Join(StageNames(), ", "))
}

// ParseStages converts a list of stage names, failing on the first unknown.
func ParseStages(names []string) ([]Stage, error) {
	stages := make([]Stage, 0, len(names))
	for _, n := range names {
		// allow comma separated values
		for _, part := range strings.Split(n, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}

			st, err := ParseStage(part)
			if err != nil {
				return nil, err
			}
			stages = append(stages, st)
		}
	}

	return stages, nil
}

func StageNames() []string {
	names := []string{}
	for _, st := range SupportedStages() {
		names = append(names, string(st))
	}

	return names
}

// Header returns the section title line of the stage.
func (s Stage) Header() string {
	switch s {
	case StageTagged:
		return "-------- TAGGER results -----------"
	case StageParsed:
		return "-------- CHUNKER results -----------"
	case StageDep:
		return "-------- DEPENDENCY PARSER results -----------"
	case StageSemGraph:
		return "-------- SEMANTIC GRAPH results -----------"
	}

	return "-------- " + strings.ToUpper(string(s)) + " results -----------"
}
