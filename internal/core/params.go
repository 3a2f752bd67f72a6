package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form text.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single value shown in a summary.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures a read-only view of configured values.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// WriteTo renders the snapshot as indented plain text.
func (s ParameterSnapshot) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, g := range s.Groups {
		b.WriteString(g.Name)
		if g.Summary != "" {
			fmt.Fprintf(&b, " (%s)", g.Summary)
		}
		b.WriteString(":\n")
		for _, p := range g.Params {
			fmt.Fprintf(&b, "  %-32s %s\n", p.Label+":", p.Value)
		}
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// IntParam builds an integer parameter entry.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// FloatParam builds a floating-point parameter entry.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}

// BoolParam builds a boolean parameter entry.
func BoolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}

// StringParam builds a text parameter entry.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}
