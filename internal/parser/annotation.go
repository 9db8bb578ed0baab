package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Annotations holds the parsed attrs of one field
type Annotations struct {
	Payload       bool
	Length        string // raw expression, empty if absent
	HasLength     bool
	ConstructWith []string // raw type tags, in order
}

var (
	lengthRe        = regexp.MustCompile(`^length\s*=\s*(.*)$`)
	constructWithRe = regexp.MustCompile(`^construct_with\s*\((.*)\)$`)
)

// ParseAnnotation parses a single field annotation into anno
//
// Expected format:
//
//	payload
//	length = "banana + 7"
//	length = banana
//	construct_with(u16be, u8)
//
// Quotes around the length expression are optional.
func ParseAnnotation(attr string, anno *Annotations) error {
	attr = strings.TrimSpace(attr)

	if attr == "payload" {
		anno.Payload = true
		return nil
	}

	if m := lengthRe.FindStringSubmatch(attr); m != nil {
		expr := strings.TrimSpace(m[1])
		if unq, err := strconv.Unquote(expr); err == nil {
			expr = strings.TrimSpace(unq)
		}
		if expr == "" {
			return &typeError{KindUnknownAnnotation, "length requires an expression"}
		}
		if anno.HasLength {
			return &typeError{KindUnknownAnnotation, "length declared twice"}
		}
		anno.Length = expr
		anno.HasLength = true
		return nil
	}

	if m := constructWithRe.FindStringSubmatch(attr); m != nil {
		args := strings.TrimSpace(m[1])
		if args == "" {
			return &typeError{KindMissingConstructWith, "construct_with must have at least one argument"}
		}
		for _, arg := range strings.Split(args, ",") {
			arg = strings.TrimSpace(arg)
			if arg == "" {
				return &typeError{KindInvalidConstructArg, fmt.Sprintf("empty argument in %q", attr)}
			}
			anno.ConstructWith = append(anno.ConstructWith, arg)
		}
		return nil
	}

	name := attr
	if i := strings.IndexAny(name, " =("); i >= 0 {
		name = name[:i]
	}
	return &typeError{KindUnknownAnnotation, fmt.Sprintf("unknown option '%s'", name)}
}

// ParseAnnotations parses every attr of a field in order.
func ParseAnnotations(attrs []string) (*Annotations, error) {
	anno := &Annotations{}
	for _, attr := range attrs {
		if err := ParseAnnotation(attr, anno); err != nil {
			return nil, err
		}
	}
	return anno, nil
}
