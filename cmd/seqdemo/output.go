package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collections/collections"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// result is the structured form of a command's output.
type result[T any] struct {
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
	Count  int    `json:"count" yaml:"count"`
	Values []T    `json:"values" yaml:"values"`
}

// emit drains s and writes its elements to w in the configured format.
func emit[T any](a *app, w io.Writer, label string, s *collections.Sequence[T]) error {
	values := s.ToSlice()
	a.log.Debugw("emit", fieldCount, len(values))
	res := result[T]{Label: label, Count: len(values), Values: values}

	switch a.cfg.Format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(res), "failed to encode json")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(res); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		return errors.Wrap(enc.Close(), "failed to encode yaml")
	default:
		opts := []collections.JoinOption{collections.WithSeparator(" ")}
		if a.cfg.Limit > 0 {
			opts = append(opts, collections.WithLimit(a.cfg.Limit))
		}
		if label != "" {
			opts = append(opts, collections.WithPrefix(label+": "))
		}
		_, err := fmt.Fprintln(w, collections.FromSlice(values).Join(opts...))
		return err
	}
}
