package main

import (
	"fmt"
	"io"

	"github.com/phorward/charclass"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type report struct {
	Class  string   `yaml:"class"`
	Count  int      `yaml:"count"`
	Ranges []string `yaml:"ranges,flow"`
}

func (a *app) print(w io.Writer, c charclass.Class) error {
	switch format := a.v.GetString("format"); format {
	case "notation":
		_, err := fmt.Fprintln(w, c)
		return err

	case "ranges":
		for r := range c.Intervals() {
			if _, err := fmt.Fprintln(w, r); err != nil {
				return err
			}
		}
		return nil

	case "yaml":
		rep := report{Class: c.String(), Count: c.Count(), Ranges: []string{}}
		for r := range c.Intervals() {
			rep.Ranges = append(rep.Ranges, r.String())
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return enc.Close()

	default:
		return errors.Errorf("unknown format %q", format)
	}
}
