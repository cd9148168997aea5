// SPDX-License-Identifier: MIT

// Package platefile reads plate descriptions from YAML:
//
//	label: assay-1
//	rows: 8
//	columns: 12
//	wells:
//	  A1: [1, 2, 3]
//	  B1: [4, 5, 6]
//
// Values are kept as their literal text until Build converts them, so the
// same file can feed float64 and decimal plates without rounding.
package platefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/platestat/plate"
	"github.com/katalvlaran/platestat/well"
)

// ErrInvalid indicates a file that does not describe a valid plate.
var ErrInvalid = errors.New("platefile: invalid plate file")

// Number is a scalar kept as written.
type Number string

// UnmarshalYAML accepts any scalar node.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number, got %s: %w", node.Line, kindName(node.Kind), ErrInvalid)
	}
	*n = Number(node.Value)

	return nil
}

// File is the decoded document.
type File struct {
	Label      string              `yaml:"label"`
	Descriptor string              `yaml:"descriptor"`
	Rows       int                 `yaml:"rows" validate:"required,gt=0"`
	Columns    int                 `yaml:"columns" validate:"required,gt=0"`
	Wells      map[string][]Number `yaml:"wells" validate:"dive,keys,wellid,endkeys"`
}

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("wellid", func(fl validator.FieldLevel) bool {
		_, err := well.ParseID(fl.Field().String())
		return err == nil
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Read decodes and validates a single document. Unknown keys are rejected.
func Read(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return &f, nil
}

// Load reads the file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// WellIDs returns the well keys in plate order.
func (f *File) WellIDs() []string {
	ids := make([]string, 0, len(f.Wells))
	for id := range f.Wells {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := well.ParseID(ids[i])
		b, _ := well.ParseID(ids[j])
		return a.Compare(b) < 0
	})

	return ids
}

// Build converts f into a plate, parsing every value with parse. All bad
// wells are reported together.
func Build[T any](f *File, parse func(string) (T, error), opts ...plate.Option) (*plate.Plate[T], error) {
	if f.Label != "" {
		opts = append([]plate.Option{plate.WithLabel(f.Label)}, opts...)
	}
	if f.Descriptor != "" {
		opts = append([]plate.Option{plate.WithDescriptor(f.Descriptor)}, opts...)
	}
	p, err := plate.New[T](f.Rows, f.Columns, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var errs []error
	for _, id := range f.WellIDs() {
		values, err := parseAll(f.Wells[id], parse)
		if err != nil {
			errs = append(errs, fmt.Errorf("well %s: %w", id, err))
			continue
		}
		w, err := well.Parse(id, values...)
		if err == nil {
			err = p.AddWell(w)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return p, nil
}

// Float builds a float64 plate.
func Float(f *File, opts ...plate.Option) (*plate.Plate[float64], error) {
	return Build(f, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }, opts...)
}

// Decimal builds an exact decimal plate.
func Decimal(f *File, opts ...plate.Option) (*plate.Plate[decimal.Decimal], error) {
	return Build(f, decimal.NewFromString, opts...)
}

func parseAll[T any](raw []Number, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, len(raw))
	for i, n := range raw {
		v, err := parse(string(n))
		if err != nil {
			return nil, fmt.Errorf("value %d %q: %w", i, string(n), err)
		}
		out[i] = v
	}

	return out, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	default:
		return "node"
	}
}
