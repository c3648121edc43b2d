// Package preset reads and writes shape parameter files. A preset names the
// shape to build and may carry a table of parameters for every shape:
//
//	shape = "torus"
//
//	[torus]
//	major_radius = 1.5
//	minor_segments = 24
//
// Fields missing from the file keep their default value.
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/soypat/meshgen/form3"
	"gopkg.in/yaml.v3"
)

// Format is a preset file encoding.
type Format int

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf returns the format matching the extension of filename.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("unknown preset extension %q", filepath.Ext(filename))
}

// File is the content of a preset file.
type File struct {
	Shape   form3.Kind          `toml:"shape" yaml:"shape"`
	Spindle form3.SpindleParams `toml:"spindle" yaml:"spindle"`
	Capsule form3.CapsuleParams `toml:"capsule" yaml:"capsule"`
	Torus   form3.TorusParams   `toml:"torus" yaml:"torus"`
	Pyramid form3.PyramidParams `toml:"pyramid" yaml:"pyramid"`
	Gear    form3.GearParams    `toml:"gear" yaml:"gear"`
	Star    form3.StarParams    `toml:"star" yaml:"star"`
}

// Default returns a preset holding the default parameters of every shape
// with shape set to kind.
func Default(kind form3.Kind) File {
	return File{
		Shape:   kind,
		Spindle: form3.DefaultSpindle(),
		Capsule: form3.DefaultCapsule(),
		Torus:   form3.DefaultTorus(),
		Pyramid: form3.DefaultPyramid(),
		Gear:    form3.DefaultGear(),
		Star:    form3.DefaultStar(),
	}
}

// Params returns the parameters of the selected shape.
func (f *File) Params() form3.Params {
	switch f.Shape {
	case form3.Spindle:
		return &f.Spindle
	case form3.Capsule:
		return &f.Capsule
	case form3.Torus:
		return &f.Torus
	case form3.Pyramid:
		return &f.Pyramid
	case form3.Gear:
		return &f.Gear
	case form3.Star:
		return &f.Star
	}
	return nil
}

// SetParams stores p in the table of its shape and selects that shape.
func (f *File) SetParams(p form3.Params) error {
	if v := reflect.ValueOf(p); v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return errors.New("nil parameters")
		}
		p = v.Elem().Interface().(form3.Params)
	}
	switch p := p.(type) {
	case form3.SpindleParams:
		f.Spindle = p
	case form3.CapsuleParams:
		f.Capsule = p
	case form3.TorusParams:
		f.Torus = p
	case form3.PyramidParams:
		f.Pyramid = p
	case form3.GearParams:
		f.Gear = p
	case form3.StarParams:
		f.Star = p
	case nil:
		return errors.New("nil parameters")
	default:
		return fmt.Errorf("unsupported parameter type %T", p)
	}
	f.Shape = p.Kind()
	return nil
}

// decoder is implemented by the TOML and YAML decoders.
type decoder interface {
	Decode(v any) error
}

type encoder interface {
	Encode(v any) error
}

// decode decodes data into v. With strict set unknown keys are an error.
func decode(data []byte, format Format, strict bool, v any) error {
	var dec decoder
	r := bytes.NewReader(data)
	switch format {
	case TOML:
		td := toml.NewDecoder(r)
		if strict {
			td.DisallowUnknownFields()
		}
		dec = td
	case YAML:
		yd := yaml.NewDecoder(r)
		yd.KnownFields(strict)
		dec = yd
	default:
		return fmt.Errorf("unsupported preset format %s", format)
	}
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil // Empty YAML document.
	}
	return err
}

// Open reads the preset file at filename, choosing the format from its
// extension.
func Open(filename string) (File, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return File{}, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return File{}, err
	}
	defer fp.Close()
	f, err := Read(fp, format)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}

// Read decodes a preset. The shape key is required; parameter tables are
// optional and missing fields keep their defaults. Unknown keys are an
// error. Parameters are not validated here, form3.Build does that.
func Read(r io.Reader, format Format) (File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, err
	}
	var probe struct {
		Shape *form3.Kind `toml:"shape" yaml:"shape"`
	}
	if err := decode(data, format, false, &probe); err != nil {
		return File{}, err
	}
	if probe.Shape == nil {
		return File{}, errors.New("preset is missing the shape key")
	}
	f := Default(*probe.Shape)
	if err := decode(data, format, true, &f); err != nil {
		return File{}, err
	}
	return f, nil
}

// Write encodes f to w.
func Write(w io.Writer, f File, format Format) error {
	var enc encoder
	switch format {
	case TOML:
		enc = toml.NewEncoder(w)
	case YAML:
		ye := yaml.NewEncoder(w)
		defer ye.Close()
		enc = ye
	default:
		return fmt.Errorf("unsupported preset format %s", format)
	}
	return enc.Encode(f)
}
