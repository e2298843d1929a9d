package request

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/7vars/observe"
)

type Method string

const (
	GET  Method = "GET"
	POST Method = "POST"
)

const (
	StatusOK                  observe.Status = 200
	StatusInternalServerError observe.Status = 500
)

type Request struct {
	Method Method                 `yaml:"method" json:"method" validate:"required,oneof=GET POST"`
	Host   string                 `yaml:"host" json:"host" validate:"required"`
	Path   string                 `yaml:"path" json:"path" validate:"required,startswith=/"`
	Params map[string]string      `yaml:"params" json:"params"`
	Body   map[string]interface{} `yaml:"body,omitempty" json:"body,omitempty"`
}

func (r Request) String() string {
	return fmt.Sprintf("%s %s%s", r.Method, r.Host, r.Path)
}

type file struct {
	Requests []Request `yaml:"requests"`
}

var validate = validator.New()

func Validate(requests []Request) error {
	for i, r := range requests {
		if err := validate.Struct(r); err != nil {
			return InvalidRequestError(i, err)
		}
	}
	return nil
}

// Load decodes a `requests:` document. JSON input works too since it is
// valid YAML.
func Load(r io.Reader) ([]Request, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []Request{}, nil
		}
		return nil, errors.Wrap(err, "decode requests")
	}
	if err := Validate(f.Requests); err != nil {
		return nil, err
	}
	return f.Requests, nil
}

func LoadFile(path string) ([]Request, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer fh.Close()
	requests, err := Load(fh)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return requests, nil
}
