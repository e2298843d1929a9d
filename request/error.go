package request

import "fmt"

type InvalidRequestErr struct {
	Index int
	err   error
}

func InvalidRequestError(index int, err error) error {
	return InvalidRequestErr{index, err}
}

func (e InvalidRequestErr) Error() string {
	return fmt.Sprintf("request %d: %v", e.Index, e.err)
}

func (e InvalidRequestErr) Previous() error {
	return e.err
}

func (e InvalidRequestErr) Unwrap() error {
	return e.err
}
