package config

import "fmt"

type missingErr struct {
	what string
}

func (e missingErr) Error() string {
	return fmt.Sprintf("missing required config %v", e.what)
}

func ErrMissingSection(name string) error {
	return missingErr{what: "section " + name}
}

func ErrMissingKey(name string) error {
	return missingErr{what: "key " + name}
}
