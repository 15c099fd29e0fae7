package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// choice is a string limited to a set of options.
type choice struct {
	value   string
	options []string
}

var _ customType = (*choice)(nil)

func (c *choice) Marshal() string {
	return c.value
}

func (c *choice) Unmarshal(v string) error {
	for _, opt := range c.options {
		if v == opt {
			c.value = v
			return nil
		}
	}

	return errors.Errorf("%q is not one of %s", v, strings.Join(c.options, ", "))
}

func (c *choice) clone() customType {
	cpy := *c
	return &cpy
}

// limit is a positive integer.
type limit struct {
	value int
}

var _ customType = (*limit)(nil)

func (l *limit) Marshal() string {
	return strconv.Itoa(l.value)
}

func (l *limit) Unmarshal(v string) error {
	i, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrap(err, "invalid integer")
	}
	if i <= 0 {
		return errors.New("must be positive")
	}

	l.value = i
	return nil
}

func (l *limit) clone() customType {
	cpy := *l
	return &cpy
}
