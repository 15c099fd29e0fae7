package config

import (
	"fmt"
	"log"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/diamondburned/cchat"
	"github.com/diamondburned/cchat-postmark/internal/editor"
	"github.com/diamondburned/cchat-postmark/internal/markup"
	"github.com/pkg/errors"
)

const (
	UnderlineDelimiterKey = "underline-delimiter"
	MaxLengthKey          = "max-length"
	ColorKey              = "color"
)

const (
	underlineDelimiter = iota
	maxLength
	color
)

// Registry holds the markup settings.
type Registry struct {
	registry
}

var _ cchat.Configurator = (*Registry)(nil)

// New creates a registry with the default settings.
func New() *Registry {
	return &Registry{
		registry{
			configs: []config{
				{UnderlineDelimiterKey, &choice{value: "__", options: []string{"__", "_"}}},
				{MaxLengthKey, &limit{value: editor.DefaultMaxLength}},
				{ColorKey, &choice{value: "auto", options: []string{"auto", "on", "off"}}},
			},
		},
	}
}

// World is the process-wide registry.
var World = New()

// Syntax returns the parsing syntax. A single underscore underline selects
// the legacy syntax.
func (reg *Registry) Syntax() markup.Syntax {
	if reg.get(underlineDelimiter).(*choice).value == "_" {
		return markup.LegacySyntax()
	}
	return markup.DefaultSyntax()
}

// Budget returns the character budget under the configured syntax.
func (reg *Registry) Budget() editor.Budget {
	return editor.Budget{
		Max:    reg.get(maxLength).(*limit).value,
		Syntax: reg.Syntax(),
	}
}

// Color returns the color mode, which is one of auto, on or off.
func (reg *Registry) Color() string {
	return reg.get(color).(*choice).value
}

// LoadFile reads a TOML file of settings on top of the current ones. Unknown
// keys are logged and skipped.
func (reg *Registry) LoadFile(path string) error {
	var values map[string]interface{}

	if _, err := toml.DecodeFile(path, &values); err != nil {
		return errors.Wrap(err, "failed to decode config")
	}

	cfgMap, err := reg.Configuration()
	if err != nil {
		return err
	}

	for key, value := range values {
		if _, ok := cfgMap[key]; !ok {
			log.Printf("config: unknown key %q in %s", key, path)
			continue
		}
		cfgMap[key] = stringify(value)
	}

	return errors.Wrapf(reg.SetConfiguration(cfgMap), "invalid config %s", path)
}

func stringify(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
