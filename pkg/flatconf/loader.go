package flatconf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/flatlint-labs/flatlint/pkg/globals"
)

// rawBlock mirrors the on-disk block shape before loose fields (rule
// levels, globals entries) are converted to the typed model.
type rawBlock struct {
	Name            string             `koanf:"name"`
	Files           []string           `koanf:"files"`
	Ignores         []string           `koanf:"ignores"`
	Plugins         []string           `koanf:"plugins"`
	Extends         []string           `koanf:"extends"`
	Rules           map[string]any     `koanf:"rules"`
	LanguageOptions rawLanguageOptions `koanf:"languageOptions"`
	Settings        map[string]any     `koanf:"settings"`
}

// rawLanguageOptions accepts both entry forms under globals: preset name
// strings and inline identifier -> mode maps.
type rawLanguageOptions struct {
	Globals []any `koanf:"globals"`
}

// LoadFile loads a flat configuration document from a YAML or JSON file.
//
// Every symbolic reference (plugin id, "plugin/preset" extends entry,
// globals preset name) is resolved against the registries during load; an
// unresolvable name is a fatal load error carrying the block index.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")
	// YAML is a superset of JSON, so one parser covers .yaml, .yml and .json.
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var raws []rawBlock
	if err := k.Unmarshal("blocks", &raws); err != nil {
		return nil, fmt.Errorf("unable to decode config %s: %w", path, err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("config %s declares no blocks", path)
	}

	cfg := &Config{Source: filepath.Clean(path)}
	for i, raw := range raws {
		block, err := buildBlock(i, raw)
		if err != nil {
			return nil, err
		}
		cfg.Blocks = append(cfg.Blocks, *block)
	}
	return cfg, nil
}

func buildBlock(idx int, raw rawBlock) (*ConfigBlock, error) {
	block := &ConfigBlock{
		Name:     raw.Name,
		Files:    raw.Files,
		Ignores:  raw.Ignores,
		Rules:    make(RuleSet, len(raw.Rules)),
		Settings: raw.Settings,
	}

	if len(raw.Plugins) > 0 {
		block.Plugins = make(map[string]*Plugin, len(raw.Plugins))
		for _, id := range raw.Plugins {
			p, ok := LookupPlugin(id)
			if !ok {
				return nil, &UnresolvedRefError{Block: idx, Kind: "plugin", Name: id}
			}
			block.Plugins[id] = p
		}
	}

	for _, ref := range raw.Extends {
		if _, ok := LookupPreset(ref); !ok {
			return nil, &UnresolvedRefError{Block: idx, Kind: "preset", Name: ref}
		}
		block.Extends = append(block.Extends, Named(ref))
	}

	for name, v := range raw.Rules {
		level, err := ParseRuleLevel(v)
		if err != nil {
			return nil, fmt.Errorf("block %d: rule %q: %w", idx, name, err)
		}
		block.Rules[name] = level
	}

	for _, entry := range raw.LanguageOptions.Globals {
		switch g := entry.(type) {
		case string:
			if _, ok := globals.Lookup(g); !ok {
				return nil, &UnresolvedRefError{Block: idx, Kind: "globals preset", Name: g}
			}
			block.LanguageOptions.Env = append(block.LanguageOptions.Env, g)
		default:
			inline, err := decodeInlineGlobals(entry)
			if err != nil {
				return nil, fmt.Errorf("block %d: globals entry: %w", idx, err)
			}
			if block.LanguageOptions.Globals == nil {
				block.LanguageOptions.Globals = map[string]string{}
			}
			for ident, mode := range inline {
				block.LanguageOptions.Globals[ident] = mode
			}
		}
	}

	return block, nil
}

// ParseRuleLevel converts a rule value from any of its accepted config
// forms: a bare severity ("warn", 1, ...) or a tuple whose first element
// is the severity and whose remaining elements are rule options.
func ParseRuleLevel(v any) (RuleLevel, error) {
	if tuple, ok := v.([]any); ok {
		if len(tuple) == 0 {
			return RuleLevel{}, fmt.Errorf("empty rule tuple")
		}
		sev, ok := SeverityFromValue(tuple[0])
		if !ok {
			return RuleLevel{}, fmt.Errorf("invalid severity %v", tuple[0])
		}
		return RuleLevel{Severity: sev, Options: tuple[1:]}, nil
	}

	sev, ok := SeverityFromValue(v)
	if !ok {
		return RuleLevel{}, fmt.Errorf("invalid severity %v", v)
	}
	return RuleLevel{Severity: sev}, nil
}

// decodeInlineGlobals converts an inline globals map, tolerating the
// loose value forms YAML produces (strings, booleans).
func decodeInlineGlobals(entry any) (map[string]string, error) {
	var decoded map[string]string
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &decoded,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(entry); err != nil {
		return nil, fmt.Errorf("expected identifier map: %w", err)
	}

	out := make(map[string]string, len(decoded))
	for ident, mode := range decoded {
		switch strings.ToLower(mode) {
		case globals.Readonly, "false", "readable":
			out[ident] = globals.Readonly
		case globals.Writable, "true", "writeable":
			out[ident] = globals.Writable
		default:
			return nil, fmt.Errorf("global %q: unknown mode %q", ident, mode)
		}
	}
	return out, nil
}
