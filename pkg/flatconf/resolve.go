package flatconf

import "fmt"

// UnresolvedRefError is the fatal configuration error produced when a
// symbolic reference cannot be resolved at load time.
type UnresolvedRefError struct {
	Block int    // block index in the configuration
	Kind  string // "plugin", "preset" or "globals preset"
	Name  string // the offending reference
}

func (e *UnresolvedRefError) Error() string {
	return fmt.Sprintf("block %d: unresolved %s %q", e.Block, e.Kind, e.Name)
}

// flattened is the per-block resolution product: the concatenation of the
// extended rule sets in order, then the explicit overrides, with
// last-write-wins on conflicting keys.
type flattened struct {
	Rules    RuleSet
	Env      []string
	Globals  map[string]string
	Settings map[string]any
}

// flatten resolves the block's extension references and produces its
// merged rule table. blockIdx is used only for error reporting.
func (b *ConfigBlock) flatten(blockIdx int) (*flattened, error) {
	out := &flattened{
		Rules:    make(RuleSet),
		Globals:  map[string]string{},
		Settings: map[string]any{},
	}

	for _, ref := range b.Extends {
		preset, err := resolveRef(ref, blockIdx)
		if err != nil {
			return nil, err
		}
		for name, level := range preset.Rules {
			out.Rules[name] = level
		}
		out.Env = append(out.Env, preset.Globals...)
		mergeSettings(out.Settings, preset.Settings)
	}

	for name, level := range b.Rules {
		out.Rules[name] = level
	}
	out.Env = append(out.Env, b.LanguageOptions.Env...)
	for name, mode := range b.LanguageOptions.Globals {
		out.Globals[name] = mode
	}
	mergeSettings(out.Settings, b.Settings)

	return out, nil
}

// resolveRef resolves an extension reference to its preset. Direct
// references resolve trivially; named references consult the registry.
func resolveRef(ref ExtensionRef, blockIdx int) (*Preset, error) {
	if !ref.IsNamed() {
		return ref.direct, nil
	}
	preset, ok := LookupPreset(ref.name)
	if !ok {
		return nil, &UnresolvedRefError{Block: blockIdx, Kind: "preset", Name: ref.name}
	}
	return preset, nil
}

// mergeSettings merges src into dst key by key. When both sides hold a
// map for the same key, the maps merge one level deep; otherwise the
// later value wins.
func mergeSettings(dst, src map[string]any) {
	for key, val := range src {
		srcMap, srcOK := val.(map[string]any)
		dstMap, dstOK := dst[key].(map[string]any)
		if srcOK && dstOK {
			merged := make(map[string]any, len(dstMap)+len(srcMap))
			for k, v := range dstMap {
				merged[k] = v
			}
			for k, v := range srcMap {
				merged[k] = v
			}
			dst[key] = merged
			continue
		}
		dst[key] = val
	}
}
