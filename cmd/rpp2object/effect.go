package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ivlev/rpp2object/internal/config"
	"github.com/ivlev/rpp2object/internal/effects"
)

// parseEffect reads one --effect value:
//
//	座標:X=0,100,直線移動;Y=5
//	アニメーション効果:check0=1
//
// Constant parameters take start[,end[,method]], boolean ones 0 or 1.
// Parameters left out keep their registry default.
func parseEffect(s string) (config.EffectSpec, error) {
	name, list, _ := strings.Cut(s, ":")
	name = strings.TrimSpace(name)

	def, ok := effects.Lookup(name)
	if !ok {
		return config.EffectSpec{}, fmt.Errorf("unknown effect %q", name)
	}

	set := make(map[int]config.ParamBinding)
	last := -1
	for _, entry := range strings.Split(list, ";") {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		key, value, found := strings.Cut(entry, "=")
		if !found {
			return config.EffectSpec{}, fmt.Errorf("%s: %q is not param=value", name, entry)
		}

		idx := paramIndex(def, strings.TrimSpace(key))
		if idx < 0 {
			return config.EffectSpec{}, fmt.Errorf("%s has no parameter %q", name, key)
		}
		if _, dup := set[idx]; dup {
			return config.EffectSpec{}, fmt.Errorf("%s: %s given twice", name, key)
		}

		b, err := binding(def.Params[idx], value)
		if err != nil {
			return config.EffectSpec{}, fmt.Errorf("%s: %w", name, err)
		}
		set[idx] = b
		last = max(last, idx)
	}

	spec := config.EffectSpec{Name: def.Name, Params: make([]config.ParamBinding, 0, last+1)}
	for i := 0; i <= last; i++ {
		b, ok := set[i]
		if !ok {
			b = defaultBinding(def.Params[i])
		}
		spec.Params = append(spec.Params, b)
	}
	return spec, nil
}

func paramIndex(def effects.Effect, name string) int {
	for i, p := range def.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func binding(p effects.ParamDef, value string) (config.ParamBinding, error) {
	value = strings.TrimSpace(value)
	if p.Kind == effects.Boolean {
		checked, err := strconv.ParseBool(value)
		if err != nil {
			return config.ParamBinding{}, fmt.Errorf("%s wants 0 or 1, got %q", p.Name, value)
		}
		return config.Bool(checked), nil
	}

	parts := strings.SplitN(value, ",", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	method := strings.TrimSpace(parts[2])
	if method != "" && !knownMethod(method) {
		return config.ParamBinding{}, fmt.Errorf("%s: unknown method %q", p.Name, method)
	}
	return config.Motion(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), method), nil
}

func defaultBinding(p effects.ParamDef) config.ParamBinding {
	if p.Kind == effects.Boolean {
		return config.Bool(p.Default == "1")
	}
	return config.Motion(p.Default, "", effects.MethodNone)
}

func knownMethod(name string) bool {
	for _, m := range effects.Methods() {
		if m.Name == name {
			return true
		}
	}
	return false
}
