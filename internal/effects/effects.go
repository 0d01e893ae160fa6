package effects

import "fmt"

// Kind is how a parameter is edited and rendered.
type Kind int

const (
	// Constant parameters render as a motion field: start, end and method.
	Constant Kind = iota
	// Boolean parameters render as 0 or 1.
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Boolean:
		return "boolean"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParamDef describes one parameter of an effect.
type ParamDef struct {
	Name    string
	Default string
	Kind    Kind
}

// Effect is an entry of the registry. Params are in output order.
type Effect struct {
	Name   string
	Params []ParamDef
}

// registry is ordered the way the editor lists effects. The names are the
// literal section names the consumer expects.
var registry = []Effect{
	{Name: "座標", Params: []ParamDef{
		{Name: "X", Default: "0.0"},
		{Name: "Y", Default: "0.0"},
		{Name: "Z", Default: "0.0"},
	}},
	{Name: "拡大率", Params: []ParamDef{
		{Name: "拡大率", Default: "100.0"},
		{Name: "X", Default: "100.0"},
		{Name: "Y", Default: "100.0"},
	}},
	{Name: "透明度", Params: []ParamDef{
		{Name: "透明度", Default: "0.0"},
	}},
	{Name: "回転", Params: []ParamDef{
		{Name: "X", Default: "0.0"},
		{Name: "Y", Default: "0.0"},
		{Name: "Z", Default: "0.0"},
	}},
	{Name: "アニメーション効果", Params: []ParamDef{
		{Name: "track0", Default: "0.0"},
		{Name: "track1", Default: "0.0"},
		{Name: "check0", Default: "0", Kind: Boolean},
		{Name: "type", Default: "0"},
		{Name: "name", Default: ""},
	}},
}

var byName = func() map[string]Effect {
	m := make(map[string]Effect, len(registry))
	for _, e := range registry {
		m[e.Name] = e
	}
	return m
}()

// Lookup returns the effect registered under name.
func Lookup(name string) (Effect, bool) {
	e, ok := byName[name]
	return e, ok
}

// All returns the registered effects in listing order.
func All() []Effect {
	out := make([]Effect, len(registry))
	copy(out, registry)
	return out
}
