package effects

// Method is an interpolation method offered for a motion parameter.
type Method struct {
	Name  string
	Token string
}

// Motion method names. The two time control methods are the ones the time
// control companion object writes into its 位置 field.
const (
	MethodNone                = "移動なし"
	MethodLinear              = "直線移動"
	MethodAccelerated         = "加減速移動"
	MethodCurve               = "曲線移動"
	MethodInstant             = "瞬間移動"
	MethodEasing              = "イージング"
	MethodLinearTimeControl   = "直線移動(時間制御)"
	MethodInterpolatedControl = "補間移動(時間制御)"
)

var methods = []Method{
	{Name: MethodNone, Token: ""},
	{Name: MethodLinear, Token: "1"},
	{Name: MethodAccelerated, Token: "103"},
	{Name: MethodCurve, Token: "2"},
	{Name: MethodInstant, Token: "3"},
	{Name: MethodEasing, Token: "15@イージング"},
	{Name: MethodLinearTimeControl, Token: "直線移動"},
	{Name: MethodInterpolatedControl, Token: "補間移動(時間制御)"},
}

// MethodToken maps a method name to its output token. Unknown and empty names
// fall back to MethodNone.
func MethodToken(name string) string {
	for _, m := range methods {
		if m.Name == name {
			return m.Token
		}
	}
	return ""
}

func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}
