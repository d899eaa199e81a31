package hcl_adapter

import (
	"os"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// MakeEnvFunc returns the env() function reading variables through getenv;
// unset variables evaluate to "". A nil getenv means os.Getenv.
func MakeEnvFunc(getenv func(string) string) function.Function {
	if getenv == nil {
		getenv = os.Getenv
	}
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.StringVal(getenv(args[0].AsString())), nil
		},
	})
}

// newEvalContext builds the context project files are evaluated in. It
// exposes `project.dir`, `os`, and a handful of string/list helpers.
func newEvalContext(dir string, getenv func(string) string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"project": cty.ObjectVal(map[string]cty.Value{
				"dir": cty.StringVal(dir),
			}),
			"os": cty.StringVal(runtime.GOOS),
		},
		Functions: map[string]function.Function{
			"env":    MakeEnvFunc(getenv),
			"concat": stdlib.ConcatFunc,
			"join":   stdlib.JoinFunc,
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
			"format": stdlib.FormatFunc,
		},
	}
}
