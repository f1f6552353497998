package scaffold

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/expr-lang/expr"
)

// Env is the evaluation environment for patch guard expressions, e.g.
// `target_os == "linux"` or `environ["CI"] == ""`.
type Env struct {
	TargetOS   string            `expr:"target_os"`
	TargetArch string            `expr:"target_arch"`
	Environ    map[string]string `expr:"environ"`
}

func NewEnv() Env {
	environ := make(map[string]string)
	for _, e := range os.Environ() {
		if i := strings.Index(e, "="); i >= 0 {
			environ[e[:i]] = e[i+1:]
		}
	}

	return Env{
		TargetOS:   runtime.GOOS,
		TargetArch: runtime.GOARCH,
		Environ:    environ,
	}
}

// Allows evaluates a guard expression. An empty guard always allows; a
// guard that does not compile or does not yield a boolean is a config
// error, not a skip.
func (env Env) Allows(expression string) (bool, error) {
	if expression == "" {
		return true, nil
	}

	program, err := expr.Compile(expression, expr.Env(env))
	if err != nil {
		return false, fmt.Errorf("failed to compile guard %q: %w", expression, err)
	}
	result, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("failed to run guard %q: %w", expression, err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("guard %q must evaluate to a boolean, got %T", expression, result)
	}
	return matched, nil
}
