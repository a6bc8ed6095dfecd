package aurornis

import (
	"maps"
	"slices"
)

// Environment variable names set by BuildEnvironment.
const (
	LanguageVar = "LANG"
	NoColorVar  = "NO_COLOR"
)

// LookupFunc reads a variable from the host environment, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// MapLookup returns a LookupFunc backed by m.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]

		return v, ok
	}
}

// BuildEnvironment returns the environment the child sees for cmd.
//
// Only the target's passthrough variables present on the host, LANG and, when
// colors are removed, NO_COLOR are set; cmd.Env is applied last and wins over
// all of them. The host environment is only read.
func BuildEnvironment(host LookupFunc, target TargetOS, cmd *Command) map[string]string {
	env := make(map[string]string, len(cmd.Env)+3)

	if host != nil {
		for _, key := range target.PassthroughVars() {
			if v, ok := host(key); ok {
				env[key] = v
			}
		}
	}

	env[LanguageVar] = cmd.EffectiveLanguage()

	if cmd.RemoveColors {
		env[NoColorVar] = "1"
	}

	maps.Copy(env, cmd.Env)

	return env
}

// EnvList renders env as sorted "KEY=VALUE" pairs, as expected by os/exec.
func EnvList(env map[string]string) []string {
	list := make([]string, 0, len(env))

	for _, key := range slices.Sorted(maps.Keys(env)) {
		list = append(list, key+"="+env[key])
	}

	return list
}
