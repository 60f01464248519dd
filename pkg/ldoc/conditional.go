package ldoc

import "regexp"

// platformVar is the only supported conditional axis. Blocks gated on any
// other variable are syntactically recognized but always evaluate false.
const platformVar = "PLATFORM"

// condPattern matches an @if VAR=VALUE ... @endif block. The body runs to
// the first @endif; nested conditionals are not supported.
var condPattern = regexp.MustCompile(`(?s)@if (\w+)=(.+?)\n(.*?)@endif`)

// evalConditionals resolves every conditional block: a true block is
// replaced with just its body, a false one is removed entirely.
func evalConditionals(text, platform string) string {
	return condPattern.ReplaceAllStringFunc(text, func(block string) string {
		m := condPattern.FindStringSubmatch(block)
		name, value, body := m[1], m[2], m[3]
		if name == platformVar && platform != "" && platform == value {
			return body
		}
		return ""
	})
}
