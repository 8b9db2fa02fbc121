package log

import "fmt"

// msgAndFields splits variadic logger args into a message and key/value pairs.
//
//	l.Info(ctx, "LLM call done", "status", 200)   -> "LLM call done", [status 200]
//	l.Error(ctx, "send failed: ", err)            -> "send failed: <err>", []
//
// When the tail is not a well-formed key/value list it is folded into the
// message the way fmt.Sprint would.
func msgAndFields(arg []any) (string, []any) {
	if len(arg) == 0 {
		return "", nil
	}
	msg, ok := arg[0].(string)
	if !ok {
		return fmt.Sprint(arg...), nil
	}
	rest := arg[1:]
	if len(rest)%2 != 0 {
		return fmt.Sprint(arg...), nil
	}
	for i := 0; i < len(rest); i += 2 {
		if _, ok := rest[i].(string); !ok {
			return fmt.Sprint(arg...), nil
		}
	}
	return msg, rest
}
