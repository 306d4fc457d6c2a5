package logger

import (
	"fmt"
	"runtime/debug"
)

// RecoverPanic logs a panic recovered in a background goroutine. A
// fault in one trip's goroutine must never take the gateway down.
//
//	defer logger.RecoverPanic("matcher")
func RecoverPanic(component string) {
	if r := recover(); r != nil {
		Error("Panic recovered in background goroutine",
			String("component", component),
			Any("panic_value", r),
			String("panic_type", fmt.Sprintf("%T", r)),
			String("stack_trace", string(debug.Stack())))
	}
}
