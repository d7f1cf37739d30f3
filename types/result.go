package types

import "fmt"

// Result is the stable numeric status code every VRI entry point reports,
// carried unchanged from spec.md §6/§7: negative values are errors,
// non-negative values are successes with extra shading (Incomplete,
// Suboptimal) beyond plain Success.
type Result int8

const (
	ResultSuccess         Result = 0
	ResultIncomplete      Result = 1
	ResultSuboptimal      Result = 2
	ResultTimeout         Result = 3
	ResultInvalidAPIUsage Result = -1
	ResultOutOfMemory     Result = -2
	ResultUnsupported     Result = -3
	ResultDeviceRemoved   Result = -4
	ResultSystemFailure   Result = -5
)

// IsError reports whether r represents a failed operation (r < 0).
func IsError(r Result) bool { return r < 0 }

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "Success"
	case ResultIncomplete:
		return "Incomplete"
	case ResultSuboptimal:
		return "Suboptimal"
	case ResultTimeout:
		return "Timeout"
	case ResultInvalidAPIUsage:
		return "InvalidApiUsage"
	case ResultOutOfMemory:
		return "OutOfMemory"
	case ResultUnsupported:
		return "Unsupported"
	case ResultDeviceRemoved:
		return "DeviceRemoved"
	case ResultSystemFailure:
		return "SystemFailure"
	default:
		return fmt.Sprintf("Result(%d)", int8(r))
	}
}
