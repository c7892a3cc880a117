package output

import (
	"io"
	"os"

	"github.com/gorewood/autotag/pkg/dispatch"
)

// colorModes maps --color values to a decision; unknown values act as "auto".
var colorModes = func() *dispatch.Dispatcher[string, bool, bool] {
	modes := dispatch.New(func(_ string, isTTY bool) (bool, error) {
		return isTTY, nil
	})
	modes.Register("never")(func(bool) (bool, error) { return false, nil })
	modes.Register("always")(func(bool) (bool, error) { return true, nil })
	return modes
}()

// ResolveColorMode determines whether to style output from the --color flag
// ("never", "always" or "auto") and the detected TTY state.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	enabled, _ := colorModes.Dispatch(colorMode, isTTY)
	return enabled
}

// IsTTY reports whether writer is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
