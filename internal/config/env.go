package config

import (
	"os"
	"strconv"
)

// Environment variables recognized by FromEnv. Values that fail to
// parse are ignored rather than failing startup; Validate still
// catches out-of-range results.
const (
	envWidth         = "KEYCAST_WIDTH"
	envHeight        = "KEYCAST_HEIGHT"
	envCompressAfter = "KEYCAST_COMPRESS_AFTER"
	envAnchor        = "KEYCAST_ANCHOR"
	envToggle        = "KEYCAST_TOGGLE"
	envForeground    = "KEYCAST_FOREGROUND"
	envBackground    = "KEYCAST_BACKGROUND"
	envLogLevel      = "KEYCAST_LOG_LEVEL"
	envLogFile       = "KEYCAST_LOG_FILE"
	envScript        = "KEYCAST_SCRIPT"
)

// FromEnv reads overrides from KEYCAST_* environment variables.
func FromEnv() Override {
	var o Override

	o.Width = intEnv(envWidth)
	o.Height = intEnv(envHeight)
	o.CompressAfter = intEnv(envCompressAfter)
	o.Anchor = strEnv(envAnchor)
	o.Toggle = strEnv(envToggle)
	o.Style.Foreground = strEnv(envForeground)
	o.Style.Background = strEnv(envBackground)
	o.Log.Level = strEnv(envLogLevel)
	o.Log.File = strEnv(envLogFile)
	o.Script = strEnv(envScript)

	return o
}

func strEnv(name string) *string {
	if val, ok := os.LookupEnv(name); ok {
		return &val
	}
	return nil
}

func intEnv(name string) *int {
	val, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &n
}
