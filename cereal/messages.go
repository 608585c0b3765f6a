package cereal

import (
	"time"

	"pfeifer.dev/refmatch/refline"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024

	REFMATCH_IN  = "refmatchIn"
	REFMATCH_OUT = "refmatchOut"
	REFMATCH_CMD = "refmatchCmd"
)

var startTime = time.Now()

// GetTime is a monotonic timestamp in nanoseconds.
func GetTime() uint64 {
	return uint64(time.Since(startTime).Nanoseconds())
}

type RequestKind string

const (
	REQUEST_XY RequestKind = "xy"
	REQUEST_S  RequestKind = "s"
)

type MatchRequest struct {
	Id   uint64      `json:"id"`
	Kind RequestKind `json:"kind"`
	X    float64     `json:"x"`
	Y    float64     `json:"y"`
	S    float64     `json:"s"`
}

type MatchResponse struct {
	Id           uint64             `json:"id"`
	Kind         RequestKind        `json:"kind"`
	Valid        bool               `json:"valid"`
	Error        string             `json:"error,omitempty"`
	Point        refline.PathPoint  `json:"point"`
	Coordinate   refline.Coordinate `json:"coordinate"`
	NearestIndex int                `json:"nearest_index"`
	InBounds     bool               `json:"in_bounds"`
	PathLength   float64            `json:"path_length"`
	LogMonoTime  uint64             `json:"log_mono_time"`
}

type CommandType string

const (
	COMMAND_RELOAD_SETTINGS       CommandType = "reloadSettings"
	COMMAND_SAVE_SETTINGS         CommandType = "saveSettings"
	COMMAND_LOAD_DEFAULT_SETTINGS CommandType = "loadDefaultSettings"
	COMMAND_SET_STRATEGY          CommandType = "setStrategy"
	COMMAND_SET_SEARCH_RADIUS     CommandType = "setSearchRadius"
	COMMAND_SET_LOG_LEVEL         CommandType = "setLogLevel"
	COMMAND_LOAD_PATH             CommandType = "loadPath"
	COMMAND_UNLOAD_PATH           CommandType = "unloadPath"
)

type Command struct {
	Type  CommandType `json:"type"`
	Int   int         `json:"int,omitempty"`
	Str   string      `json:"str,omitempty"`
}
