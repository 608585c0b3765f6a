package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"pfeifer.dev/refmatch/cereal"
	"pfeifer.dev/refmatch/params"
	"pfeifer.dev/refmatch/refline"
	"pfeifer.dev/refmatch/utils"
)

var (
	Settings = RefmatchSettings{}
)

type RefmatchSettings struct {
	LogLevel      string `json:"log_level"`
	MatchStrategy string `json:"match_strategy"`
	// SearchRadius bounds the nearest point search around the previous
	// match. Negative values always scan the whole path.
	SearchRadius int `json:"search_radius"`
	LoopDelayMs  int `json:"loop_delay_ms"`
}

func (s *RefmatchSettings) Default() {
	s.LogLevel = "error"
	s.MatchStrategy = string(refline.STRATEGY_WINDOW)
	s.SearchRadius = DEFAULT_SEARCH_RADIUS
	s.LoopDelayMs = int(LOOP_DELAY / time.Millisecond)
}

func (s *RefmatchSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.REFMATCH_SETTINGS)
	if err != nil {
		utils.Logde(err)
		return false
	}

	err = s.Unmarshal(data)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.setLogLevel()

	return true
}

func (s *RefmatchSettings) LoadWithRetries(tries int) {
	for i := range tries {
		if s.Load() {
			return
		}
		if i < tries-1 {
			time.Sleep(1 * time.Second)
		}
	}
	s.Save()
}

func (s *RefmatchSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.REFMATCH_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *RefmatchSettings) Unmarshal(data []byte) error {
	err := json.Unmarshal(data, s)
	if err != nil {
		return errors.Wrap(err, "could not unmarshal settings")
	}
	if _, err := refline.ParseStrategy(s.MatchStrategy); err != nil {
		slog.Warn("falling back to default match strategy", "error", err)
		s.MatchStrategy = string(refline.STRATEGY_WINDOW)
	}
	return nil
}

func (s *RefmatchSettings) Strategy() refline.Strategy {
	strategy, _ := refline.ParseStrategy(s.MatchStrategy)
	return strategy
}

func (s *RefmatchSettings) LoopDelay() time.Duration {
	if s.LoopDelayMs <= 0 {
		return LOOP_DELAY
	}
	return time.Duration(s.LoopDelayMs) * time.Millisecond
}

func (s *RefmatchSettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}

// Handle applies a settings command. It reports false for commands that
// are not about settings.
func (s *RefmatchSettings) Handle(input cereal.Command) (handled bool) {
	switch input.Type {
	case cereal.COMMAND_RELOAD_SETTINGS:
		s.Load()
	case cereal.COMMAND_SAVE_SETTINGS:
		snapshot := *s
		go snapshot.Save()
	case cereal.COMMAND_LOAD_DEFAULT_SETTINGS:
		s.Default()
	case cereal.COMMAND_SET_STRATEGY:
		strategy, err := refline.ParseStrategy(input.Str)
		if err != nil {
			utils.Logwe(err)
			return true
		}
		s.MatchStrategy = string(strategy)
	case cereal.COMMAND_SET_SEARCH_RADIUS:
		s.SearchRadius = input.Int
	case cereal.COMMAND_SET_LOG_LEVEL:
		s.LogLevel = input.Str
		s.setLogLevel()
	default:
		return false
	}
	return true
}
