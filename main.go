package main

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"pfeifer.dev/refmatch/cereal"
	"pfeifer.dev/refmatch/cli"
	"pfeifer.dev/refmatch/maps"
	"pfeifer.dev/refmatch/params"
	ms "pfeifer.dev/refmatch/settings"
	"pfeifer.dev/refmatch/utils"
)

func main() {
	cli.Handle()

	params.EnsureParamDirectories()
	ms.Settings.LoadWithRetries(ms.LOAD_RETRIES)
	state := NewState(&ms.Settings)

	path, err := maps.ReadStoredPath()
	switch {
	case errors.Is(err, maps.ErrNoStoredPath):
		utils.Logie(err, "waitingFor", cereal.COMMAND_LOAD_PATH)
	case err != nil:
		utils.Logwe(err)
	default:
		state.SetPath(path)
	}

	pub := cereal.NewPublisher[cereal.MatchResponse](cereal.REFMATCH_OUT)
	sub := cereal.NewSubscriber[cereal.MatchRequest](cereal.REFMATCH_IN, false)
	defer sub.Close()
	cmdSub := cereal.NewSubscriber[cereal.Command](cereal.REFMATCH_CMD, false)
	defer cmdSub.Close()

	lastReport := uint64(0)
	for {
		time.Sleep(state.Settings.LoopDelay())

		for cmd, ok := cmdSub.Read(); ok; cmd, ok = cmdSub.Read() {
			state.HandleCommand(cmd)
		}

		for req, ok := sub.Read(); ok; req, ok = sub.Read() {
			res := state.HandleRequest(req)
			utils.Loge(pub.Send(res))
			state.Updates.Update()
		}
		if state.Updates.Count-lastReport >= 1000 {
			lastReport = state.Updates.Count
			slog.Info("request rate", "hz", state.Updates.Rate(), "requests", state.Updates.Count)
		}
	}
}
