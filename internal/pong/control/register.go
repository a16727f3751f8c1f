package control

import "pong/internal/pong"

func init() {
	pong.RegisterController(pong.AIHuman, func(env pong.Env) pong.Controller {
		return NewHuman(env.Input)
	})
	pong.RegisterController(pong.AIRandom, func(env pong.Env) pong.Controller {
		return NewRandom(env.RNG)
	})
	pong.RegisterController(pong.AIPurePursuit, func(pong.Env) pong.Controller {
		return PurePursuit{}
	})
	pong.RegisterController(pong.AILeadPursuit, func(pong.Env) pong.Controller {
		return NewLeadPursuit()
	})
}
