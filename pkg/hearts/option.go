package hearts

import "time"

type options struct {
	turnDelay time.Duration // 出牌后到推进回合前的停顿
	botDelay  time.Duration // 机器人出牌前的思考停顿
	scoreStep time.Duration // 计分动画逐张推进的间隔
	rounds    int           // 计分回合数
	sleep     func(time.Duration)
}

// apply apply options
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// setDefault default configuration
func (o *options) setDefault() {
	if o.turnDelay <= 0 {
		o.turnDelay = DefaultTurnDelay
	}
	if o.botDelay <= 0 {
		o.botDelay = DefaultBotDelay
	}
	if o.scoreStep <= 0 {
		o.scoreStep = DefaultScoreStep
	}
	if o.rounds <= 0 {
		o.rounds = NumRounds
	}
	if o.sleep == nil {
		o.sleep = time.Sleep
	}
}

type Option func(*options)

// WithTurnDelay sets the pause after each play before the turn advances
func WithTurnDelay(d time.Duration) Option {
	return func(o *options) {
		o.turnDelay = d
	}
}

// WithBotDelay sets the pause before a bot plays
func WithBotDelay(d time.Duration) Option {
	return func(o *options) {
		o.botDelay = d
	}
}

// WithScoreStep sets the interval of the trick-scoring animation
func WithScoreStep(d time.Duration) Option {
	return func(o *options) {
		o.scoreStep = d
	}
}

// WithRounds overrides the number of scored rounds
func WithRounds(n int) Option {
	return func(o *options) {
		o.rounds = n
	}
}

// WithSleep replaces the pacing clock, so tests can simulate time
func WithSleep(sleep func(time.Duration)) Option {
	return func(o *options) {
		o.sleep = sleep
	}
}

// DefaultTurnDelay 线上默认的出牌停顿
const DefaultTurnDelay = 500 * time.Millisecond

// DefaultBotDelay 线上默认的机器人思考停顿
const DefaultBotDelay = 500 * time.Millisecond

// DefaultScoreStep 线上默认的计分动画间隔
const DefaultScoreStep = 250 * time.Millisecond
