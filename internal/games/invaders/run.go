package invaders

// RunOutcome describes how a run ended.
type RunOutcome string

const (
	OutcomeWon       RunOutcome = "won"
	OutcomeAbandoned RunOutcome = "abandoned"
)

// RunResult is the statistics record of one finished run.
type RunResult struct {
	Outcome          RunOutcome
	Ticks            uint64
	ShotsFired       int
	EnemiesDestroyed int
	EnemiesTotal     int
}

// RunRecorder persists finished runs. Errors are logged and otherwise
// ignored; a failing recorder never stops the game.
type RunRecorder interface {
	RecordRun(r RunResult) error
}

// record reports the current run once.
func (g *Game) record(outcome RunOutcome) {
	if g.recorded {
		return
	}
	g.recorded = true
	if g.recorder == nil {
		return
	}

	res := RunResult{
		Outcome:          outcome,
		Ticks:            g.run.ticks,
		ShotsFired:       g.run.shots,
		EnemiesDestroyed: g.run.kills,
		EnemiesTotal:     g.run.spawns,
	}
	if err := g.recorder.RecordRun(res); err != nil {
		g.logger.Warn("failed to record run", "outcome", outcome, "err", err)
	}
}

// recordAbandoned reports an unfinished run that made progress.
func (g *Game) recordAbandoned() {
	if g.run.ticks == 0 {
		return
	}
	g.record(OutcomeAbandoned)
}
