package network

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Report summarises a training run.
type Report struct {
	// RunID identifies the run in logs.
	RunID string

	Trials    int
	Successes int
	Failures  int

	// Stops counts walks by terminal state.
	Stops map[StopReason]int

	// Final is the network after the last reinforcement.
	Final Snapshot

	// Stats are the per-node distribution summaries after training.
	Stats []NodeStats
}

// SuccessRate returns Successes/Trials, or 0 for an empty run.
func (r *Report) SuccessRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Successes) / float64(r.Trials)
}

// Train runs Options.Trials trials in sequence. Each trial's path is
// shown to the Observer and then immediately reinforced, so trial k+1
// samples from the weights left by trial k. ctx is checked once per trial.
func (n *Network) Train(ctx context.Context) (*Report, error) {
	if err := n.validate(); err != nil {
		return nil, err
	}

	rep := &Report{
		RunID: uuid.NewString(),
		Stops: make(map[StopReason]int, 4),
	}
	log := n.log.With(slog.String("run", rep.RunID))
	log.Info("training started",
		slog.Int("trials", n.opts.Trials),
		slog.Int("path_length", n.opts.PathLength),
		slog.Float64("reinforcement", n.opts.Reinforcement),
		slog.Int("start", n.opts.Start),
		slog.Int("goal", n.opts.Goal),
		slog.Int("nodes", len(n.nodes)))

	for i := 0; i < n.opts.Trials; i++ {
		select {
		case <-ctx.Done():
			return rep, ctx.Err()
		default:
		}

		if err := n.step(i, rep); err != nil {
			log.Error("training aborted", slog.Int("trial", i), slog.Any("err", err))
			return rep, err
		}
	}

	rep.Final = n.Snapshot(nil)
	rep.Stats = n.Stats()
	log.Info("training finished",
		slog.Int("successes", rep.Successes),
		slog.Int("failures", rep.Failures),
		slog.Float64("success_rate", rep.SuccessRate()))
	return rep, nil
}

// step runs trial i: walk, observe, reinforce, count.
func (n *Network) step(i int, rep *Report) error {
	trial, err := n.RunTrial()
	if err != nil {
		return fmt.Errorf("network: trial %d: %w", i, err)
	}
	reached := n.Reached(trial.Path)

	if n.opts.Observer != nil {
		ev := TrialEvent{Index: i, Trial: trial, Reached: reached, State: n.Snapshot(trial.Path)}
		if err := n.opts.Observer.ObserveTrial(ev); err != nil {
			return fmt.Errorf("network: trial %d: observer: %w", i, err)
		}
	}

	if _, err := n.ApplyReinforcement(trial.Path); err != nil {
		return fmt.Errorf("network: trial %d: %w", i, err)
	}

	rep.Trials++
	rep.Stops[trial.Stop]++
	if reached {
		rep.Successes++
	} else {
		rep.Failures++
	}
	if n.opts.Metrics != nil {
		n.opts.Metrics.observeTrial(trial, reached)
	}
	return nil
}
