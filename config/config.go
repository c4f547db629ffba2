// Package config - YAML decoding and translation into engine Options.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/greenlsi/solidgo/anneal"
	"github.com/greenlsi/solidgo/hillclimb"
	"github.com/greenlsi/solidgo/tabu"
)

// Anneal mirrors the simulated annealing parameters of a tuning file.
type Anneal struct {
	StartTemp        float64  `yaml:"start_temp"`
	ScheduleConstant float64  `yaml:"schedule_constant"`
	Schedule         string   `yaml:"schedule"`
	MaxSteps         int      `yaml:"max_steps"`
	MinEnergy        *float64 `yaml:"min_energy"`
	Seed             int64    `yaml:"seed"`
	ReportEvery      int      `yaml:"report_every"`
}

// HillClimb mirrors the stochastic hill climb parameters of a tuning file.
type HillClimb struct {
	Temp         float64  `yaml:"temp"`
	MaxSteps     int      `yaml:"max_steps"`
	MaxObjective *float64 `yaml:"max_objective"`
	Seed         int64    `yaml:"seed"`
	ReportEvery  int      `yaml:"report_every"`
}

// Tabu mirrors the tabu search parameters of a tuning file. MaxScore is
// float-typed here; drivers using other ordered score types set the
// threshold directly via Engine.WithMaxScore.
type Tabu struct {
	TabuSize    int      `yaml:"tabu_size"`
	NNeighbors  int      `yaml:"n_neighbors"`
	MaxSteps    int      `yaml:"max_steps"`
	MaxScore    *float64 `yaml:"max_score"`
	Policy      string   `yaml:"policy"`
	Parallel    bool     `yaml:"parallel"`
	Workers     int      `yaml:"workers"`
	Seed        int64    `yaml:"seed"`
	ReportEvery int      `yaml:"report_every"`
	LogPath     string   `yaml:"log_path"`
}

// Tuning is a full tuning document; absent sections stay nil.
type Tuning struct {
	Anneal    *Anneal    `yaml:"anneal"`
	HillClimb *HillClimb `yaml:"hillclimb"`
	Tabu      *Tabu      `yaml:"tabu"`
}

// Load reads and parses a tuning file.
func Load(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: read tuning file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: parse tuning file %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a tuning document and validates the symbolic names in every
// present section, so a bad file never reaches an engine constructor.
func Parse(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, err
	}
	if t.Anneal != nil {
		if _, err := scheduleByName(t.Anneal.Schedule); err != nil {
			return Tuning{}, err
		}
	}
	if t.Tabu != nil {
		if _, err := policyByName(t.Tabu.Policy); err != nil {
			return Tuning{}, err
		}
	}
	return t, nil
}

// Options translates the section into anneal.Options. An absent min_energy
// maps to NaN (threshold disabled).
func (a *Anneal) Options() (anneal.Options, error) {
	sched, err := scheduleByName(a.Schedule)
	if err != nil {
		return anneal.Options{}, err
	}
	minEnergy := math.NaN()
	if a.MinEnergy != nil {
		minEnergy = *a.MinEnergy
	}
	return anneal.Options{
		StartTemp:        a.StartTemp,
		ScheduleConstant: a.ScheduleConstant,
		Schedule:         sched,
		MaxSteps:         a.MaxSteps,
		MinEnergy:        minEnergy,
		Seed:             a.Seed,
		ReportEvery:      a.ReportEvery,
	}, nil
}

// Options translates the section into hillclimb.Options.
func (h *HillClimb) Options() hillclimb.Options {
	maxObjective := math.NaN()
	if h.MaxObjective != nil {
		maxObjective = *h.MaxObjective
	}
	return hillclimb.Options{
		Temp:         h.Temp,
		MaxSteps:     h.MaxSteps,
		MaxObjective: maxObjective,
		Seed:         h.Seed,
		ReportEvery:  h.ReportEvery,
	}
}

// Options translates the section into tabu.Options. The float MaxScore, if
// present, is the caller's to apply via Engine.WithMaxScore.
func (t *Tabu) Options() (tabu.Options, error) {
	policy, err := policyByName(t.Policy)
	if err != nil {
		return tabu.Options{}, err
	}
	return tabu.Options{
		TabuSize:    t.TabuSize,
		NNeighbors:  t.NNeighbors,
		MaxSteps:    t.MaxSteps,
		Policy:      policy,
		Parallel:    t.Parallel,
		Workers:     t.Workers,
		Seed:        t.Seed,
		ReportEvery: t.ReportEvery,
		LogPath:     t.LogPath,
	}, nil
}

// scheduleByName maps a tuning-file schedule name onto the anneal enum.
// "" defaults to exponential, matching the upstream constructor default.
func scheduleByName(name string) (anneal.Schedule, error) {
	switch name {
	case "", "exponential":
		return anneal.Exponential, nil
	case "linear":
		return anneal.Linear, nil
	default:
		return 0, fmt.Errorf("%w: %q", anneal.ErrUnknownSchedule, name)
	}
}

// policyByName maps a tuning-file policy name onto the tabu enum.
// "" defaults to filter-then-score.
func policyByName(name string) (tabu.Policy, error) {
	switch name {
	case "", "filter-then-score":
		return tabu.FilterThenScore, nil
	case "score-then-backtrack":
		return tabu.ScoreThenBacktrack, nil
	default:
		return 0, fmt.Errorf("%w: %q", tabu.ErrUnknownPolicy, name)
	}
}
