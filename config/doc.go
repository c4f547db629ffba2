// Package config loads engine parameters from YAML tuning files.
//
// A tuning document holds up to three sections, one per engine:
//
//	anneal:
//	  start_temp: 100
//	  schedule_constant: 0.9
//	  schedule: exponential   # or linear
//	  max_steps: 200
//	  min_energy: 0.5         # optional
//	hillclimb:
//	  temp: 0.01
//	  max_steps: 1000
//	  max_objective: 50       # optional
//	tabu:
//	  tabu_size: 50
//	  n_neighbors: 10
//	  max_steps: 500
//	  max_score: 5            # optional
//	  policy: filter-then-score   # or score-then-backtrack
//	  parallel: true
//	  workers: 4
//	  log_path: progress.log  # optional
//
// Every section also accepts seed and report_every. Unknown schedule or
// policy names surface the matching engine sentinel (anneal.ErrUnknownSchedule,
// tabu.ErrUnknownPolicy) at load time - fail fast, before any search step.
package config
