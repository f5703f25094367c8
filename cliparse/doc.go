/*
Package cliparse handles command-line flags and environment configuration for
the ftracker commands.

	if err := cliparse.LoadEnv(); err != nil {
		// malformed .env
	}
	cfg, err := cliparse.ParseFlags("ftracker", os.Stderr, os.Args[1:])

# Environment Variables

Every flag falls back to an environment variable when not given:

	FTRACKER_INPUT        → --input
	FTRACKER_FIT          → --fit
	FTRACKER_WEIGHT       → --weight
	FTRACKER_HEIGHT       → --height
	FTRACKER_POOL_LENGTH  → --pool-length
	FTRACKER_EXPORT       → --export
	FTRACKER_FORMAT       → --format
	FTRACKER_METRICS_FILE → --metrics-file
	FTRACKER_KEEP_GOING   → --keep-going
	FTRACKER_LOG_LEVEL    → --log-level
	FTRACKER_JSON         → --json

CLI flags take precedence over environment variables, and variables already in
the environment take precedence over a .env file.
*/
package cliparse
