// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

/*
Package main is the entry point for the recommend command.

recommend loads the plant catalog, the suburb climate dataset, and a
preferences document, runs one recommendation request through the engine and
writes the result as indented JSON.

# Usage

	recommend --suburb Fitzroy --n 5 \
	    --climate data/climate.json \
	    --prefs prefs.json \
	    --out recommendations.json

Optional flags:

	--climate-zone   override the suburb's climate zone (temperate, subtropical, ...)
	--catalog        comma-separated catalog CSV files (default: catalog.paths or catalog.dir)
	--month          current month 1-12 (default: the current month)
	--config         YAML config file (default: VERDANT_CONFIG or ./verdant.yaml)
	--metrics-textfile  write Prometheus metrics to this file on exit
	--log-level      trace, debug, info, warn or error

# Initialization Order

 1. Configuration: Koanf v2 with defaults, YAML file and VERDANT_* environment variables
 2. Logging: zerolog to stderr, level overridable by --log-level
 3. Catalog: CSV files parsed concurrently and merged in path order
 4. Climate: JSON dataset validated up front
 5. Preferences: JSON document, unknown keys reported as notes
 6. Engine: scoring weights and diversity cap from configuration

# Exit Codes

	0  result written
	1  bad flags, invalid configuration, load failure or write failure

Every failure is logged as a single error line before exiting.
*/
package main
