// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package logging provides centralized zerolog-based structured logging for Verdant.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("records", n).Msg("plant catalog loaded")
//	logging.Ctx(ctx).Debug().Msg("recommendation generated")
//
// Components receive a zerolog.Logger at construction and derive their own
// child logger with a component field:
//
//	logger := logging.WithComponent("recommend")
//	engine, err := recommend.NewEngine(cfg, sources, logger)
//
// # Configuration
//
// Level, format and caller come from the `logging` section of the application
// config (see internal/config) or from VERDANT_LOG_LEVEL, VERDANT_LOG_FORMAT and
// VERDANT_LOG_CALLER.
//
//	Level  - trace, debug, info, warn, error, fatal, panic, disabled (default: info)
//	Format - json or console (default: json)
//	Caller - include caller file:line (default: false)
//
// Unknown level strings fall back to info.
//
// # Field Names
//
//	time      - RFC3339 timestamp
//	level     - log level
//	message   - log message
//	error     - error string
//	caller    - file:line, when enabled
//	component - emitting component
//	request_id - recommendation request identifier
//
// # Testing
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
package logging
