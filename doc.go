// Package ronfun holds the typed configuration the ron-fun frontend build is
// driven by.
//
// Two independent providers live under pkg:
//
//	pkg/analytics      - Google Analytics and Mixpanel settings plus the
//	                     closed symbolic-to-wire event name mapping
//	pkg/stylepipeline  - postcss-px-to-viewport options
//
// Each embeds its literal as YAML, decodes it once at startup and hands the
// caller an immutable value. A malformed or incomplete literal is a
// ronerrors.KindConfigLoad error and the process is expected to stop.
//
// Supporting packages:
//
//	pkg/config       - strict YAML loading with ${VAR} substitution
//	pkg/environment  - deployment environment from RONFUN_ENV / NODE_ENV
//	pkg/ronerrors    - structured errors
//	pkg/logger       - zap logger
//	pkg/metrics      - Prometheus load counters
//
// The ronfun command validates both configurations and exports them
// for the JS toolchain:
//
//	ronfun validate
//	ronfun analytics show --env production
//	ronfun style postcss --out web/postcss.config.js
package ronfun
