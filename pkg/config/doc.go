// Package config loads YAML configuration documents for ron-fun.
//
// Both providers, analytics and stylepipeline, keep their built-in literal as
// an embedded YAML document and accept an operator-supplied file with the same
// shape. This package is the shared plumbing underneath them:
//
//   - Load reads a file, substitutes ${VAR_NAME} references from the
//     environment and decodes it
//   - Decode rejects unknown keys and empty documents
//   - Save writes a value back out as YAML
//
// Every failure is a ronerrors.KindConfigLoad error and is meant to be fatal.
//
// # Environment Variable Substitution
//
//	# analytics.yaml
//	ga:
//	  trackingId: ${GA_TRACKING_ID}
//	  anonymizeIp: true
//	mixpanel:
//	  token: ${MIXPANEL_TOKEN}
//
// # Usage
//
//	var doc myDocument
//	if err := config.Load("analytics.yaml", &doc); err != nil {
//		log.Fatal(err)
//	}
package config
