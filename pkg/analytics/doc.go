// Package analytics provides the analytics SDK configuration for ron-fun:
// Google Analytics and Mixpanel credentials, their feature flags, and the
// closed mapping from symbolic event names to the wire names sent to the SDKs.
//
// The configuration is a literal embedded in the binary. Load decodes it for
// a deployment environment and returns an immutable value that callers pass
// explicitly to whatever initializes the SDKs:
//
//	cfg, err := analytics.Load(environment.Resolve())
//	if err != nil {
//	    log.Fatal(err) // always a ronerrors.KindConfigLoad error
//	}
//	name := cfg.Events.MustWire(analytics.ButtonClick) // "button_click"
//
// GA debug mode is never read from the literal. It is on in every environment
// except "production".
//
// Encoding a Config with encoding/json or go-json yields the object the JS
// initializer expects:
//
//	{"ga":{"trackingId":"UA-XXXXX-Y","debug":true,"anonymizeIp":true},
//	 "mixpanel":{"token":"mp_xxxxxxxxxxxx","persistence":"localStorage","trackPageview":true},
//	 "events":{"BUTTON_CLICK":"button_click",...}}
package analytics
