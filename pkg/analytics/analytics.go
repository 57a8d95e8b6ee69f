package analytics

import (
	_ "embed"
	"strings"

	"go.uber.org/zap"

	"github.com/XuRonTing/ron-fun/pkg/config"
	"github.com/XuRonTing/ron-fun/pkg/environment"
	"github.com/XuRonTing/ron-fun/pkg/logger"
	"github.com/XuRonTing/ron-fun/pkg/metrics"
	"github.com/XuRonTing/ron-fun/pkg/ronerrors"
)

// Name identifies this configuration in logs, metrics and errors.
const Name = "analytics"

//go:embed analytics.yaml
var literal []byte

// PersistenceMode selects where Mixpanel keeps its state in the browser.
type PersistenceMode string

// Supported Mixpanel persistence modes.
const (
	PersistenceMemory       PersistenceMode = "memory"
	PersistenceLocalStorage PersistenceMode = "localStorage"
	PersistenceCookie       PersistenceMode = "cookie"
)

// Valid reports whether p is one of the supported modes.
func (p PersistenceMode) Valid() bool {
	switch p {
	case PersistenceMemory, PersistenceLocalStorage, PersistenceCookie:
		return true
	}
	return false
}

// Config is the analytics SDK configuration. Field names in JSON are the
// contract with the SDK initializer.
type Config struct {
	GA       GAConfig       `json:"ga"`
	Mixpanel MixpanelConfig `json:"mixpanel"`
	Events   EventMap       `json:"events"`
}

// GAConfig configures Google Analytics.
type GAConfig struct {
	TrackingID string `json:"trackingId"`
	// Debug is derived from the deployment environment: true everywhere
	// except production.
	Debug       bool `json:"debug"`
	AnonymizeIP bool `json:"anonymizeIp"`
}

// MixpanelConfig configures Mixpanel.
type MixpanelConfig struct {
	Token         string          `json:"token"`
	Persistence   PersistenceMode `json:"persistence"`
	TrackPageview bool            `json:"trackPageview"`
}

// document is the on-disk shape. Pointers distinguish a missing field from
// its zero value.
type document struct {
	GA       *gaDocument       `yaml:"ga"`
	Mixpanel *mixpanelDocument `yaml:"mixpanel"`
	Events   map[string]string `yaml:"events"`
}

type gaDocument struct {
	TrackingID  *string `yaml:"trackingId"`
	AnonymizeIP *bool   `yaml:"anonymizeIp"`
}

type mixpanelDocument struct {
	Token         *string `yaml:"token"`
	Persistence   *string `yaml:"persistence"`
	TrackPageview *bool   `yaml:"trackPageview"`
}

// Load returns the built-in analytics configuration for env. Every call
// decodes the embedded literal afresh and yields an equal value.
func Load(env environment.Environment) (Config, error) {
	cfg, err := parse(literal, env)
	return finish("embedded", env, cfg, err)
}

// LoadFile loads an analytics configuration from a YAML file with the same
// shape as the built-in literal. ${VAR} references are substituted.
func LoadFile(path string, env environment.Environment) (Config, error) {
	var doc document
	if err := config.Load(path, &doc); err != nil {
		return finish(path, env, Config{}, err)
	}
	cfg, err := build(doc, env)
	return finish(path, env, cfg, err)
}

// Parse decodes an analytics configuration document.
func Parse(data []byte, env environment.Environment) (Config, error) {
	cfg, err := parse(data, env)
	return finish("bytes", env, cfg, err)
}

func parse(data []byte, env environment.Environment) (Config, error) {
	var doc document
	if err := config.Decode(data, &doc); err != nil {
		return Config{}, err
	}
	return build(doc, env)
}

func build(doc document, env environment.Environment) (Config, error) {
	var missing []string
	if doc.GA == nil {
		missing = append(missing, "ga")
	} else {
		if doc.GA.TrackingID == nil {
			missing = append(missing, "ga.trackingId")
		}
		if doc.GA.AnonymizeIP == nil {
			missing = append(missing, "ga.anonymizeIp")
		}
	}
	if doc.Mixpanel == nil {
		missing = append(missing, "mixpanel")
	} else {
		if doc.Mixpanel.Token == nil {
			missing = append(missing, "mixpanel.token")
		}
		if doc.Mixpanel.Persistence == nil {
			missing = append(missing, "mixpanel.persistence")
		}
		if doc.Mixpanel.TrackPageview == nil {
			missing = append(missing, "mixpanel.trackPageview")
		}
	}
	if doc.Events == nil {
		missing = append(missing, "events")
	}
	if len(missing) > 0 {
		return Config{}, missingFields(missing...)
	}

	persistence := PersistenceMode(*doc.Mixpanel.Persistence)
	if !persistence.Valid() {
		return Config{}, ronerrors.New(ronerrors.KindConfigLoad, "invalid mixpanel persistence mode").
			WithDetail("persistence", string(persistence))
	}

	events, err := newEventMap(doc.Events)
	if err != nil {
		return Config{}, err
	}

	return Config{
		GA: GAConfig{
			TrackingID:  *doc.GA.TrackingID,
			Debug:       !env.IsProduction(),
			AnonymizeIP: *doc.GA.AnonymizeIP,
		},
		Mixpanel: MixpanelConfig{
			Token:         *doc.Mixpanel.Token,
			Persistence:   persistence,
			TrackPageview: *doc.Mixpanel.TrackPageview,
		},
		Events: events,
	}, nil
}

func missingFields(fields ...string) *ronerrors.Error {
	return ronerrors.New(ronerrors.KindConfigLoad, "missing required field").
		WithDetail("fields", strings.Join(fields, ","))
}

func finish(source string, env environment.Environment, cfg Config, err error) (Config, error) {
	metrics.RecordLoad(Name, err)
	log := logger.With(zap.String("config", Name), zap.String("source", source))

	if err != nil {
		err = ronerrors.Wrap(err, ronerrors.KindConfigLoad, "failed to load analytics configuration").
			WithDetail("config", Name).
			WithDetail("source", source)
		log.Warn("configuration rejected", zap.Error(err))
		return Config{}, err
	}

	metrics.SetEventMappings(Name, cfg.Events.Len())
	log.Debug("configuration loaded",
		zap.String("env", env.String()),
		zap.Bool("ga_debug", cfg.GA.Debug),
		zap.Int("events", cfg.Events.Len()))
	return cfg, nil
}
