package stylepipeline

import (
	"bytes"
	_ "embed"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/XuRonTing/ron-fun/pkg/config"
	"github.com/XuRonTing/ron-fun/pkg/logger"
	"github.com/XuRonTing/ron-fun/pkg/metrics"
	"github.com/XuRonTing/ron-fun/pkg/ronerrors"
)

// Name identifies this configuration in logs, metrics and errors.
const Name = "stylepipeline"

// PluginName is the key the options live under in a PostCSS config.
const PluginName = "postcss-px-to-viewport"

//go:embed stylepipeline.yaml
var literal []byte

// Unit is a CSS viewport unit.
type Unit string

// Supported viewport units.
const (
	VW   Unit = "vw"
	VH   Unit = "vh"
	VMin Unit = "vmin"
	VMax Unit = "vmax"
)

// Valid reports whether u is a supported viewport unit.
func (u Unit) Valid() bool {
	switch u {
	case VW, VH, VMin, VMax:
		return true
	}
	return false
}

// Config holds the px-to-viewport plugin options. It is read-only; accessors
// return copies where the underlying value is mutable.
type Config struct {
	viewportWidth     float64
	unitPrecision     int
	viewportUnit      Unit
	selectorBlackList []string
	minPixelValue     float64
	mediaQuery        bool
	include           *regexp.Regexp
}

// ViewportWidthPx is the design reference width in pixels.
func (c Config) ViewportWidthPx() float64 { return c.viewportWidth }

// UnitPrecision is the number of decimal places kept after conversion.
func (c Config) UnitPrecision() int { return c.unitPrecision }

// ViewportUnit is the unit px values are converted to.
func (c Config) ViewportUnit() Unit { return c.viewportUnit }

// ExcludedSelectors returns a copy of the selector blacklist.
func (c Config) ExcludedSelectors() []string { return slices.Clone(c.selectorBlackList) }

// MinPixelValue is the smallest px value that gets converted.
func (c Config) MinPixelValue() float64 { return c.minPixelValue }

// MediaQueryConversionEnabled reports whether px inside media queries is converted.
func (c Config) MediaQueryConversionEnabled() bool { return c.mediaQuery }

// IncludePathPattern returns the source of the include pattern.
func (c Config) IncludePathPattern() string {
	if c.include == nil {
		return ""
	}
	return c.include.String()
}

// Includes reports whether the file at path is subject to conversion.
func (c Config) Includes(path string) bool {
	return c.include != nil && c.include.MatchString(toSlash(path))
}

// Excludes reports whether selector is exempt from conversion. Blacklist
// entries are substring patterns, so ".ignore" also exempts ".card .ignore"
// and ".ignore-title".
func (c Config) Excludes(selector string) bool {
	for _, entry := range c.selectorBlackList {
		if strings.Contains(selector, entry) {
			return true
		}
	}
	return false
}

// Equal reports whether c and other hold the same options.
func (c Config) Equal(other Config) bool {
	return c.viewportWidth == other.viewportWidth &&
		c.unitPrecision == other.unitPrecision &&
		c.viewportUnit == other.viewportUnit &&
		slices.Equal(c.selectorBlackList, other.selectorBlackList) &&
		c.minPixelValue == other.minPixelValue &&
		c.mediaQuery == other.mediaQuery &&
		c.IncludePathPattern() == other.IncludePathPattern()
}

// Options is the JSON view of the plugin options. Include carries the
// pattern source; PostCSS renders it as a RegExp literal for the plugin.
type Options struct {
	ViewportWidth     float64  `json:"viewportWidth"`
	UnitPrecision     int      `json:"unitPrecision"`
	ViewportUnit      Unit     `json:"viewportUnit"`
	SelectorBlackList []string `json:"selectorBlackList"`
	MinPixelValue     float64  `json:"minPixelValue"`
	MediaQuery        bool     `json:"mediaQuery"`
	Include           string   `json:"include"`
}

// Options returns the plugin options in wire form.
func (c Config) Options() Options {
	return Options{
		ViewportWidth:     c.viewportWidth,
		UnitPrecision:     c.unitPrecision,
		ViewportUnit:      c.viewportUnit,
		SelectorBlackList: c.ExcludedSelectors(),
		MinPixelValue:     c.minPixelValue,
		MediaQuery:        c.mediaQuery,
		Include:           c.IncludePathPattern(),
	}
}

// MarshalJSON encodes the plugin options object.
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Options())
}

// PostCSS renders a postcss.config.js module holding this plugin only.
// The plugin ignores an include given as a string, so it is emitted as a
// RegExp literal.
func (c Config) PostCSS() ([]byte, error) {
	if c.include == nil {
		return nil, ronerrors.New(ronerrors.KindInternal, "style pipeline options not loaded")
	}
	selectors, err := json.Marshal(c.ExcludedSelectors())
	if err != nil {
		return nil, ronerrors.Wrap(err, ronerrors.KindInternal, "failed to encode selector blacklist")
	}

	var b bytes.Buffer
	b.WriteString("module.exports = {\n")
	b.WriteString("  plugins: {\n")
	fmt.Fprintf(&b, "    %s: {\n", strconv.Quote(PluginName))
	fmt.Fprintf(&b, "      viewportWidth: %s,\n", formatNumber(c.viewportWidth))
	fmt.Fprintf(&b, "      unitPrecision: %d,\n", c.unitPrecision)
	fmt.Fprintf(&b, "      viewportUnit: %s,\n", strconv.Quote(string(c.viewportUnit)))
	fmt.Fprintf(&b, "      selectorBlackList: %s,\n", selectors)
	fmt.Fprintf(&b, "      minPixelValue: %s,\n", formatNumber(c.minPixelValue))
	fmt.Fprintf(&b, "      mediaQuery: %t,\n", c.mediaQuery)
	fmt.Fprintf(&b, "      include: %s,\n", regexpLiteral(c.include.String()))
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")
	return b.Bytes(), nil
}

// Save writes the options to path as a YAML document that LoadFile accepts.
func (c Config) Save(path string) error {
	if c.include == nil {
		return ronerrors.New(ronerrors.KindInternal, "style pipeline options not loaded")
	}
	return config.Save(path, c.document())
}

func (c Config) document() document {
	prec := precision(c.unitPrecision)
	unit := string(c.viewportUnit)
	include := c.include.String()
	selectors := c.ExcludedSelectors()
	return document{
		ViewportWidth:     &c.viewportWidth,
		UnitPrecision:     &prec,
		ViewportUnit:      &unit,
		SelectorBlackList: &selectors,
		MinPixelValue:     &c.minPixelValue,
		MediaQuery:        &c.mediaQuery,
		Include:           &include,
	}
}

// precision is unitPrecision as written in YAML. Only integer scalars are
// accepted; a plain int would silently truncate 2.5 to 2.
type precision int

func (p *precision) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		return invalid("unitPrecision", n.Value, "must be an integer")
	}
	var v int
	if err := n.Decode(&v); err != nil {
		return err
	}
	*p = precision(v)
	return nil
}

// document is the on-disk shape, keyed by the plugin option names.
type document struct {
	ViewportWidth     *float64   `yaml:"viewportWidth"`
	UnitPrecision     *precision `yaml:"unitPrecision"`
	ViewportUnit      *string    `yaml:"viewportUnit"`
	SelectorBlackList *[]string  `yaml:"selectorBlackList"`
	MinPixelValue     *float64   `yaml:"minPixelValue"`
	MediaQuery        *bool      `yaml:"mediaQuery"`
	Include           *string    `yaml:"include"`
}

// Load returns the built-in plugin options.
func Load() (Config, error) {
	cfg, err := parse(literal)
	return finish("embedded", cfg, err)
}

// LoadFile loads plugin options from a YAML file with the same shape as the
// built-in literal.
func LoadFile(path string) (Config, error) {
	var doc document
	if err := config.Load(path, &doc); err != nil {
		return finish(path, Config{}, err)
	}
	cfg, err := build(doc)
	return finish(path, cfg, err)
}

// Parse decodes a plugin options document.
func Parse(data []byte) (Config, error) {
	cfg, err := parse(data)
	return finish("bytes", cfg, err)
}

func parse(data []byte) (Config, error) {
	var doc document
	if err := config.Decode(data, &doc); err != nil {
		return Config{}, err
	}
	return build(doc)
}

func build(doc document) (Config, error) {
	var missing []string
	for _, f := range []struct {
		name    string
		present bool
	}{
		{"viewportWidth", doc.ViewportWidth != nil},
		{"unitPrecision", doc.UnitPrecision != nil},
		{"viewportUnit", doc.ViewportUnit != nil},
		{"selectorBlackList", doc.SelectorBlackList != nil},
		{"minPixelValue", doc.MinPixelValue != nil},
		{"mediaQuery", doc.MediaQuery != nil},
		{"include", doc.Include != nil},
	} {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, ronerrors.New(ronerrors.KindConfigLoad, "missing required field").
			WithDetail("fields", strings.Join(missing, ","))
	}

	if *doc.ViewportWidth <= 0 {
		return Config{}, invalid("viewportWidth", *doc.ViewportWidth, "must be positive")
	}
	if *doc.UnitPrecision < 0 {
		return Config{}, invalid("unitPrecision", *doc.UnitPrecision, "must not be negative")
	}
	unit := Unit(*doc.ViewportUnit)
	if !unit.Valid() {
		return Config{}, invalid("viewportUnit", unit, "must be one of vw, vh, vmin, vmax")
	}
	if *doc.MinPixelValue <= 0 {
		return Config{}, invalid("minPixelValue", *doc.MinPixelValue, "must be positive")
	}

	blacklist := make([]string, 0, len(*doc.SelectorBlackList))
	for _, s := range *doc.SelectorBlackList {
		s = strings.TrimSpace(s)
		if s == "" {
			return Config{}, invalid("selectorBlackList", s, "must not contain empty selectors")
		}
		blacklist = append(blacklist, s)
	}

	if *doc.Include == "" {
		return Config{}, invalid("include", "", "must not be empty")
	}
	include, err := regexp.Compile(*doc.Include)
	if err != nil {
		return Config{}, ronerrors.Wrap(err, ronerrors.KindConfigLoad, "invalid include pattern").
			WithDetail("field", "include")
	}

	return Config{
		viewportWidth:     *doc.ViewportWidth,
		unitPrecision:     int(*doc.UnitPrecision),
		viewportUnit:      unit,
		selectorBlackList: blacklist,
		minPixelValue:     *doc.MinPixelValue,
		mediaQuery:        *doc.MediaQuery,
		include:           include,
	}, nil
}

func invalid(field string, value any, reason string) *ronerrors.Error {
	return ronerrors.New(ronerrors.KindConfigLoad, "invalid value: "+reason).
		WithDetail("field", field).
		WithDetail("value", value)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// regexpLiteral renders a Go pattern as a JS RegExp literal. Leading inline
// flags become literal flags and (?P<name> groups use the JS spelling.
func regexpLiteral(pattern string) string {
	var flags string
	if strings.HasPrefix(pattern, "(?") {
		if end := strings.IndexByte(pattern, ')'); end > 2 && strings.Trim(pattern[2:end], "ims") == "" {
			flags = pattern[2:end]
			pattern = pattern[end+1:]
		}
	}
	pattern = strings.ReplaceAll(pattern, "(?P<", "(?<")

	var b strings.Builder
	b.WriteByte('/')
	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '/':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('/')
	b.WriteString(flags)
	return b.String()
}

func toSlash(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

func finish(source string, cfg Config, err error) (Config, error) {
	metrics.RecordLoad(Name, err)
	log := logger.With(zap.String("config", Name), zap.String("source", source))

	if err != nil {
		err = ronerrors.Wrap(err, ronerrors.KindConfigLoad, "failed to load style pipeline configuration").
			WithDetail("config", Name).
			WithDetail("source", source)
		log.Warn("configuration rejected", zap.Error(err))
		return Config{}, err
	}

	log.Debug("configuration loaded",
		zap.Float64("viewport_width", cfg.viewportWidth),
		zap.String("viewport_unit", string(cfg.viewportUnit)),
		zap.String("include", cfg.IncludePathPattern()))
	return cfg, nil
}
