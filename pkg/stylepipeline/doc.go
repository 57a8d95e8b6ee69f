// Package stylepipeline provides the options for the postcss-px-to-viewport
// build step, which rewrites px values in stylesheets into viewport units.
//
// This package only describes the options; the conversion runs in the CSS
// build. Load decodes the built-in literal:
//
//	cfg, err := stylepipeline.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.ViewportWidthPx() // 375
//	cfg.Includes("web/src/app.css") // true
//
// Blacklist entries are substring patterns: ".ignore" exempts any selector
// containing it.
//
// PostCSS renders the options as the postcss.config.js module the ronfun CLI
// writes for the JS toolchain. The include pattern becomes a RegExp literal:
//
//	module.exports = {
//	  plugins: {
//	    "postcss-px-to-viewport": {
//	      viewportWidth: 375,
//	      ...
//	      include: /\/src\//,
//	    },
//	  },
//	};
//
// Save writes the options back out as YAML for LoadFile.
package stylepipeline
