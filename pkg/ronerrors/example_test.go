package ronerrors_test

import (
	"fmt"
	"io/fs"

	"github.com/XuRonTing/ron-fun/pkg/ronerrors"
)

// Example shows a load failure carrying structured details.
func Example() {
	err := ronerrors.New(ronerrors.KindConfigLoad, "missing required field").
		WithDetail("config", "analytics").
		WithDetail("field", "ga.trackingId")

	fmt.Println(err)
	fmt.Println(ronerrors.IsConfigLoad(err))

	// Output:
	// config_load: missing required field (config=analytics, field=ga.trackingId)
	// true
}

// ExampleWrap shows wrapping an I/O failure.
func ExampleWrap() {
	err := ronerrors.Wrap(fs.ErrNotExist, ronerrors.KindConfigLoad, "read config file").
		WithDetail("path", "analytics.yaml")

	fmt.Println(err)

	// Output:
	// config_load: read config file (path=analytics.yaml): file does not exist
}
