package analytics_test

import (
	"fmt"
	"log"

	"github.com/XuRonTing/ron-fun/pkg/analytics"
	"github.com/XuRonTing/ron-fun/pkg/environment"
)

// ExampleLoad resolves wire event names for a production build.
func ExampleLoad() {
	cfg, err := analytics.Load(environment.Production)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("GA debug:", cfg.GA.Debug)
	for name, wire := range cfg.Events.All() {
		fmt.Printf("%s -> %s\n", name, wire)
	}

	// Output:
	// GA debug: false
	// BUTTON_CLICK -> button_click
	// PAGE_VIEW -> page_view
	// SCROLL_DEPTH -> scroll_depth
	// TIME_SPENT -> time_spent
}
