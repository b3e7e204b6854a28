package unified_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/attribkit/journey"
	"github.com/katalvlaran/attribkit/unified"
)

// ExampleSession_ComputeCompleteAttribution runs the full pipeline over a
// small journey log and reports which methods were produced and which
// channel each one favors.
func ExampleSession_ComputeCompleteAttribution() {
	ds, err := journey.NewDataset([]journey.Journey{
		{Channels: []string{"search", "email"}, Converted: true},
		{Channels: []string{"email"}, Converted: true},
		{Channels: []string{"search"}, Converted: false},
	})
	if err != nil {
		fmt.Println("dataset:", err)
		return
	}

	sess, err := unified.NewSession()
	if err != nil {
		fmt.Println("session:", err)
		return
	}
	res, err := sess.ComputeCompleteAttribution(
		context.Background(), ds,
		unified.WithSeed(42), unified.WithSampleCount(4000),
	)
	if err != nil {
		fmt.Println("compute:", err)
		return
	}

	methods := make([]string, 0, len(res.Methods))
	for name := range res.Methods {
		methods = append(methods, name)
	}
	sort.Strings(methods)

	for _, name := range methods {
		vec := res.Methods[name]
		fmt.Printf("%s: email leads = %v\n", name, vec["email"] > vec["search"])
	}
	// Output:
	// hybrid: email leads = true
	// markov: email leads = true
	// shapley: email leads = true
}
