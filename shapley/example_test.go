package shapley_test

import (
	"fmt"

	"github.com/katalvlaran/attribkit/journey"
	"github.com/katalvlaran/attribkit/shapley"
)

// ExampleExact attributes conversions over a three-journey log by exact
// coalition enumeration. The search channel appears only in the journey
// that failed to convert, so its marginal contribution is negative.
func ExampleExact() {
	ds, err := journey.NewDataset([]journey.Journey{
		{Channels: []string{"search", "email"}, Converted: true},
		{Channels: []string{"email"}, Converted: true},
		{Channels: []string{"search"}, Converted: false},
	})
	if err != nil {
		fmt.Println("dataset:", err)
		return
	}

	values, err := shapley.Exact(ds.Channels(), journey.ConversionRateValue(ds))
	if err != nil {
		fmt.Println("exact:", err)
		return
	}

	for _, ch := range ds.Channels() {
		fmt.Printf("%s: %.4f\n", ch, values[ch])
	}
	// Output:
	// email: 0.8333
	// search: -0.1667
}
