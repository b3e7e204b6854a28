package markov_test

import (
	"fmt"

	"github.com/katalvlaran/attribkit/journey"
	"github.com/katalvlaran/attribkit/markov"
)

// ExampleModel_Attribution distributes the observed conversions across
// channels by their removal effects: email gates both converting paths, so
// it earns the larger share.
func ExampleModel_Attribution() {
	ds, err := journey.NewDataset([]journey.Journey{
		{Channels: []string{"search", "email"}, Converted: true},
		{Channels: []string{"email"}, Converted: true},
		{Channels: []string{"search"}, Converted: false},
	})
	if err != nil {
		fmt.Println("dataset:", err)
		return
	}

	m, err := markov.New(ds)
	if err != nil {
		fmt.Println("model:", err)
		return
	}
	attr, err := m.Attribution()
	if err != nil {
		fmt.Println("attribution:", err)
		return
	}

	for _, ch := range m.Channels() {
		fmt.Printf("%s: %.4f conversions\n", ch, attr[ch])
	}
	// Output:
	// email: 1.3333 conversions
	// search: 0.6667 conversions
}
