package pb

import (
	"github.com/pushfix/pushfix/comb"
	"github.com/pushfix/pushfix/push"
)

// NewSkipLengthPrefixed returns a callback that reads a varint length
// and discards that many bytes.
func NewSkipLengthPrefixed(name string) *comb.Compose {
	if name == "" {
		name = "skip-lp"
	}
	return comb.NewCompose(name,
		NewVarintSize(name+".length"),
		push.NewSkip(name+".skip"))
}
