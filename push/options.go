package push

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Default parser options
var DefaultOptions = Options{
	Logger: &log.Logger,
}

// Parser options; modify before Activate()
type Options struct {
	Logger *zerolog.Logger // if nil logging is disabled
}
