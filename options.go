package dd

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-dd/pkg/logger"
)

// UnknownEventPolicy selects what the decoder does with Events lines whose
// type code is not recognized.
type UnknownEventPolicy int

const (
	// DropUnknownEvents discards unknown events. This is the default.
	DropUnknownEvents UnknownEventPolicy = iota
	// PreserveUnknownEvents keeps unknown events in Difficulty.UnknownEvents
	// so they are written back out by the encoder.
	PreserveUnknownEvents
	// RejectUnknownEvents fails decoding with an *UnknownEventError.
	RejectUnknownEvents
)

var policyNames = [...]string{
	DropUnknownEvents:     "drop",
	PreserveUnknownEvents: "preserve",
	RejectUnknownEvents:   "reject",
}

func (p UnknownEventPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("UnknownEventPolicy(%d)", int(p))
	}
	return policyNames[p]
}

// ParseUnknownEventPolicy returns the policy named s ("drop", "preserve" or
// "reject", case-insensitive).
func ParseUnknownEventPolicy(s string) (UnknownEventPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for p, name := range policyNames {
		if s == name {
			return UnknownEventPolicy(p), nil
		}
	}
	return 0, fmt.Errorf("dd: unknown event policy %q", s)
}

// Option configures a Decoder or an Encoder.
type Option func(*options) error

type options struct {
	unknownEvents UnknownEventPolicy
	logger        logger.Logger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		unknownEvents: DropUnknownEvents,
		logger:        logger.Nop(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// UnknownEvents returns an Option that sets the policy applied to events
// with unrecognized type codes while decoding. Encoding always writes
// whatever Difficulty.UnknownEvents holds.
func UnknownEvents(p UnknownEventPolicy) Option {
	return func(o *options) error {
		if p < DropUnknownEvents || p > RejectUnknownEvents {
			return fmt.Errorf("dd: invalid unknown event policy %d", int(p))
		}
		o.unknownEvents = p
		return nil
	}
}

// WithLogger returns an Option that sends debug records about decoding and
// encoding to l. By default nothing is logged.
func WithLogger(l logger.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("dd: nil logger")
		}
		o.logger = l
		return nil
	}
}
