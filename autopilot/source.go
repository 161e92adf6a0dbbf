package autopilot

import (
	"github.com/milk9111/carrig/vehicle"
	"go.uber.org/zap"
)

// Source adapts a Pilot to a key source. Sample supplies the inputs for the
// coming step. A script error disables the pilot; the held key is released so
// the rig does not keep driving.
type Source struct {
	pilot  *Pilot
	sample func() Inputs
	logger *zap.Logger
	err    error
}

func NewSource(pilot *Pilot, sample func() Inputs, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{pilot: pilot, sample: sample, logger: logger}
}

// Err returns the error that stopped the pilot, if any.
func (s *Source) Err() error {
	return s.err
}

// Forget makes the pilot press its key again on the next decision. Used when
// the throttle was released behind its back.
func (s *Source) Forget() {
	if s.pilot != nil {
		s.pilot.Forget()
	}
}

func (s *Source) KeyEvents() (pressed, released []vehicle.Key) {
	if s.pilot == nil || s.err != nil {
		return nil, nil
	}
	var in Inputs
	if s.sample != nil {
		in = s.sample()
	}
	pressed, released, err := s.pilot.Decide(in)
	if err != nil {
		s.err = err
		s.logger.Error("autopilot stopped", zap.String("script", s.pilot.Name()), zap.Error(err))
		if held := s.pilot.held; held != vehicle.KeyNone {
			s.pilot.held = vehicle.KeyNone
			return nil, []vehicle.Key{held}
		}
		return nil, nil
	}
	return pressed, released
}
