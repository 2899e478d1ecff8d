package commands

import (
	"errors"

	"forwarding/internal/pkg/guard"
)

var ErrActivateDueScheduleCommandIsNotConstructed = errors.New(
	"ActivateDueScheduleCommand must be created via NewActivateDueScheduleCommand constructor",
)

// ActivateDueScheduleCommand switches the live fee schedule to the newest
// schedule whose effective date has arrived. The scheduler fires it
// periodically; it is a no-op when the right schedule is already active.
type ActivateDueScheduleCommand struct {
	guard guard.ConstructorGuard
}

// NewActivateDueScheduleCommand creates a schedule activation command.
// This is a parameterless command driven by the clock.
func NewActivateDueScheduleCommand() ActivateDueScheduleCommand {
	return ActivateDueScheduleCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ActivateDueScheduleCommand) Validate() error {
	return c.guard.Validate(ErrActivateDueScheduleCommandIsNotConstructed)
}
