package ports

import "github.com/aretw0/countdown/pkg/domain"

// Presenter is the presentation surface driven by the states.
// Implementations must not call back into the machine.
type Presenter interface {
	// Show acquires the view region of a state.
	Show(view domain.StateName)

	// Hide releases the view region of a state.
	Hide(view domain.StateName)

	// RenderRemaining pushes a decomposition to the day/hour/minute/second slots.
	RenderRemaining(parts domain.Parts)

	// ShowError surfaces a validation message on the date selection view.
	ShowError(message string)

	// Celebrate starts the decorative arrival animation. Fire-and-forget.
	Celebrate()
}
