package port

import "github.com/rl1809/weaselparts/internal/core/domain"

// Presenter renders scan outcomes. Exactly one method is called per
// classified scan.
type Presenter interface {
	// ShowNeedsBin offers a cabinet choice for a component that is not stored
	ShowNeedsBin(c domain.Component, cabinets []domain.Cabinet)

	// ShowAlreadyStored tells the operator where the component is and that a rescan removes it
	ShowAlreadyStored(c domain.Component)

	// ShowUnknownCode offers registration of an unknown barcode
	ShowUnknownCode(barcode string)

	// ShowRemovalConfirmed reports a double-scan removal with the pre-removal state
	ShowRemovalConfirmed(c domain.Component)

	// ShowAlreadyRemoved reports a double-scan on a component somebody else removed
	ShowAlreadyRemoved()

	// ShowStored confirms a store request issued after a cabinet choice
	ShowStored(c domain.Component)

	// ShowError reports a failed inventory call
	ShowError(message string)
}
