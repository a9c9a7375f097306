package lyra

import "github.com/oliverbestmann/tessel/facet"

type App interface {
	// Initialize is called once after the device is ready, before the
	// first frame. Create gpu resources here.
	Initialize(dev *facet.Device) error

	// Draw renders one frame. The screen has already been cleared.
	Draw(dev *facet.Device) error

	// Release frees the resources created in Initialize. It runs before
	// the device and the window go away.
	Release(dev *facet.Device)
}
