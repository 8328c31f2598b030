package installation

import "sync"

var (
	latestOnce sync.Once
	latest     *Installation

	vendorOnce   sync.Once
	vendorMarker *Installation
)

// Latest is the marker selecting the newest available installation.
// It is a singleton; compare by identity.
func Latest() *Installation {
	latestOnce.Do(func() {
		latest = &Installation{kind: KindMarker, markerKey: LatestKey}
	})
	return latest
}

// Vendor is the marker selecting the Steam installation, whatever its version.
// It is a singleton; compare by identity.
func Vendor() *Installation {
	vendorOnce.Do(func() {
		vendorMarker = &Installation{kind: KindMarker, markerKey: VendorKey}
	})
	return vendorMarker
}

// Markers returns every marker.
func Markers() []*Installation {
	return []*Installation{Latest(), Vendor()}
}
