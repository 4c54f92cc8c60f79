// Package converter maps wallabag entries onto the two Karakeep import
// shapes: the Omnivore-style flat list used by the web UI and the
// create/attach-tags payloads used by the API.
//
// Everything here is a pure function over entities. Reading the export
// and writing the result live in the wallabag and exporters packages.
package converter
