// Package axis defines the view model for the timed categorical reveal.
//
// The package contains two categories of types:
//
// 1. Host data shapes: the tabular snapshot the data binding layer hands over
//   - [Snapshot] : One data-update notification's worth of bound data
//   - [CategoryColumn] : A single bound category field with row values
//
// 2. Resolved view model: what the playback controller consumes
//   - [DataPoint] : One orderable category value with its opaque selection identity
//   - [Settings] : Playback cadence, button appearance, and caption settings
//   - [ViewModel] : The immutable pairing of data points and settings
//
// A view model is rebuilt wholesale on every data update via [Build]; there is
// no incremental diffing and the previous view model is discarded. [Ready] is
// the readiness predicate guarding the builder: when it reports false the
// builder must not be invoked and prior state is left untouched.
//
// [EnumerateGroup] exposes resolved settings as named property bags for the
// host's format pane.
package axis
