// Package state shares the startup data between the loader and the UI.
//
// The loader goroutine writes the base name lists (SetIndex) and the
// per-category sample (BeginSample, SetSample). The UI reads Snapshot on
// every tick. Store guards the data with a sync.RWMutex and Snapshot hands
// out copies, so neither side can observe a torn or shared slice.
//
// A failed load never clears data: the previous index or sample stays in
// place and the error is recorded in LastError alongside a running failure
// count. SampleVersion lets readers notice that a new sample arrived.
//
// The zero Store is ready to use.
package state
