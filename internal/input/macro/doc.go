// Package macro records key presses and replays them.
//
// A Recorder captures copies of the events passed to Record while
// recording is on. Play feeds a recording back through any handler as
// fresh events, so replayed presses go through the same canonicalization
// and dispatch as live ones.
//
//	rec := macro.NewRecorder()
//	rec.Start()
//	rec.Record(ev) // for each live press
//	events := rec.Stop()
//	err := macro.Play(events, 2, app.HandleKey)
package macro
