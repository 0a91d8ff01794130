// Package eisen is the composition root of an Eisenhower matrix note store.
//
// Notes belong to one of four quadrants (urgent/important). Each local
// identity owns one ordered collection, kept in memory by a core.Store and
// written in full to storage after every successful change. Reads that find
// nothing usable fall back to four sample notes; failed writes are logged
// and the in-memory state stays authoritative.
//
// Storage is pluggable: one file per key (default, optionally versioned with
// Git), a single SQLite table, or memory.
//
// Usage:
//
//	app, err := eisen.New(ctx, dir, eisen.WithAdapter(eisen.AdapterSQLite))
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	app.SignIn(ctx, "alice")
//	store, _ := app.Store()
//	note, err := store.Create(ctx, eisen.Fields{Title: "Pay bills", Quadrant: eisen.Q1})
//	err = store.Move(ctx, note.ID, eisen.Q2)
package eisen
