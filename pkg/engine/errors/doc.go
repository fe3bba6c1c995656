// Package errors provides structured errors for the level generator.
//
// Every error carries a Code, a human readable message, an optional cause
// and optional metadata. Callers branch on the code rather than on the
// message text:
//
//	level, err := generator.GenerateLevel(cfg, roller)
//	if errors.IsConnectivityExhausted(err) {
//	    // retry with a different seed
//	}
//
// Adding metadata:
//
//	err := errors.PlacementExhausted("section too small for a room").
//	    WithMeta("section", sec.String()).
//	    WithMeta("min_size", cfg.MinRoomSize.String())
//
// Wrapping keeps the original code unless a new one is given:
//
//	if err := grid.Carve(r, world.TileFloor); err != nil {
//	    return errors.Wrap(err, "failed to carve room")
//	}
//
// Configuration checks use a ValidationBuilder so that every bad field is
// reported at once.
package errors
