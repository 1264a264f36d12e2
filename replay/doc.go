// Package replay applies recorded capture files to an in-memory entity
// store, the way a client applies the live update stream.
//
//	c, err := capture.OpenFile("session.ufcap")
//	if err != nil {
//	    return err
//	}
//	p, _ := replay.New(replay.WithLogger(logger))
//	stats, err := p.Apply(ctx, c)
package replay
