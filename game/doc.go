// Package game runs move-limited play-throughs on generated grids.
//
// A Session is created from a GridSource. New keeps drawing grids until the
// solver finds a path from Start to Destination, giving up with
// ErrGenerationFailed after Params.MaxAttempts draws, so a player is never
// handed an unsolvable grid.
//
// Moves are single 4-adjacent steps. Steps into a Wall or off the grid are
// rejected without using a move. Reaching the Destination wins; spending the
// last move elsewhere loses with MoveLimitReached; Forfeit loses with
// Forfeited. After the session ends, Report compares the player's move
// count with the optimal route.
//
//	s, err := game.New(game.NewRandomSource(42), game.DefaultParams())
//	if err != nil {
//		return err
//	}
//	for !s.Over() {
//		d := readDirection()
//		if _, err := s.ProcessMove(d); err != nil {
//			return err
//		}
//	}
//	rep, _ := s.Report()
package game
