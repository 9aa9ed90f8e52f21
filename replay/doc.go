// Package replay applies a recorded generation step log to a grid one step
// at a time, so a renderer can animate maze construction at its own pace.
//
// The replayer is purely mechanical: MarkPath and BreakWall set Path,
// BuildWall sets Wall. It never re-derives connectivity, so the final grid is
// exactly as faithful as the log it was given. Finish applies whatever is
// left and runs the endpoint post-pass, after which the grid matches what
// generate.Generate returns for the same algorithm and seed.
//
// Complexity: O(1) per step, O(W×H) for Finish's endpoint scan.
package replay
