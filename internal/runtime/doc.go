// Package runtime implements the countdown state machine: the Machine that
// owns the current State, the dispatch loop that replays an input after each
// transition, and the four state variants (Pending, SelectDate, Countdown,
// Arrived).
package runtime
